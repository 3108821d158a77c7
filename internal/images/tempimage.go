// Package images resolves a slide heading to a downloaded, ephemeral image
// file. Every file it creates lives exactly as long as one embedding attempt.
package images

import (
	"log"
	"os"
	"sync"
)

// TempImage is a downloaded image on disk. The caller that requested it owns
// the file and must call Release once the single embedding attempt is done,
// whatever the outcome of that attempt.
type TempImage struct {
	Path string

	once sync.Once
}

// Release deletes the backing file. It is safe to call more than once.
func (t *TempImage) Release() {
	if t == nil {
		return
	}
	t.once.Do(func() {
		if err := os.Remove(t.Path); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove temp image %s: %v", t.Path, err)
		}
	})
}
