// Package artifact derives deterministic filenames from topics and persists
// assembled decks to disk.
package artifact

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/mbalazs/deckgen/internal/deck"
	"github.com/mbalazs/deckgen/internal/pptx"
)

const fileExt = ".pptx"

// SanitizeTopic keeps letters, digits, and whitespace, collapses whitespace
// runs to a single underscore, and lowercases. Sanitizing an already
// sanitized string yields the same string.
func SanitizeTopic(topic string) string {
	var sb strings.Builder
	inSpace := false
	for _, r := range topic {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			if inSpace {
				sb.WriteByte('_')
				inSpace = false
			}
			sb.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			if sb.Len() > 0 {
				inSpace = true
			}
		}
	}
	return sb.String()
}

// Filename is presentation_<sanitized topic>_<YYYYMMDD_HHMMSS>.pptx.
func Filename(topic string, t time.Time) string {
	return fmt.Sprintf("presentation_%s_%s%s", SanitizeTopic(topic), t.Format("20060102_150405"), fileExt)
}

// Writer persists decks into a fixed output directory.
type Writer struct {
	outputDir string
	now       func() time.Time
}

func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir, now: time.Now}
}

// Write persists slides under a topic-derived filename and returns that
// filename (without directory). A write error is fatal and propagates: an
// absorbed failure here would silently lose the result.
func (w *Writer) Write(slides []deck.Slide, topic string) (string, error) {
	filename := Filename(topic, w.now())
	if err := pptx.Write(filepath.Join(w.outputDir, filename), slides); err != nil {
		return "", fmt.Errorf("saving presentation: %w", err)
	}
	return filename, nil
}
