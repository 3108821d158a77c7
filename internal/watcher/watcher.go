// Package watcher turns a directory into a topic inbox: every .txt file
// dropped into it is read as a presentation topic and generated.
package watcher

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// GenerateFunc runs one generation request and returns the artifact filename.
type GenerateFunc func(ctx context.Context, topic string) (string, error)

type Watcher struct {
	inbox    string
	generate GenerateFunc
}

func New(inbox string, generate GenerateFunc) *Watcher {
	return &Watcher{inbox: inbox, generate: generate}
}

// Start watches the inbox until ctx is done. Files already present are
// processed on startup; afterwards create/write events trigger processing.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := os.MkdirAll(w.inbox, 0755); err != nil {
		return fmt.Errorf("failed to create inbox directory: %w", err)
	}
	if err := fsw.Add(w.inbox); err != nil {
		return err
	}

	log.Printf("Topic inbox watcher started, watching: %s", w.inbox)

	// Initial scan
	w.scanInbox(ctx)

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if strings.HasSuffix(strings.ToLower(event.Name), ".txt") {
					log.Printf("Detected topic file: %s", event.Name)

					// Debounce/delay for the file write to complete
					time.Sleep(500 * time.Millisecond)
					w.processFile(ctx, event.Name)
				}
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) scanInbox(ctx context.Context) {
	files, err := os.ReadDir(w.inbox)
	if err != nil {
		log.Printf("Failed to scan inbox: %v", err)
		return
	}

	for _, f := range files {
		if !f.IsDir() && strings.HasSuffix(strings.ToLower(f.Name()), ".txt") {
			w.processFile(ctx, filepath.Join(w.inbox, f.Name()))
		}
	}
}

// processFile reads the topic (first non-empty line) and generates a deck.
// The file is moved aside afterwards whatever the outcome, so a failing topic
// is not retried forever.
func (w *Watcher) processFile(ctx context.Context, path string) {
	defer w.finalizeFile(path)

	topic, err := readTopic(path)
	if err != nil {
		log.Printf("Failed to read topic file %s: %v", path, err)
		return
	}
	if topic == "" {
		log.Printf("Topic file %s is empty, skipping", path)
		return
	}

	filename, err := w.generate(ctx, topic)
	if err != nil {
		log.Printf("Generation failed for topic %q: %v", topic, err)
		return
	}
	log.Printf("Generated %s for topic %q", filename, topic)
}

func (w *Watcher) finalizeFile(path string) {
	done := path + ".done"
	if err := os.Rename(path, done); err != nil {
		if os.IsNotExist(err) {
			return // already moved by a previous event for the same file
		}
		log.Printf("Failed to move %s aside: %v", path, err)
	}
}

func readTopic(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return line, nil
		}
	}
	return "", scanner.Err()
}
