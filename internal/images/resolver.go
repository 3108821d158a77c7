package images

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// downloadTimeout bounds connect plus body read for one image fetch.
const downloadTimeout = 10 * time.Second

// ImageSearcher finds a candidate image URL for a query; "" means no result.
type ImageSearcher interface {
	FirstImageURL(ctx context.Context, query string) string
}

// Resolver turns a query into a local ephemeral image file.
type Resolver struct {
	searcher ImageSearcher
	client   *http.Client
}

func NewResolver(searcher ImageSearcher) *Resolver {
	return &Resolver{
		searcher: searcher,
		client:   &http.Client{Timeout: downloadTimeout},
	}
}

// Resolve searches for query and downloads the first hit into a uniquely
// named temp file. It returns nil on any failure: no result, non-200 status,
// network error, or timeout. Image resolution is never fatal.
func (r *Resolver) Resolve(ctx context.Context, query string) *TempImage {
	url := r.searcher.FirstImageURL(ctx, query)
	if url == "" {
		log.Printf("No image found for %q", query)
		return nil
	}
	return r.download(ctx, url)
}

func (r *Resolver) download(ctx context.Context, url string) *TempImage {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("Bad image URL %q: %v", url, err)
		return nil
	}

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("Failed to download image from %s: %v", url, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Image download from %s returned status %d", url, resp.StatusCode)
		return nil
	}

	f, err := os.CreateTemp("", "deckgen-*.jpg")
	if err != nil {
		log.Printf("Failed to create temp image file: %v", err)
		return nil
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		log.Printf("Failed to stream image from %s: %v", url, err)
		return nil
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		log.Printf("Failed to finish temp image file: %v", err)
		return nil
	}

	return &TempImage{Path: f.Name()}
}
