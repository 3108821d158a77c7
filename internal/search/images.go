package search

import (
	"context"
	"log"
)

// FirstImageURL returns the original-resolution URL of the first image result
// for query, or "" when the search fails or yields nothing. Image search
// failures are never fatal.
func (c *Client) FirstImageURL(ctx context.Context, query string) string {
	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	params := map[string]string{
		"q":   query,
		"ijn": "0", // page number
	}

	results, err := c.provider.Search(ctx, "google_images", params)
	if err != nil {
		log.Printf("Image search failed for %q: %v", query, err)
		return ""
	}

	images, ok := results["images_results"].([]interface{})
	if !ok || len(images) == 0 {
		return ""
	}

	first, ok := images[0].(map[string]interface{})
	if !ok {
		return ""
	}
	url, _ := first["original"].(string)
	return url
}
