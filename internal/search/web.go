package search

import (
	"context"
	"fmt"
	"log"
	"time"
)

// maxSnippets caps the context handed to content synthesis.
const maxSnippets = 5

// ContextSearch returns up to maxSnippets short text snippets about topic, in
// provider relevance order. Every failure mode (provider error, timeout,
// missing result fields) degrades to an empty slice; synthesis must work
// without web context.
func (c *Client) ContextSearch(ctx context.Context, topic string) []string {
	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	params := map[string]string{
		"q":   fmt.Sprintf("%s latest news developments %d", topic, time.Now().Year()),
		"num": "5",
		"gl":  "us",
		"hl":  "en",
	}

	results, err := c.provider.Search(ctx, "google", params)
	if err != nil {
		log.Printf("Web search failed for %q: %v", topic, err)
		return nil
	}

	organic, ok := results["organic_results"].([]interface{})
	if !ok {
		log.Printf("No web results for %q, proceeding without context", topic)
		return nil
	}

	var snippets []string
	for _, r := range organic {
		entry, ok := r.(map[string]interface{})
		if !ok {
			continue
		}
		snippet, ok := entry["snippet"].(string)
		if !ok || snippet == "" {
			continue
		}
		snippets = append(snippets, snippet)
		if len(snippets) == maxSnippets {
			break
		}
	}
	return snippets
}
