// Package search wraps the SerpApi provider behind a narrow interface and
// exposes the two queries the pipeline needs: web context snippets for a topic
// and a representative image URL for a slide heading.
package search

import (
	"context"
	"time"

	serpapi "github.com/serpapi/google-search-results-golang"
)

// Provider executes one search against an engine and returns the decoded JSON
// payload. Implementations must honor ctx cancellation.
type Provider interface {
	Search(ctx context.Context, engine string, params map[string]string) (map[string]interface{}, error)
}

// serpAPIProvider is the production Provider. The SerpApi client has no
// context support, so each call runs under a watchdog goroutine; a timed-out
// call is abandoned, not interrupted.
type serpAPIProvider struct {
	apiKey string
}

func NewSerpAPIProvider(apiKey string) Provider {
	return &serpAPIProvider{apiKey: apiKey}
}

func (p *serpAPIProvider) Search(ctx context.Context, engine string, params map[string]string) (map[string]interface{}, error) {
	type outcome struct {
		data map[string]interface{}
		err  error
	}

	ch := make(chan outcome, 1)
	go func() {
		query := serpapi.NewSearch(engine, params, p.apiKey)
		data, err := query.GetJSON()
		ch <- outcome{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-ch:
		return out.data, out.err
	}
}

// providerTimeout bounds every SerpApi call; the provider itself offers no
// deadline of its own.
const providerTimeout = 20 * time.Second

// Client issues topic and image searches through a Provider.
type Client struct {
	provider Provider
}

func NewClient(provider Provider) *Client {
	return &Client{provider: provider}
}
