package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/mbalazs/deckgen/internal/deck"
)

// requiredKeys are the top-level keys a model response must carry.
var requiredKeys = []string{"title_slide", "overview", "key_points", "conclusion"}

// Synthesizer produces schema-valid presentation content for a topic.
type Synthesizer struct {
	gen TextGenerator
}

func NewSynthesizer(gen TextGenerator) *Synthesizer {
	return &Synthesizer{gen: gen}
}

// Synthesize always returns schema-valid content. Model errors, malformed or
// incomplete JSON, and shape violations all degrade to the deterministic
// fallback; synthesis failure is never surfaced to the caller.
func (s *Synthesizer) Synthesize(ctx context.Context, topic string, snippets []string) deck.Content {
	raw, err := s.gen.GenerateText(ctx, BuildPrompt(topic, snippets))
	if err != nil {
		log.Printf("AI content generation failed: %v. Falling back to template content", err)
		return FallbackContent(topic)
	}

	content, err := parseContent(raw)
	if err != nil {
		log.Printf("AI content rejected: %v. Falling back to template content", err)
		return FallbackContent(topic)
	}

	log.Printf("AI content generation successful for %q", topic)
	return content
}

// parseContent extracts the balanced JSON span from raw model output and
// validates it against the fixed content shape.
func parseContent(raw string) (deck.Content, error) {
	span, ok := ExtractJSONObject(raw)
	if !ok {
		return deck.Content{}, errors.New("no JSON object found in response")
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &keys); err != nil {
		return deck.Content{}, fmt.Errorf("invalid JSON in response: %w", err)
	}
	for _, k := range requiredKeys {
		if _, ok := keys[k]; !ok {
			return deck.Content{}, fmt.Errorf("response is missing %q", k)
		}
	}

	var content deck.Content
	if err := json.Unmarshal([]byte(span), &content); err != nil {
		return deck.Content{}, fmt.Errorf("response does not match content shape: %w", err)
	}
	if len(content.KeyPoints) != deck.KeyPointCount {
		return deck.Content{}, fmt.Errorf("expected %d key points, got %d", deck.KeyPointCount, len(content.KeyPoints))
	}
	return content, nil
}
