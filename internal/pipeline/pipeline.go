// Package pipeline orchestrates one generation request: web context, content
// synthesis, slide assembly, artifact persistence, and the optional history
// record.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mbalazs/deckgen/internal/deck"
)

// ErrEmptyTopic rejects a generation request before any stage runs.
var ErrEmptyTopic = errors.New("topic cannot be empty")

type Searcher interface {
	ContextSearch(ctx context.Context, topic string) []string
}

type Synthesizer interface {
	Synthesize(ctx context.Context, topic string, snippets []string) deck.Content
}

type Assembler interface {
	Assemble(ctx context.Context, content deck.Content) []deck.Slide
}

type ArtifactWriter interface {
	Write(slides []deck.Slide, topic string) (string, error)
}

type HistoryStore interface {
	Record(ctx context.Context, topic, filename string, slideCount int) error
}

// Generator runs the pipeline. Each call is independent and stateless except
// for the collaborators resolved at construction.
type Generator struct {
	searcher  Searcher
	synth     Synthesizer
	assembler Assembler
	writer    ArtifactWriter
	history   HistoryStore // optional
	LogChan   chan string  // optional progress stream for UIs
}

func NewGenerator(searcher Searcher, synth Synthesizer, assembler Assembler, writer ArtifactWriter, history HistoryStore, logChan chan string) *Generator {
	return &Generator{
		searcher:  searcher,
		synth:     synth,
		assembler: assembler,
		writer:    writer,
		history:   history,
		LogChan:   logChan,
	}
}

func (g *Generator) log(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	log.Println(msg)
	if g.LogChan != nil {
		select {
		case g.LogChan <- msg:
		default:
			// fast non-blocking drop if buffer full
		}
	}
}

// Generate turns topic into a persisted deck and returns its filename.
// Search, synthesis, and image failures degrade inside their stages; only a
// rejected topic or a persistence failure surfaces as an error, and in that
// case no artifact is left behind.
func (g *Generator) Generate(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrEmptyTopic
	}

	g.log("Searching the web for recent information on: %s", topic)
	snippets := g.searcher.ContextSearch(ctx, topic)
	if len(snippets) > 0 {
		g.log("Found %d relevant search results", len(snippets))
	} else {
		g.log("No search results found, proceeding with AI generation only")
	}

	g.log("Generating presentation content using AI...")
	content := g.synth.Synthesize(ctx, topic, snippets)

	g.log("Creating PowerPoint presentation...")
	slides := g.assembler.Assemble(ctx, content)

	filename, err := g.writer.Write(slides, topic)
	if err != nil {
		return "", err
	}

	if g.history != nil {
		if err := g.history.Record(ctx, topic, filename, len(slides)); err != nil {
			g.log("Failed to record generation history: %v", err)
		}
	}

	g.log("Presentation saved: %s (%d slides)", filename, len(slides))
	return filename, nil
}
