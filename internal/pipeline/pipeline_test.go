package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbalazs/deckgen/internal/deck"
)

type fakeSearcher struct {
	snippets []string
	topic    string
}

func (f *fakeSearcher) ContextSearch(ctx context.Context, topic string) []string {
	f.topic = topic
	return f.snippets
}

type fakeSynth struct {
	content  deck.Content
	snippets []string
}

func (f *fakeSynth) Synthesize(ctx context.Context, topic string, snippets []string) deck.Content {
	f.snippets = snippets
	return f.content
}

type fakeAssembler struct {
	slides []deck.Slide
}

func (f *fakeAssembler) Assemble(ctx context.Context, content deck.Content) []deck.Slide {
	return f.slides
}

type fakeWriter struct {
	filename string
	err      error
	topic    string
}

func (f *fakeWriter) Write(slides []deck.Slide, topic string) (string, error) {
	f.topic = topic
	return f.filename, f.err
}

type fakeHistory struct {
	err        error
	topic      string
	filename   string
	slideCount int
	calls      int
}

func (f *fakeHistory) Record(ctx context.Context, topic, filename string, slideCount int) error {
	f.calls++
	f.topic = topic
	f.filename = filename
	f.slideCount = slideCount
	return f.err
}

func sevenSlides() []deck.Slide {
	slides := make([]deck.Slide, 7)
	for i := range slides {
		slides[i].Title = "slide"
	}
	return slides
}

func newTestGenerator(writer *fakeWriter, history *fakeHistory) (*Generator, *fakeSearcher, *fakeSynth) {
	searcher := &fakeSearcher{snippets: []string{"s1", "s2"}}
	synth := &fakeSynth{}
	var h HistoryStore
	if history != nil {
		h = history
	}
	return NewGenerator(searcher, synth, &fakeAssembler{slides: sevenSlides()}, writer, h, nil), searcher, synth
}

func TestGenerate_Success(t *testing.T) {
	writer := &fakeWriter{filename: "presentation_x_20240101_000000.pptx"}
	history := &fakeHistory{}
	gen, searcher, synth := newTestGenerator(writer, history)

	filename, err := gen.Generate(context.Background(), "  Quantum Sensors  ")
	require.NoError(t, err)
	assert.Equal(t, "presentation_x_20240101_000000.pptx", filename)

	// Stages see the trimmed topic and the search context flows into synthesis.
	assert.Equal(t, "Quantum Sensors", searcher.topic)
	assert.Equal(t, "Quantum Sensors", writer.topic)
	assert.Equal(t, []string{"s1", "s2"}, synth.snippets)

	assert.Equal(t, 1, history.calls)
	assert.Equal(t, "Quantum Sensors", history.topic)
	assert.Equal(t, filename, history.filename)
	assert.Equal(t, 7, history.slideCount)
}

func TestGenerate_EmptyTopic(t *testing.T) {
	gen, _, _ := newTestGenerator(&fakeWriter{}, nil)

	for _, topic := range []string{"", "   ", "\t\n"} {
		_, err := gen.Generate(context.Background(), topic)
		assert.ErrorIs(t, err, ErrEmptyTopic, "topic %q", topic)
	}
}

func TestGenerate_WriterErrorPropagates(t *testing.T) {
	writer := &fakeWriter{err: errors.New("disk full")}
	history := &fakeHistory{}
	gen, _, _ := newTestGenerator(writer, history)

	_, err := gen.Generate(context.Background(), "topic")
	require.Error(t, err)
	assert.Equal(t, 0, history.calls, "no history record for a failed write")
}

func TestGenerate_HistoryErrorNonFatal(t *testing.T) {
	writer := &fakeWriter{filename: "out.pptx"}
	history := &fakeHistory{err: errors.New("db down")}
	gen, _, _ := newTestGenerator(writer, history)

	filename, err := gen.Generate(context.Background(), "topic")
	require.NoError(t, err)
	assert.Equal(t, "out.pptx", filename)
}

func TestGenerate_NoHistoryStore(t *testing.T) {
	gen, _, _ := newTestGenerator(&fakeWriter{filename: "out.pptx"}, nil)

	_, err := gen.Generate(context.Background(), "topic")
	require.NoError(t, err)
}

func TestGenerate_LogChanNeverBlocks(t *testing.T) {
	gen, _, _ := newTestGenerator(&fakeWriter{filename: "out.pptx"}, nil)
	gen.LogChan = make(chan string, 1) // too small for the full progress stream

	_, err := gen.Generate(context.Background(), "topic")
	require.NoError(t, err)
	assert.NotEmpty(t, <-gen.LogChan)
}
