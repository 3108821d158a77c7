package artifact

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbalazs/deckgen/internal/deck"
)

func TestSanitizeTopic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Future of AI!", "future_of_ai"},
		{"AI Ethics", "ai_ethics"},
		{"  padded   spaces  ", "padded_spaces"},
		{"Café & Croissants", "café_croissants"},
		{"C++ in 2024?", "c_in_2024"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeTopic(tc.in), "input %q", tc.in)
	}
}

func TestSanitizeTopic_Idempotent(t *testing.T) {
	for _, in := range []string{"Future of AI!", "already_clean", "Mixed CASE topic 42"} {
		once := SanitizeTopic(in)
		assert.Equal(t, once, SanitizeTopic(once), "input %q", in)
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := Filename("Future of AI!", ts)
	assert.Equal(t, "presentation_future_of_ai_20240101_000000.pptx", got)
}

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	w.now = func() time.Time { return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC) }

	slides := []deck.Slide{
		{Title: "Topic", Subtitle: "sub"},
		{Title: "Body", Bullets: []string{"a", "b"}},
	}
	filename, err := w.Write(slides, "Some Topic")
	require.NoError(t, err)
	assert.Equal(t, "presentation_some_topic_20240315_093000.pptx", filename)

	info, err := os.Stat(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriter_Write_MissingDirectory(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "does", "not", "exist"))

	_, err := w.Write([]deck.Slide{{Title: "t"}}, "topic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving presentation")
}
