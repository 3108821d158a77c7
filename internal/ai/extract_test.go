package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject_Plain(t *testing.T) {
	span, ok := ExtractJSONObject(`{"a": 1}`)
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, span)
}

func TestExtractJSONObject_Nested(t *testing.T) {
	in := `{"a": {"b": {"c": 3}}, "d": [1, 2]}`
	span, ok := ExtractJSONObject(in)
	require.True(t, ok)
	assert.Equal(t, in, span)
}

func TestExtractJSONObject_SurroundingProse(t *testing.T) {
	in := "Here is the JSON you asked for:\n```json\n{\"a\": 1}\n```\nLet me know if you need anything else."
	span, ok := ExtractJSONObject(in)
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, span)
}

func TestExtractJSONObject_BracesInsideStrings(t *testing.T) {
	in := `{"text": "a stray } and { inside", "esc": "quote \" then }"}`
	span, ok := ExtractJSONObject(in)
	require.True(t, ok)
	assert.Equal(t, in, span)
}

func TestExtractJSONObject_TrailingBraceProse(t *testing.T) {
	// A greedy first-{-to-last-} match would swallow the trailing prose brace.
	in := `{"a": 1} and remember: use {placeholders}`
	span, ok := ExtractJSONObject(in)
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, span)
}

func TestExtractJSONObject_UnclosedThenValid(t *testing.T) {
	in := `broken { fragment without end... {"a": 2}`
	span, ok := ExtractJSONObject(in)
	require.True(t, ok)
	assert.Equal(t, `{"a": 2}`, span)
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	for _, in := range []string{"", "no braces here", "only closing }", "open { forever"} {
		_, ok := ExtractJSONObject(in)
		assert.False(t, ok, "input %q", in)
	}
}
