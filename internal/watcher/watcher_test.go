package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTopicFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadTopic_FirstNonEmptyLine(t *testing.T) {
	dir := t.TempDir()
	path := writeTopicFile(t, dir, "topic.txt", "\n\n  Offshore Wind  \nsecond line ignored\n")

	topic, err := readTopic(path)
	require.NoError(t, err)
	assert.Equal(t, "Offshore Wind", topic)
}

func TestReadTopic_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTopicFile(t, dir, "topic.txt", "   \n\t\n")

	topic, err := readTopic(path)
	require.NoError(t, err)
	assert.Empty(t, topic)
}

func TestProcessFile_GeneratesAndMovesAside(t *testing.T) {
	dir := t.TempDir()
	path := writeTopicFile(t, dir, "topic.txt", "Offshore Wind\n")

	var got string
	w := New(dir, func(ctx context.Context, topic string) (string, error) {
		got = topic
		return "out.pptx", nil
	})
	w.processFile(context.Background(), path)

	assert.Equal(t, "Offshore Wind", got)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "original file should be moved")
	_, err = os.Stat(path + ".done")
	assert.NoError(t, err)
}

func TestProcessFile_MovesAsideOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeTopicFile(t, dir, "topic.txt", "Offshore Wind\n")

	w := New(dir, func(ctx context.Context, topic string) (string, error) {
		return "", errors.New("generation blew up")
	})
	w.processFile(context.Background(), path)

	// A failing topic must not stay in the inbox to be retried forever.
	_, err := os.Stat(path + ".done")
	assert.NoError(t, err)
}

func TestProcessFile_EmptyTopicSkipsGeneration(t *testing.T) {
	dir := t.TempDir()
	path := writeTopicFile(t, dir, "topic.txt", "\n")

	called := false
	w := New(dir, func(ctx context.Context, topic string) (string, error) {
		called = true
		return "", nil
	})
	w.processFile(context.Background(), path)

	assert.False(t, called)
	_, err := os.Stat(path + ".done")
	assert.NoError(t, err)
}

func TestScanInbox_ProcessesExistingTxtFiles(t *testing.T) {
	dir := t.TempDir()
	writeTopicFile(t, dir, "a.txt", "Topic A\n")
	writeTopicFile(t, dir, "b.TXT", "Topic B\n")
	writeTopicFile(t, dir, "ignore.md", "Not a topic\n")

	var topics []string
	w := New(dir, func(ctx context.Context, topic string) (string, error) {
		topics = append(topics, topic)
		return "out.pptx", nil
	})
	w.scanInbox(context.Background())

	assert.ElementsMatch(t, []string{"Topic A", "Topic B"}, topics)
	_, err := os.Stat(filepath.Join(dir, "ignore.md"))
	assert.NoError(t, err, "non-txt files are left alone")
}
