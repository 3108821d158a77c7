package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbalazs/deckgen/internal/config"
)

func TestHandleDownload_ServesGeneratedArtifact(t *testing.T) {
	dir := t.TempDir()
	cfg = &config.Config{Application: config.ApplicationConfig{OutputDir: dir}}

	name := "presentation_solar_power_20240101_000000.pptx"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("PK"), 0644))

	rec := httptest.NewRecorder()
	handleDownload(rec, httptest.NewRequest(http.MethodGet, "/download/"+name, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pptxMIME, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), name)
}

func TestHandleDownload_RejectsNonArtifactNames(t *testing.T) {
	dir := t.TempDir()
	cfg = &config.Config{Application: config.ApplicationConfig{OutputDir: dir}}

	// Files that live next to the artifacts must not be downloadable.
	for _, name := range []string{"go.mod", ".env", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("secret"), 0644))
	}

	cases := []string{
		"",
		"go.mod",
		".env",
		"notes.txt",
		"deck.pptx",
		"presentation_x_20240101_000000.zip",
		"../presentation_x_20240101_000000.pptx",
		"sub/presentation_x_20240101_000000.pptx",
	}
	for _, name := range cases {
		rec := httptest.NewRecorder()
		handleDownload(rec, httptest.NewRequest(http.MethodGet, "/download/"+name, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "name %q", name)
	}
}
