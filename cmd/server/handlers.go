package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/mbalazs/deckgen/internal/pipeline"
	"github.com/mbalazs/deckgen/internal/pptx"
	"github.com/mbalazs/deckgen/internal/preview"
)

const pptxMIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := map[string]interface{}{"AppName": cfg.Application.Name}
	if store != nil {
		recent, err := store.Recent(r.Context(), 10)
		if err != nil {
			log.Printf("Failed to load history: %v", err)
		} else {
			data["Recent"] = recent
		}
	}

	tmpl.ExecuteTemplate(w, "index.html", data)
}

func handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	topic := r.FormValue("topic")
	filename, err := generator.Generate(r.Context(), topic)
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyTopic) {
			http.Error(w, "Please enter a topic to continue", http.StatusBadRequest)
			return
		}
		log.Printf("Generation failed for %q: %v", topic, err)
		http.Error(w, "Presentation generation failed", http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"AppName":  cfg.Application.Name,
		"Topic":    topic,
		"Filename": filename,
	}

	outline, err := pptx.ReadOutline(filepath.Join(cfg.Application.OutputDir, filename))
	if err != nil {
		log.Printf("Failed to read outline of %s: %v", filename, err)
	} else {
		data["Preview"] = preview.HTML(outline)
		data["SlideCount"] = len(outline)
	}

	tmpl.ExecuteTemplate(w, "result.html", data)
}

func handleDownload(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimPrefix(r.URL.Path, "/download/")
	// Only generated artifacts are downloadable; OutputDir may hold other
	// files (it defaults to the working directory).
	if filename != filepath.Base(filename) ||
		!strings.HasPrefix(filename, "presentation_") ||
		!strings.HasSuffix(filename, ".pptx") {
		http.Error(w, "Invalid filename", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", pptxMIME)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	http.ServeFile(w, r, filepath.Join(cfg.Application.OutputDir, filename))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
