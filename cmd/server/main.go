package main

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"

	"github.com/mbalazs/deckgen/internal/ai"
	"github.com/mbalazs/deckgen/internal/artifact"
	"github.com/mbalazs/deckgen/internal/config"
	"github.com/mbalazs/deckgen/internal/deck"
	"github.com/mbalazs/deckgen/internal/history"
	"github.com/mbalazs/deckgen/internal/images"
	"github.com/mbalazs/deckgen/internal/pipeline"
	"github.com/mbalazs/deckgen/internal/search"
	"github.com/mbalazs/deckgen/internal/watcher"
)

var (
	cfg       *config.Config
	tmpl      *template.Template
	generator *pipeline.Generator
	store     *history.Store
)

func main() {
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	gemini, err := ai.NewGeminiClient(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		log.Fatal(err)
	}
	defer gemini.Close()

	searchClient := search.NewClient(search.NewSerpAPIProvider(cfg.Search.SerpAPIKey))

	if err := os.MkdirAll(cfg.Application.OutputDir, 0755); err != nil {
		log.Fatal(err)
	}

	var historyStore pipeline.HistoryStore
	if cfg.Database.URL != "" {
		store, err = history.NewStore(cfg.Database.URL)
		if err != nil {
			log.Fatal(err)
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatal(err)
		}
		historyStore = store
	}

	generator = pipeline.NewGenerator(
		searchClient,
		ai.NewSynthesizer(gemini),
		deck.NewAssembler(images.NewResolver(searchClient)),
		artifact.NewWriter(cfg.Application.OutputDir),
		historyStore,
		nil,
	)

	if cfg.Watcher.Inbox != "" {
		go func() {
			if err := watcher.New(cfg.Watcher.Inbox, generator.Generate).Start(ctx); err != nil {
				log.Printf("Topic inbox watcher stopped: %v", err)
			}
		}()
	}

	// Templates
	tmpl = template.Must(template.ParseGlob("ui/templates/*.html"))

	// Routes
	http.HandleFunc("/", handleIndex)
	http.HandleFunc("/generate", handleGenerate)
	http.HandleFunc("/download/", handleDownload)
	http.HandleFunc("/healthz", handleHealth)

	fmt.Printf("deckgen starting on http://localhost:%d\n", cfg.Application.Port)
	log.Fatal(http.ListenAndServe(cfg.Application.Addr(), nil))
}
