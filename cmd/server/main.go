package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"randnd/internal/config"
	"randnd/internal/phrase"
	"randnd/internal/server"
	"randnd/internal/words"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	source, err := words.New(words.Options{
		Kind:          cfg.WordSource,
		WordListDir:   cfg.WordListDir,
		RemoteURL:     cfg.RemoteURL,
		RemoteTimeout: cfg.RemoteTimeout,
		Seed:          cfg.RandomSeed,
	})
	if err != nil {
		log.Fatal(err)
	}
	if checker, ok := source.(words.Checker); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := checker.Check(ctx, phrase.CatalogParts())
		cancel()
		if err != nil {
			log.Fatalf("word lists unusable: %v", err)
		}
	}

	srv := server.New(source, cfg)
	log.Printf("randnd server listening on %s source=%s", cfg.Addr(), cfg.WordSource)
	if err := http.ListenAndServe(cfg.Addr(), srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
