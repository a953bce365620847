// Command server exposes the vocab-tuister session engine as an HTTP API
// (spec §6.1): POST /send-vocab to submit a vocabulary list, POST /session
// to draw a batch of questions against it.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/rs/cors"
	"github.com/vocab-tuister/core/internal/config"
	"github.com/vocab-tuister/core/rogo"
	"github.com/vocab-tuister/core/server"
	"github.com/vocab-tuister/core/transfero"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	addr := flag.String("addr", cfg.Server.Addr, "listen address")
	synonymsPath := flag.String("data", cfg.Server.SynonymsPath, "path to the compressed synonym database")
	flag.Parse()

	var synonyms transfero.SynonymProvider
	if *synonymsPath != "" {
		log.Printf("loading synonym database from %s …", *synonymsPath)
		synonyms, err = transfero.LoadSynonyms(*synonymsPath)
		if err != nil {
			log.Fatalf("failed to load synonym database: %v", err)
		}
		log.Println("synonym database loaded")
	} else {
		log.Println("no synonym database configured; multiple-choice distractors will not exclude synonyms")
	}

	rng := rogo.NewRand()
	asker := rogo.NewAsker(rng, synonyms)
	store := server.NewStore()
	handler := server.NewHandler(store, asker)

	mux := http.NewServeMux()
	handler.Routes(mux)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.CORS.AllowedOrigins},
		AllowedMethods:   []string{http.MethodPost, http.MethodOptions},
		AllowCredentials: true,
	})

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, corsHandler.Handler(mux)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
