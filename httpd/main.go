// httpd/main.go
// HTTP server main package for the scrawl move service
// Copyright (C) 2026 Scrawl Games

package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	scrawl "github.com/scrawl-games/scrawl"
)

// Bearer authorization header, or "" if no auth is required
var authHeader string

// Allowed access control (CORS) origins
var allowedOrigins = "*" // Default to all origins allowed

// withAccessControl wraps a handler with CORS headers and,
// if configured, bearer token authorization
func withAccessControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", allowedOrigins)
		header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			// Preflight request: the response headers are enough
			return
		}
		if authHeader != "" && r.Header.Get("Authorization") != authHeader {
			http.Error(w, "Authorization header mismatch", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	wordFile := flag.String("w", "words.txt", "Word list file (one word per line)")
	cacheFile := flag.String("c", "", "Cached automaton file (built if missing)")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Info().Str("goVersion", runtime.Version()).Msg("moves service starting")

	// Load configuration from a .env file, if present
	if err := godotenv.Load(); err == nil {
		log.Info().Msg("loaded environment from .env file")
	}

	// Figure out the authorization header, if required
	if accessKey := os.Getenv("ACCESS_KEY"); accessKey != "" {
		authHeader = "Bearer " + accessKey
	}
	// Establish allowed CORS origins
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		log.Info().Str("origins", origins).Msg("allowed CORS origins")
		allowedOrigins = origins
	} else {
		log.Info().Msg("no ALLOWED_ORIGINS specified, allowing all")
	}

	gaddag, err := scrawl.LoadOrBuild(*wordFile, *cacheFile)
	if err != nil {
		log.Fatal().Err(err).Str("wordFile", *wordFile).Msg("could not load dictionary")
	}
	svc := scrawl.NewMoveService(gaddag)

	// Connect to the riddle store, if a project is configured
	if projectID := os.Getenv("DATASTORE_PROJECT_ID"); projectID != "" {
		store, err := scrawl.NewPuzzleStore(context.Background(), projectID)
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to puzzle store")
		}
		defer store.Close()
		svc.Store = store
	}

	// Establish the port number to listen on, defaulting to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      withAccessControl(svc.Router()),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
	}
	log.Info().Str("port", port).Msg("listening")
	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
