// Package main serves a generated world over HTTP for inspection.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/cavecrawler/internal/game"
	"github.com/samdwyer/cavecrawler/internal/gamedata"
	"github.com/samdwyer/cavecrawler/internal/inspect"
	"github.com/samdwyer/cavecrawler/internal/telemetry"
	"github.com/samdwyer/cavecrawler/internal/world"
)

const defaultAddr = ":8080"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	telemetry.ConfigureHoneycomb("CAVECRAWLER", "cavecrawler")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, "worldserve")
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	w := world.New(ctx, world.Config{Seed: cfg.Seed, Profile: cfg.Profile})
	log.Printf("Generated %v world %s with seed %d", w.Profile, w.ID, w.Seed)

	styles, err := gamedata.LoadTileStyles()
	if err != nil {
		log.Fatalf("Failed to load tile styles: %v", err)
	}

	addr := os.Getenv("WORLDSERVE_ADDR")
	if addr == "" {
		addr = defaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           inspect.SetupRoutes(w, styles),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}
