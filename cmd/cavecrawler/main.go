// Package main is the entry point for the cavecrawler terminal game.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/cavecrawler/internal/game"
	"github.com/samdwyer/cavecrawler/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	telemetry.ConfigureHoneycomb("CAVECRAWLER", "cavecrawler")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, "cavecrawler")
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
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

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Game error: %v", err)
	}
	if s := g.Session(); s != nil {
		log.Printf("World seed %d (%v)", s.World.Seed, s.World.Profile)
	}
}
