// Package main implements the entry point for the Scry quiz server, which
// generates learn-mode and test-mode questions from flashcards and grades
// the answers.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/scry-quiz/internal/config"
	"github.com/phrazzld/scry-quiz/internal/platform/logger"
)

// main is the entry point for the scry-quiz server.
// It loads configuration, sets up logging, wires the application and runs
// the HTTP server until it receives SIGINT or SIGTERM.
func main() {
	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app := newApplication(cfg, l)
	if err := app.Run(context.Background()); err != nil {
		l.Error("Application stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up the logger.
// Returns the loaded config, the configured logger and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"max_cards", cfg.Quiz.MaxCards)

	return cfg, l, nil
}
