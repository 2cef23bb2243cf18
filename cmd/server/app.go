package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/phrazzld/scry-quiz/internal/config"
	"github.com/phrazzld/scry-quiz/internal/domain/quiz"
	"github.com/phrazzld/scry-quiz/internal/events"
	"github.com/phrazzld/scry-quiz/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Service interfaces
	quizEngine   quiz.Service
	studyService service.StudyService

	// Event system
	eventEmitter *events.InMemoryEventEmitter
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// Initialize quiz engine with configured tuning
	app.quizEngine = quiz.NewServiceWithParams(quiz.NewParams(quiz.ParamsConfig{
		MaxOptions:         cfg.Quiz.MaxOptions,
		SubstringMinLength: cfg.Quiz.SubstringMinLength,
		FuzzyMinLength:     cfg.Quiz.FuzzyMinLength,
		TypoTolerance:      cfg.Quiz.TypoTolerance,
		MinTypoAllowance:   cfg.Quiz.MinTypoAllowance,
	}))

	// Initialize event emitter; events are written to the structured log
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewLoggingHandler(logger))

	// Initialize study service. Seeds come from the runtime-seeded generator.
	app.studyService = service.NewStudyService(
		app.quizEngine,
		app.eventEmitter,
		service.Limits{
			MaxCards:                 cfg.Quiz.MaxCards,
			DefaultNumberOfQuestions: cfg.Quiz.DefaultNumberOfQuestions,
		},
		rand.Uint64,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
