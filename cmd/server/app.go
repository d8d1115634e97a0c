package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gardenmate/internal/config"
	"github.com/phrazzld/gardenmate/internal/events"
	"github.com/phrazzld/gardenmate/internal/fallback"
	"github.com/phrazzld/gardenmate/internal/gate"
	"github.com/phrazzld/gardenmate/internal/generation"
	"github.com/phrazzld/gardenmate/internal/platform/gemini"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	gate     *gate.Gate
	oracle   *fallback.Oracle
	provider generation.Provider

	eventEmitter *events.InMemoryEventEmitter
	client       *generation.Client
}

// newApplication creates an application with every dependency initialized.
// It fails only on configuration problems; a provider that is unreachable at
// runtime is handled by the fallback path instead.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		gate:   gate.New(cfg.LLM.Cooldown()),
		oracle: fallback.NewOracle(nil),
	}

	var err error
	app.provider, err = gemini.NewProvider(ctx, logger.With("component", "llm_provider"), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewLoggingHandler(logger))

	app.client, err = generation.NewClient(
		app.provider,
		app.gate,
		app.oracle,
		logger.With("component", "generation_client"),
		generation.WithTimeout(cfg.LLM.RequestTimeout()),
		generation.WithEmitter(app.eventEmitter),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	logger.Info("Application initialized successfully",
		"cooldown_ms", app.gate.Cooldown().Milliseconds())
	return app, nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
