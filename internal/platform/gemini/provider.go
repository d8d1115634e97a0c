package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/gardenmate/internal/config"
	"github.com/phrazzld/gardenmate/internal/generation"
)

// ValidateConfig checks the LLM settings a provider needs before any
// client is built.
func ValidateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key", "error", "GeminiAPIKey is empty")
		return fmt.Errorf("%w: GeminiAPIKey cannot be empty", generation.ErrInvalidConfig)
	}

	switch cfg.Backend {
	case config.BackendREST:
		if cfg.Endpoint == "" {
			return fmt.Errorf("%w: Endpoint cannot be empty for the rest backend", generation.ErrInvalidConfig)
		}
	case config.BackendSDK:
		if cfg.ModelName == "" {
			return fmt.Errorf("%w: ModelName cannot be empty for the sdk backend", generation.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", generation.ErrInvalidConfig, cfg.Backend)
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		logger.WarnContext(ctx, "Invalid request timeout, using default",
			"value", cfg.RequestTimeoutSeconds,
			"default_seconds", generation.DefaultRequestTimeout.Seconds())
	}

	return nil
}

// NewProvider creates the generation.Provider selected by cfg.Backend.
func NewProvider(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Provider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := ValidateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	timeout := cfg.RequestTimeout()
	if timeout <= 0 {
		timeout = generation.DefaultRequestTimeout
	}

	logger.InfoContext(ctx, "Initializing Gemini provider",
		"backend", cfg.Backend,
		"timeout_seconds", timeout.Seconds())

	if cfg.Backend == config.BackendSDK {
		p, err := NewSDKProvider(ctx, logger, nil, cfg.GeminiAPIKey, cfg.ModelName, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	p, err := NewRESTProvider(logger, nil, cfg.Endpoint, cfg.GeminiAPIKey, timeout)
	if err != nil {
		return nil, err
	}
	return p, nil
}
