package gemini_test

import (
	"context"
	"testing"

	"github.com/phrazzld/gardenmate/internal/config"
	"github.com/phrazzld/gardenmate/internal/generation"
	"github.com/phrazzld/gardenmate/internal/platform/gemini"
	"github.com/phrazzld/gardenmate/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLLMConfig() config.LLMConfig {
	return config.LLMConfig{
		Backend:               config.BackendREST,
		GeminiAPIKey:          "test-api-key",
		Endpoint:              config.DefaultEndpoint,
		ModelName:             config.DefaultModelName,
		RequestTimeoutSeconds: 5,
		CooldownMillis:        2000,
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(*config.LLMConfig)
		wantErr bool
	}{
		{name: "valid rest", mutate: func(*config.LLMConfig) {}},
		{name: "valid sdk", mutate: func(c *config.LLMConfig) { c.Backend = config.BackendSDK }},
		{name: "missing key", mutate: func(c *config.LLMConfig) { c.GeminiAPIKey = "" }, wantErr: true},
		{name: "rest without endpoint", mutate: func(c *config.LLMConfig) { c.Endpoint = "" }, wantErr: true},
		{
			name: "sdk without model",
			mutate: func(c *config.LLMConfig) {
				c.Backend = config.BackendSDK
				c.ModelName = ""
			},
			wantErr: true,
		},
		{name: "unknown backend", mutate: func(c *config.LLMConfig) { c.Backend = "carrier-pigeon" }, wantErr: true},
		{name: "bad timeout only warns", mutate: func(c *config.LLMConfig) { c.RequestTimeoutSeconds = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, l := logger.NewTestLogger(t)
			cfg := validLLMConfig()
			tc.mutate(&cfg)

			err := gemini.ValidateConfig(context.Background(), l, cfg)
			if tc.wantErr {
				assert.ErrorIs(t, err, generation.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewProviderSelectsBackend(t *testing.T) {
	t.Parallel()

	_, l := logger.NewTestLogger(t)
	ctx := context.Background()

	rest, err := gemini.NewProvider(ctx, l, validLLMConfig())
	require.NoError(t, err)
	assert.IsType(t, &gemini.RESTProvider{}, rest)

	cfg := validLLMConfig()
	cfg.Backend = config.BackendSDK
	sdk, err := gemini.NewProvider(ctx, l, cfg)
	require.NoError(t, err)
	assert.IsType(t, &gemini.SDKProvider{}, sdk)
}

func TestNewProviderRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	_, l := logger.NewTestLogger(t)
	cfg := validLLMConfig()
	cfg.GeminiAPIKey = ""

	p, err := gemini.NewProvider(context.Background(), l, cfg)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	_, err = gemini.NewProvider(context.Background(), nil, validLLMConfig())
	assert.Error(t, err)
}
