package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// Provider backends accepted by LLMConfig.Backend.
const (
	BackendREST = "rest"
	BackendSDK  = "sdk"
)

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// Backend selects how the provider is called: the raw REST endpoint or
	// the genai SDK.
	Backend string `mapstructure:"backend" validate:"required,oneof=rest sdk"`

	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// Endpoint is the full generateContent URL used by the REST backend.
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`

	// ModelName is used by the SDK backend.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// BaseURL optionally overrides the SDK backend's API host.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gt=0,lte=120"`
	CooldownMillis        int `mapstructure:"cooldown_millis"         validate:"gte=0"`
}

// RequestTimeout returns the per-call provider timeout.
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Cooldown returns the minimum spacing between provider calls.
func (c LLMConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownMillis) * time.Millisecond
}
