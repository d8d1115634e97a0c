package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// GARDENMATE_LLM_GEMINI_API_KEY for llm.gemini_api_key.
const EnvPrefix = "GARDENMATE"

// Defaults applied before any file or environment value.
const (
	DefaultPort                  = 8080
	DefaultLogLevel              = "info"
	DefaultBackend               = BackendREST
	DefaultModelName             = "gemini-1.5-flash-latest"
	DefaultEndpoint              = "https://generativelanguage.googleapis.com/v1beta/models/" + DefaultModelName + ":generateContent"
	DefaultRequestTimeoutSeconds = 10
	DefaultCooldownMillis        = 2000
)

// Load reads configuration from a .env file (if present), an optional
// config.yaml in the working directory, and GARDENMATE_* environment
// variables. Environment variables take precedence over values from files.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile behaves like Load but reads the given config file instead of
// searching the working directory. An empty path falls back to the search.
func LoadFile(path string) (*Config, error) {
	// Existing environment variables win over .env entries.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during
// Unmarshal, including keys that have no meaningful default.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)

	v.SetDefault("llm.backend", DefaultBackend)
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.endpoint", DefaultEndpoint)
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.request_timeout_seconds", DefaultRequestTimeoutSeconds)
	v.SetDefault("llm.cooldown_millis", DefaultCooldownMillis)
}
