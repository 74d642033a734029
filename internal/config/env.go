package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables with the TEXTUTIL_ prefix.
type EnvConfig struct {
	// LogLevel is the log verbosity level.
	// Env: TEXTUTIL_LOG_LEVEL (default: WARN)
	LogLevel string `envconfig:"LOG_LEVEL" default:"WARN"`

	// LogFormat is the log output format (pretty or json).
	// Env: TEXTUTIL_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Color controls colour in pretty logs (auto, always, never).
	// Env: TEXTUTIL_COLOR (default: auto)
	Color string `envconfig:"COLOR" default:"auto"`

	// BufferSize is the stream chunk size in bytes.
	// Env: TEXTUTIL_BUFFER_SIZE (default: 1024)
	BufferSize int `envconfig:"BUFFER_SIZE" default:"1024"`
}

// LoadFromEnv loads configuration from TEXTUTIL_ environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix(EnvPrefix)
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "TR" would read TR_LOG_LEVEL.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.LogLevel != "" {
		cfg = cfg.Apply(WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = cfg.Apply(WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.Color != "" {
		cfg = cfg.Apply(WithColor(parseColorMode(e.Color)))
	}
	cfg = cfg.Apply(WithBufferSize(e.BufferSize))

	return cfg
}
