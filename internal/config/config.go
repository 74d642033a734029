// Package config provides application configuration.
package config

import (
	"log/slog"
	"strings"
)

// Default configuration values.
const (
	DefaultLogLevel   = "WARN"
	DefaultBufferSize = 1024
	MinBufferSize     = 16
	EnvPrefix         = "TEXTUTIL"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// ColorMode controls ANSI colour in terminal log output.
type ColorMode string

// ColorMode values.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// AppConfig holds the main application configuration.
type AppConfig struct {
	logLevel   string
	logFormat  LogFormat
	color      ColorMode
	bufferSize int
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		logLevel:   DefaultLogLevel,
		logFormat:  LogFormatPretty,
		color:      ColorAuto,
		bufferSize: DefaultBufferSize,
	}
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// Color returns the colour mode for terminal logs.
func (c AppConfig) Color() ColorMode { return c.color }

// BufferSize returns the stream chunk size in bytes.
func (c AppConfig) BufferSize() int { return c.bufferSize }

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithColor sets the colour mode.
func WithColor(mode ColorMode) AppConfigOption {
	return func(c *AppConfig) { c.color = mode }
}

// WithBufferSize sets the stream chunk size. Sizes below MinBufferSize are
// raised to it.
func WithBufferSize(n int) AppConfigOption {
	return func(c *AppConfig) {
		if n > 0 {
			c.bufferSize = max(n, MinBufferSize)
		}
	}
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("log_level", c.logLevel),
		slog.String("log_format", string(c.logFormat)),
		slog.String("color", string(c.color)),
		slog.Int("buffer_size", c.bufferSize),
	}
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}

// parseColorMode parses a colour mode string.
func parseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "always", "true", "on":
		return ColorAlways
	case "never", "false", "off":
		return ColorNever
	default:
		return ColorAuto
	}
}
