package textutil

import (
	"log/slog"

	"github.com/helixml/textutil/infrastructure/streaming"
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	bufferSize int
	logger     *slog.Logger
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		bufferSize: streaming.DefaultBufferSize,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithBufferSize sets the stream chunk size in bytes.
// Non-positive values keep the default; small values are raised to
// streaming.MinBufferSize.
func WithBufferSize(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}
