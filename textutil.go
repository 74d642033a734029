// Package textutil provides tr-style character translation and deletion
// over byte streams, plus a basename helper.
//
// Basic usage:
//
//	client := textutil.New(textutil.WithBufferSize(4096))
//
//	// Upper-case stdin to stdout
//	_, err := client.Transliterator.Run(
//	    service.NewTranslateRequest("[:lower:]", "[:upper:]"),
//	    os.Stdin, os.Stdout,
//	)
//
//	// Keep only digits
//	digits, err := client.Transliterator.Transform(
//	    service.NewDeleteRequest("[:digit:]", true),
//	    "order #1234",
//	)
//
//	name, err := client.Basename("/usr/lib/libc.so", ".so")
package textutil

import (
	"log/slog"

	"github.com/helixml/textutil/application/service"
	"github.com/helixml/textutil/infrastructure/streaming"
)

// Client is the main entry point for the textutil library.
//
// Access services via struct fields:
//
//	client.Transliterator.Run(req, in, out)
type Client struct {
	Transliterator *service.Transliterator

	engine *streaming.Engine
	logger *slog.Logger
}

// New creates a new Client with the given options.
func New(opts ...Option) *Client {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	engine := streaming.NewEngine(streaming.WithBufferSize(cfg.bufferSize))

	return &Client{
		Transliterator: service.NewTransliterator(engine, logger),
		engine:         engine,
		logger:         logger,
	}
}

// Basename returns the final path component of operands[0], removing
// operands[1] as a suffix when given.
func (c *Client) Basename(operands ...string) (string, error) {
	return service.Basename(operands)
}

// BufferSize returns the stream chunk size in bytes.
func (c *Client) BufferSize() int {
	return c.engine.BufferSize()
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}
