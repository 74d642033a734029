package main

import (
	"context"

	"github.com/helixml/textutil"
	"github.com/helixml/textutil/internal/log"
)

// clientOptions returns the textutil.Option slice derived from the loaded
// configuration, with log records tagged by operation.
func (a *app) clientOptions(ctx context.Context, operation string) []textutil.Option {
	logger := a.logger.WithContext(log.WithOperation(ctx, operation))
	return []textutil.Option{
		textutil.WithBufferSize(a.cfg.BufferSize()),
		textutil.WithLogger(logger.Slog()),
	}
}

func (a *app) client(ctx context.Context, operation string) *textutil.Client {
	return textutil.New(a.clientOptions(ctx, operation)...)
}
