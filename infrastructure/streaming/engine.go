// Package streaming applies membership indexes and translation tables to
// byte streams in bounded chunks.
package streaming

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/helixml/textutil/domain/mapping"
	"golang.org/x/text/transform"
)

// DefaultBufferSize is the chunk size used when none is configured.
const DefaultBufferSize = 1024

// MinBufferSize is the smallest accepted chunk size. It leaves room for the
// longest UTF-8 encoding.
const MinBufferSize = 16

var (
	// ErrRead wraps failures reading the input stream.
	ErrRead = errors.New("read input")

	// ErrWrite wraps failures writing the output stream.
	ErrWrite = errors.New("write output")
)

// Stats describes one completed or aborted run.
type Stats struct {
	BytesIn  int64
	BytesOut int64
}

// Engine streams input through a transformer to output.
type Engine struct {
	bufferSize int
}

// Option configures an Engine.
type Option func(*Engine)

// WithBufferSize sets the chunk size. Values below MinBufferSize are raised.
func WithBufferSize(n int) Option {
	return func(e *Engine) {
		e.bufferSize = max(n, MinBufferSize)
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BufferSize returns the configured chunk size.
func (e *Engine) BufferSize() int { return e.bufferSize }

// RunDelete copies in to out, dropping characters according to index.
func (e *Engine) RunDelete(in io.Reader, out io.Writer, index *mapping.Membership, complement bool) (Stats, error) {
	return e.run(in, out, NewDeleter(index, complement))
}

// RunTranslate copies in to out, replacing characters found in table.
func (e *Engine) RunTranslate(in io.Reader, out io.Writer, table *mapping.Table) (Stats, error) {
	return e.run(in, out, NewTranslator(table))
}

func (e *Engine) run(in io.Reader, out io.Writer, t transform.Transformer) (Stats, error) {
	counter := &countingReader{r: in}
	reader := transform.NewReader(counter, t)
	writer := bufio.NewWriterSize(out, e.bufferSize)
	buf := make([]byte, e.bufferSize)

	var stats Stats
	for {
		n, readErr := reader.Read(buf)
		if n > 0 {
			if _, err := writer.Write(buf[:n]); err != nil {
				stats.BytesIn = counter.n
				return stats, fmt.Errorf("%w: %w", ErrWrite, err)
			}
			stats.BytesOut += int64(n)
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			stats.BytesIn = counter.n
			// Keep what was already produced.
			if err := writer.Flush(); err != nil {
				return stats, errors.Join(fmt.Errorf("%w: %w", ErrRead, readErr), fmt.Errorf("%w: %w", ErrWrite, err))
			}
			return stats, fmt.Errorf("%w: %w", ErrRead, readErr)
		}
	}

	stats.BytesIn = counter.n
	if err := writer.Flush(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return stats, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
