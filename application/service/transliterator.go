// Package service provides application layer services that orchestrate domain operations.
package service

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/helixml/textutil/domain/charset"
	"github.com/helixml/textutil/domain/mapping"
	"github.com/helixml/textutil/infrastructure/streaming"
)

// Transliterator turns tr requests into ready-to-stream plans.
type Transliterator struct {
	engine *streaming.Engine
	logger *slog.Logger
}

// NewTransliterator creates a Transliterator streaming through engine.
func NewTransliterator(engine *streaming.Engine, logger *slog.Logger) *Transliterator {
	if engine == nil {
		engine = streaming.NewEngine()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transliterator{engine: engine, logger: logger}
}

// Plan holds the structure built for one request. It streams exactly once.
type Plan struct {
	mode       Mode
	complement bool
	index      *mapping.Membership
	table      *mapping.Table
	phase      Phase
	engine     *streaming.Engine
	logger     *slog.Logger
}

// Prepare validates req, expands its sets and builds the membership index
// or translation table. Every argument error surfaces here, before any
// output exists.
func (t *Transliterator) Prepare(req Request) (*Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &Plan{
		mode:       req.Mode(),
		complement: req.Complement,
		engine:     t.engine,
		logger:     t.logger.With(slog.String("mode", req.Mode().String())),
	}

	set1, err := charset.Parse(req.set1())
	if err != nil {
		return nil, invalid(fmt.Errorf("set1: %w", err))
	}

	if p.mode == ModeDelete {
		seq := set1.Expand()
		if err := p.transition(PhaseSetsExpanded); err != nil {
			return nil, err
		}
		p.index = mapping.BuildMembership(seq)
		if err := p.transition(PhaseStructureBuilt); err != nil {
			return nil, err
		}
		p.logger.Debug("membership index built",
			slog.Int("members", p.index.Len()),
			slog.Bool("complement", p.complement),
		)
		return p, nil
	}

	set2, err := charset.Parse(req.set2(), charset.AllowFill())
	if err != nil {
		return nil, invalid(fmt.Errorf("set2: %w", err))
	}
	seq1 := set1.Expand()
	seq2 := set2.Expand(charset.FillTo(set1.Len()))
	if err := p.transition(PhaseSetsExpanded); err != nil {
		return nil, err
	}

	p.table, err = mapping.BuildTable(seq1, seq2)
	if err != nil {
		return nil, invalid(err)
	}
	if err := p.transition(PhaseStructureBuilt); err != nil {
		return nil, err
	}
	p.logger.Debug("translation table built",
		slog.Int("set1_len", set1.Len()),
		slog.Int("set2_len", set2.Len()),
		slog.Int("keys", p.table.Len()),
	)
	return p, nil
}

// Run prepares req and streams in to out.
func (t *Transliterator) Run(req Request, in io.Reader, out io.Writer) (streaming.Stats, error) {
	p, err := t.Prepare(req)
	if err != nil {
		return streaming.Stats{}, err
	}
	return p.Stream(in, out)
}

// Transform applies req to an in-memory string.
func (t *Transliterator) Transform(req Request, text string) (string, error) {
	var out strings.Builder
	if _, err := t.Run(req, strings.NewReader(text), &out); err != nil {
		return "", err
	}
	return out.String(), nil
}

// Mode returns what the plan does to the stream.
func (p *Plan) Mode() Mode { return p.mode }

// Phase returns the plan's lifecycle state.
func (p *Plan) Phase() Phase { return p.phase }

// Stream reads in to exhaustion and writes the result to out. I/O errors
// are returned as they occur; output already flushed stays written.
func (p *Plan) Stream(in io.Reader, out io.Writer) (streaming.Stats, error) {
	if p.phase == PhaseDone {
		return streaming.Stats{}, ErrPlanDone
	}
	if err := p.transition(PhaseStreaming); err != nil {
		return streaming.Stats{}, err
	}

	var (
		stats streaming.Stats
		err   error
	)
	if p.mode == ModeDelete {
		stats, err = p.engine.RunDelete(in, out, p.index, p.complement)
	} else {
		stats, err = p.engine.RunTranslate(in, out, p.table)
	}
	p.phase = PhaseDone

	if err != nil {
		p.logger.Error("stream failed",
			slog.Int64("bytes_in", stats.BytesIn),
			slog.Int64("bytes_out", stats.BytesOut),
			slog.Any("error", err),
		)
		return stats, err
	}
	p.logger.Debug("stream complete",
		slog.Int64("bytes_in", stats.BytesIn),
		slog.Int64("bytes_out", stats.BytesOut),
	)
	return stats, nil
}

func (p *Plan) transition(to Phase) error {
	if to != p.phase+1 {
		return fmt.Errorf("%w: %s to %s", ErrPhaseOrder, p.phase, to)
	}
	p.phase = to
	return nil
}
