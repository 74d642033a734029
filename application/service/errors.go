package service

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument classifies every error caused by caller input. It is
// always reported before any output is written.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrPlanDone indicates a Plan that has already streamed.
var ErrPlanDone = errors.New("plan has already streamed")

// ErrPhaseOrder indicates an attempt to skip a phase.
var ErrPhaseOrder = errors.New("invalid phase transition")

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
}
