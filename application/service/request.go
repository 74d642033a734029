package service

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingOperand indicates fewer operands than the mode needs.
	ErrMissingOperand = errors.New("missing operand")

	// ErrExtraOperand indicates more operands than the mode accepts.
	ErrExtraOperand = errors.New("extra operand")

	// ErrComplementWithoutDelete indicates -c used without -d.
	ErrComplementWithoutDelete = errors.New("-c is only supported with -d")

	// ErrEmptySet indicates an empty set1.
	ErrEmptySet = errors.New("set1 must not be empty")
)

// Mode selects what a Plan does to the stream.
type Mode int

// Mode values.
const (
	ModeTranslate Mode = iota
	ModeDelete
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeDelete {
		return "delete"
	}
	return "translate"
}

// Request is a validated-on-demand description of one tr invocation.
type Request struct {
	Delete     bool
	Complement bool
	Operands   []string
}

// NewTranslateRequest creates a request mapping set1 onto set2.
func NewTranslateRequest(set1, set2 string) Request {
	return Request{Operands: []string{set1, set2}}
}

// NewDeleteRequest creates a request deleting the members of set1, or
// everything else when complement is set.
func NewDeleteRequest(set1 string, complement bool) Request {
	return Request{Delete: true, Complement: complement, Operands: []string{set1}}
}

// Mode returns the request's mode.
func (r Request) Mode() Mode {
	if r.Delete {
		return ModeDelete
	}
	return ModeTranslate
}

// Validate checks flag combinations and operand counts.
func (r Request) Validate() error {
	if r.Complement && !r.Delete {
		return invalid(ErrComplementWithoutDelete)
	}

	want := 2
	if r.Delete {
		want = 1
	}
	switch {
	case len(r.Operands) == 0:
		return invalid(ErrMissingOperand)
	case len(r.Operands) < want:
		return fmt.Errorf("%w: %w after %q", ErrInvalidArgument, ErrMissingOperand, r.Operands[len(r.Operands)-1])
	case len(r.Operands) > want:
		return fmt.Errorf("%w: %w %q", ErrInvalidArgument, ErrExtraOperand, r.Operands[want])
	}

	if r.Operands[0] == "" {
		return invalid(ErrEmptySet)
	}
	return nil
}

func (r Request) set1() string { return r.Operands[0] }

func (r Request) set2() string { return r.Operands[1] }
