package service

import (
	"fmt"

	"github.com/helixml/textutil/domain/pathname"
)

// Basename returns the final component of operands[0], with operands[1]
// removed as a suffix when given.
func Basename(operands []string) (string, error) {
	switch {
	case len(operands) == 0:
		return "", invalid(ErrMissingOperand)
	case len(operands) > 2:
		return "", fmt.Errorf("%w: %w %q", ErrInvalidArgument, ErrExtraOperand, operands[2])
	}

	name := pathname.Base(operands[0])
	if len(operands) == 2 {
		name = pathname.StripSuffix(name, operands[1])
	}
	return name, nil
}
