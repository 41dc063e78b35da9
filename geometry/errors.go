package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is matched by every *FormatError.
	ErrInvalidFormat = errors.New("invalid coordinate format")
	// ErrNegativeSide is returned when a cube is built with a side length below zero.
	ErrNegativeSide = errors.New("side must be non-negative")
)

// FormatError reports a coordinate string that could not be parsed as "x,y,z".
type FormatError struct {
	Input  string
	Reason string
	Cause  error
}

func newFormatError(input, reason string, cause error) *FormatError {
	return &FormatError{Input: input, Reason: reason, Cause: cause}
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %q: %s (cause: %v)", ErrInvalidFormat, e.Input, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %q: %s", ErrInvalidFormat, e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
