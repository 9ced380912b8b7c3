package color

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognized is returned when no grammar matches the expression.
	ErrUnrecognized = errors.New("unrecognized color expression")
	// ErrOutOfRange is returned when a grammar matched but a value is outside its valid range.
	ErrOutOfRange = errors.New("color value out of range")
)

// ParseError describes an expression that could not be turned into a color.
type ParseError struct {
	Expression string
	// Format is only meaningful when Detected is true.
	Format   Format
	Detected bool
	Reason   string
	Err      error
}

func (e *ParseError) Error() string {
	if !e.Detected {
		return fmt.Sprintf("the expression %q cannot be parsed as a color", e.Expression)
	}
	return fmt.Sprintf("the %s expression %q does not resolve to a valid color: %s", e.Format, e.Expression, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
