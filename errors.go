package gielis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter reports a parameter value the superformula cannot
	// evaluate (non-positive a, b or n1, a non-finite value, ...).
	ErrInvalidParameter = errors.New("gielis: invalid parameter")

	// ErrNonFiniteSample reports that one or more samples evaluated to NaN or
	// ±Inf and were left out of the geometry.
	ErrNonFiniteSample = errors.New("gielis: non-finite sample")

	// ErrIDConflict is returned when a rename would collide with another shape.
	ErrIDConflict = errors.New("gielis: shape id already in use")

	// ErrInvalidID is returned for an empty shape id.
	ErrInvalidID = errors.New("gielis: invalid shape id")

	// ErrUnknownParam is returned for a parameter key outside the table.
	ErrUnknownParam = errors.New("gielis: unknown parameter")

	// ErrInvalidColor is returned when a colour string cannot be parsed.
	ErrInvalidColor = errors.New("gielis: invalid color")
)

// ParamError describes a rejected parameter value.
type ParamError struct {
	Key    string
	Value  float64
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("gielis: invalid parameter %s=%v: %s", e.Key, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParamError) Unwrap() error { return ErrInvalidParameter }
