package dynamo

import (
	"errors"
	"fmt"
	"math"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidParameter indicates a model or step-size parameter that cannot
	// be simulated.
	ErrInvalidParameter = errors.New("dynamo: invalid parameter")

	// ErrInvalidDuration indicates a duration that is negative or not a whole
	// number of steps.
	ErrInvalidDuration = errors.New("dynamo: invalid duration")

	// ErrIndexOutOfRange indicates a history lookup past the stored states.
	ErrIndexOutOfRange = errors.New("dynamo: index out of range")
)

// ParameterError wraps ErrInvalidParameter with the offending field.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidParameter, e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// DurationError wraps ErrInvalidDuration with the requested span and step.
type DurationError struct {
	T  float64
	Dt float64
}

func (e *DurationError) Error() string {
	if e.T < 0 {
		return fmt.Sprintf("%s: T=%g must be >= 0", ErrInvalidDuration, e.T)
	}
	if math.IsInf(e.T, 0) || e.T/e.Dt >= float64(math.MaxInt) {
		return fmt.Sprintf("%s: T=%g is too long for dt=%g", ErrInvalidDuration, e.T, e.Dt)
	}
	return fmt.Sprintf("%s: T=%g is not a multiple of dt=%g", ErrInvalidDuration, e.T, e.Dt)
}

func (e *DurationError) Unwrap() error {
	return ErrInvalidDuration
}

// IndexError wraps ErrIndexOutOfRange with the requested index and length.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %d not in [0, %d)", ErrIndexOutOfRange, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
