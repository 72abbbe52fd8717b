package decode

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch reports an observation matrix whose feature count,
// after orientation correction, does not match the model's emission
// dimensionality. No decode is attempted.
var ErrDimensionMismatch = errors.New("observation dimensionality mismatch")

// ErrEmptySequence reports an observation sequence with zero time steps.
var ErrEmptySequence = errors.New("empty observation sequence")

// ErrSink reports that a decoded result could not be handed to its sink.
// The decode itself succeeded; callers receive the Result alongside this
// error and must not treat it as a decoding failure.
var ErrSink = errors.New("result sink failure")

// DimensionError carries both sides of a dimensionality mismatch. It unwraps
// to ErrDimensionMismatch.
type DimensionError struct {
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("observation dimensionality (%d) does not match emission dimensionality (%d)", e.Got, e.Want)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

// SinkError wraps the underlying persistence failure. It unwraps to ErrSink.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string {
	return "result sink: " + e.Err.Error()
}

func (e *SinkError) Unwrap() error {
	return ErrSink
}
