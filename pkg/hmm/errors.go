package hmm

import "errors"

// ErrInvalidModel reports a structurally malformed model: wrong shapes or
// probability rows that fail to sum to 1. A model that fails validation must
// never decode, so every decoding entry point surfaces this before touching
// a trellis.
var ErrInvalidModel = errors.New("invalid model")

// ModelError carries the full defect list found by Validate. It unwraps to
// ErrInvalidModel so callers can match with errors.Is.
type ModelError struct {
	Defects error
}

func (e *ModelError) Error() string {
	return "invalid model: " + e.Defects.Error()
}

func (e *ModelError) Unwrap() error {
	return ErrInvalidModel
}
