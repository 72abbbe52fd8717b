package decode

import (
	"gonum.org/v1/gonum/mat"
)

// Observations is a validated, correctly oriented observation sequence:
// columns are time steps, rows are feature dimensions. Build one with
// Normalize; it must not be mutated afterwards.
type Observations struct {
	data       *mat.Dense
	transposed bool
}

// Normalize validates and orients a raw observation matrix against the
// expected emission dimensionality.
//
// A matrix with exactly one column checked against a one-dimensional model
// is the common mistake of a column-vector sequence passed in row-major
// form; that one case is corrected by transposing. The heuristic is
// deliberately this narrow: a single-row matrix against a wider model is
// not corrected. After the optional correction the row count must equal
// expectedDim or Normalize fails with a DimensionError reporting both
// values.
//
// A nil matrix is an empty sequence. When no transpose is needed the
// returned Observations references raw, so the caller must not mutate raw
// while decoding.
func Normalize(raw *mat.Dense, expectedDim int) (*Observations, error) {
	if raw == nil {
		return nil, ErrEmptySequence
	}

	data := raw
	transposed := false
	if _, c := raw.Dims(); c == 1 && expectedDim == 1 {
		data = mat.DenseCopyOf(raw.T())
		transposed = true
	}

	if r, _ := data.Dims(); r != expectedDim {
		return nil, &DimensionError{Got: r, Want: expectedDim}
	}
	return &Observations{data: data, transposed: transposed}, nil
}

// Dim returns the feature-vector length of each observation.
func (o *Observations) Dim() int {
	r, _ := o.data.Dims()
	return r
}

// Len returns the number of time steps.
func (o *Observations) Len() int {
	_, c := o.data.Dims()
	return c
}

// Transposed reports whether Normalize corrected the orientation.
func (o *Observations) Transposed() bool {
	return o.transposed
}

// Col copies the observation at time step t into dst, which must have
// length Dim.
func (o *Observations) Col(dst []float64, t int) []float64 {
	return mat.Col(dst, t, o.data)
}
