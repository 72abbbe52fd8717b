// Package hmm defines pretrained hidden Markov models with Gaussian and
// Gaussian-mixture emission densities. Models are built (or arrive) in
// memory and are consumed read-only by the decoder; training and model file
// formats live outside this module.
package hmm

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// probSumTol is the tolerance for probability vectors summing to 1.
const probSumTol = 1e-6

// Model is a pretrained hidden Markov model. Transition row i holds the
// probabilities of moving FROM state i, Initial holds the starting-state
// probabilities, and Emissions holds one density per state. Probabilities
// are stored linear, not log; zero entries are legitimate structural
// constraints. The fields must not be mutated while a decode is in flight.
type Model struct {
	Transition *mat.Dense
	Initial    []float64
	Emissions  []EmissionModel
}

// New builds a model and validates it. See Validate for the invariants.
func New(transition *mat.Dense, initial []float64, emissions []EmissionModel) (*Model, error) {
	m := &Model{
		Transition: transition,
		Initial:    initial,
		Emissions:  emissions,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// NumStates returns the number of hidden states.
func (m *Model) NumStates() int {
	if m == nil || m.Transition == nil {
		return 0
	}
	r, _ := m.Transition.Dims()
	return r
}

// Dimensionality returns the feature-vector length of the emission
// densities, or 0 for a model without emissions.
func (m *Model) Dimensionality() int {
	if m == nil || len(m.Emissions) == 0 || m.Emissions[0] == nil {
		return 0
	}
	return m.Emissions[0].Dimensionality()
}

// EmissionKind names the emission family for diagnostics: "gaussian", "gmm",
// or "mixed" when states use different families.
func (m *Model) EmissionKind() string {
	if m == nil || len(m.Emissions) == 0 || m.Emissions[0] == nil {
		return "none"
	}
	k := m.Emissions[0].kind()
	for _, e := range m.Emissions[1:] {
		if e == nil || e.kind() != k {
			return "mixed"
		}
	}
	return k.String()
}

// Validate checks the structural invariants: a square non-empty transition
// matrix whose rows each sum to 1 within tolerance, an initial vector of
// matching length summing to 1, one emission density per state, and a single
// shared emission dimensionality. Every defect found is reported, aggregated
// into one ModelError, so a malformed model surfaces all of its problems at
// once.
func (m *Model) Validate() error {
	if m == nil {
		return &ModelError{Defects: fmt.Errorf("model is nil")}
	}

	var defects *multierror.Error

	if m.Transition == nil {
		defects = multierror.Append(defects, fmt.Errorf("transition matrix is nil"))
	} else {
		r, c := m.Transition.Dims()
		switch {
		case r != c:
			defects = multierror.Append(defects, fmt.Errorf("transition matrix is %dx%d, want square", r, c))
		case r == 0:
			defects = multierror.Append(defects, fmt.Errorf("model has no states"))
		default:
			for i := 0; i < r; i++ {
				row := m.Transition.RawRowView(i)
				if v := floats.Min(row); v < 0 {
					defects = multierror.Append(defects, fmt.Errorf("transition row %d has negative probability %g", i, v))
					continue
				}
				if sum := floats.Sum(row); math.Abs(sum-1) > probSumTol {
					defects = multierror.Append(defects, fmt.Errorf("transition row %d sums to %g, want 1", i, sum))
				}
			}
			if len(m.Initial) != r {
				defects = multierror.Append(defects, fmt.Errorf("initial vector has %d entries for %d states", len(m.Initial), r))
			}
			if len(m.Emissions) != r {
				defects = multierror.Append(defects, fmt.Errorf("%d emission densities for %d states", len(m.Emissions), r))
			}
		}
	}

	if len(m.Initial) > 0 {
		if v := floats.Min(m.Initial); v < 0 {
			defects = multierror.Append(defects, fmt.Errorf("initial vector has negative probability %g", v))
		} else if sum := floats.Sum(m.Initial); math.Abs(sum-1) > probSumTol {
			defects = multierror.Append(defects, fmt.Errorf("initial vector sums to %g, want 1", sum))
		}
	}

	dim := -1
	for i, e := range m.Emissions {
		if e == nil {
			defects = multierror.Append(defects, fmt.Errorf("emission %d is nil", i))
			continue
		}
		if dim == -1 {
			dim = e.Dimensionality()
			continue
		}
		if e.Dimensionality() != dim {
			defects = multierror.Append(defects, fmt.Errorf("emission %d has dimensionality %d, want %d", i, e.Dimensionality(), dim))
		}
	}

	if err := defects.ErrorOrNil(); err != nil {
		return &ModelError{Defects: err}
	}
	return nil
}
