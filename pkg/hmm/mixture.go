package hmm

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Mixture is a Gaussian mixture emission density: a weighted sum of Gaussian
// components sharing one dimensionality.
type Mixture struct {
	weights    []float64
	logWeights []float64
	components []*Gaussian
}

// NewMixture builds a mixture emission. Weights must be non-negative, one per
// component, and sum to 1 within tolerance.
func NewMixture(weights []float64, components []*Gaussian) (*Mixture, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("mixture: no components")
	}
	if len(weights) != len(components) {
		return nil, fmt.Errorf("mixture: %d weights for %d components", len(weights), len(components))
	}
	dim := 0
	for i, c := range components {
		if c == nil {
			return nil, fmt.Errorf("mixture: component %d is nil", i)
		}
		if i == 0 {
			dim = c.Dimensionality()
			continue
		}
		if c.Dimensionality() != dim {
			return nil, fmt.Errorf("mixture: component %d has dimensionality %d, want %d", i, c.Dimensionality(), dim)
		}
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("mixture: negative weight %g at index %d", w, i)
		}
	}
	if sum := floats.Sum(weights); math.Abs(sum-1) > probSumTol {
		return nil, fmt.Errorf("mixture: weights sum to %g, want 1", sum)
	}

	mx := &Mixture{
		weights:    append([]float64(nil), weights...),
		logWeights: make([]float64, len(weights)),
		components: append([]*Gaussian(nil), components...),
	}
	for i, w := range mx.weights {
		mx.logWeights[i] = math.Log(w)
	}
	return mx, nil
}

// LogLikelihood returns the log-density of x under the mixture. Safe for
// concurrent use.
func (mx *Mixture) LogLikelihood(x []float64) float64 {
	terms := make([]float64, len(mx.components))
	for i, c := range mx.components {
		terms[i] = mx.logWeights[i] + c.LogLikelihood(x)
	}
	return floats.LogSumExp(terms)
}

// Dimensionality returns the shared dimensionality of the components.
func (mx *Mixture) Dimensionality() int {
	return mx.components[0].Dimensionality()
}

func (mx *Mixture) kind() emissionKind { return kindMixture }

func (mx *Mixture) sample(dst []float64, src rand.Source) {
	comp := int(distuv.NewCategorical(mx.weights, src).Rand())
	mx.components[comp].sample(dst, src)
}
