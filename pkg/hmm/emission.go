package hmm

import "math/rand/v2"

type emissionKind int

const (
	kindGaussian emissionKind = iota
	kindMixture
)

func (k emissionKind) String() string {
	switch k {
	case kindGaussian:
		return "gaussian"
	case kindMixture:
		return "gmm"
	default:
		return "unknown"
	}
}

// EmissionModel scores observation vectors against a single hidden state's
// emission density. The set of implementations is closed to this package:
// a model resolves each state's concrete density kind when it is built, and
// decoding only ever goes through this capability surface. The unexported
// methods are what keep the set sealed.
type EmissionModel interface {
	// LogLikelihood returns the log-density of the observation vector x.
	// x must have length Dimensionality. Safe for concurrent use.
	LogLikelihood(x []float64) float64

	// Dimensionality returns the feature-vector length this density scores.
	Dimensionality() int

	kind() emissionKind
	sample(dst []float64, src rand.Source)
}
