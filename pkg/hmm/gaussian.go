package hmm

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// Gaussian is a single multivariate normal emission density.
type Gaussian struct {
	dist *distmv.Normal
	mean []float64
	chol mat.Cholesky
}

// NewGaussian builds a Gaussian emission from a mean vector and a covariance
// matrix. The covariance must be symmetric positive definite.
func NewGaussian(mean []float64, cov *mat.SymDense) (*Gaussian, error) {
	if len(mean) == 0 {
		return nil, fmt.Errorf("gaussian: empty mean vector")
	}
	if cov == nil || cov.SymmetricDim() != len(mean) {
		return nil, fmt.Errorf("gaussian: covariance size does not match mean length %d", len(mean))
	}
	var g Gaussian
	if ok := g.chol.Factorize(cov); !ok {
		return nil, fmt.Errorf("gaussian: covariance is not positive definite")
	}
	dist, ok := distmv.NewNormal(mean, cov, nil)
	if !ok {
		return nil, fmt.Errorf("gaussian: covariance is not positive definite")
	}
	g.dist = dist
	g.mean = append([]float64(nil), mean...)
	return &g, nil
}

// NewScalarGaussian is the one-dimensional convenience: a normal density
// with the given mean and standard deviation.
func NewScalarGaussian(mean, stddev float64) (*Gaussian, error) {
	if stddev <= 0 {
		return nil, fmt.Errorf("gaussian: standard deviation must be positive, got %g", stddev)
	}
	return NewGaussian([]float64{mean}, mat.NewSymDense(1, []float64{stddev * stddev}))
}

// LogLikelihood returns the log-density of x. Safe for concurrent use.
func (g *Gaussian) LogLikelihood(x []float64) float64 {
	return g.dist.LogProb(x)
}

// Dimensionality returns the length of the feature vectors this density scores.
func (g *Gaussian) Dimensionality() int {
	return g.dist.Dim()
}

// Mean returns a copy of the mean vector.
func (g *Gaussian) Mean() []float64 {
	return append([]float64(nil), g.mean...)
}

func (g *Gaussian) kind() emissionKind { return kindGaussian }

func (g *Gaussian) sample(dst []float64, src rand.Source) {
	distmv.NormalRand(dst, g.mean, &g.chol, src)
}
