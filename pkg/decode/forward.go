package decode

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/seqlab/lattice/pkg/hmm"
)

// LogLikelihood returns the log-probability of the observation sequence
// under the model, summed over all hidden paths (the forward algorithm).
// It is never less than the MAP path's LogProb reported by Decode.
func (d *Decoder) LogLikelihood(m *hmm.Model, obs *Observations) (float64, error) {
	if err := d.check(m, obs); err != nil {
		return 0, err
	}

	n := m.NumStates()
	steps := obs.Len()
	logInit, logTrans := logParams(m)
	emit := d.emissionScores(m, obs)

	alpha := make([]float64, n)
	next := make([]float64, n)
	terms := make([]float64, n)

	for s := 0; s < n; s++ {
		alpha[s] = logInit[s] + emit[s]
	}
	for t := 1; t < steps; t++ {
		for s := 0; s < n; s++ {
			for p := 0; p < n; p++ {
				terms[p] = alpha[p] + logTrans[p*n+s]
			}
			next[s] = floats.LogSumExp(terms) + emit[t*n+s]
		}
		alpha, next = next, alpha
	}
	return floats.LogSumExp(alpha), nil
}

// Posteriors returns the smoothed per-step state probabilities as a
// steps×numStates matrix whose rows each sum to 1 (the forward-backward
// algorithm). It fails for a sequence the model assigns zero probability,
// since the posterior is undefined there.
func (d *Decoder) Posteriors(m *hmm.Model, obs *Observations) (*mat.Dense, error) {
	if err := d.check(m, obs); err != nil {
		return nil, err
	}

	n := m.NumStates()
	steps := obs.Len()
	logInit, logTrans := logParams(m)
	emit := d.emissionScores(m, obs)

	alpha := make([]float64, steps*n)
	beta := make([]float64, steps*n)
	terms := make([]float64, n)

	for s := 0; s < n; s++ {
		alpha[s] = logInit[s] + emit[s]
	}
	for t := 1; t < steps; t++ {
		for s := 0; s < n; s++ {
			for p := 0; p < n; p++ {
				terms[p] = alpha[(t-1)*n+p] + logTrans[p*n+s]
			}
			alpha[t*n+s] = floats.LogSumExp(terms) + emit[t*n+s]
		}
	}

	// beta at the final step is log(1) = 0 everywhere.
	for t := steps - 2; t >= 0; t-- {
		for s := 0; s < n; s++ {
			for q := 0; q < n; q++ {
				terms[q] = logTrans[s*n+q] + emit[(t+1)*n+q] + beta[(t+1)*n+q]
			}
			beta[t*n+s] = floats.LogSumExp(terms)
		}
	}

	if total := floats.LogSumExp(alpha[(steps-1)*n:]); math.IsInf(total, -1) {
		return nil, fmt.Errorf("posteriors: observation sequence has zero probability under the model")
	}

	post := mat.NewDense(steps, n, nil)
	for t := 0; t < steps; t++ {
		row := post.RawRowView(t)
		for s := 0; s < n; s++ {
			row[s] = alpha[t*n+s] + beta[t*n+s]
		}
		norm := floats.LogSumExp(row)
		for s := range row {
			row[s] = math.Exp(row[s] - norm)
		}
	}
	return post, nil
}
