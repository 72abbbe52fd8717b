// Package decode implements MAP sequence decoding (the Viterbi algorithm)
// and related read-side queries for pretrained hidden Markov models.
package decode

import (
	"math"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/seqlab/lattice/pkg/hmm"
)

// Decoder runs MAP sequence decoding. It is stateless and safe for
// concurrent use; each call owns its own trellis. The zero Decoder decodes
// serially.
type Decoder struct {
	workers int
}

// NewDecoder builds a Decoder. Options are normalized here, never at use
// sites: a worker count below 1 becomes serial emission scoring.
func NewDecoder(opts Options) *Decoder {
	opts = opts.withDefaults()
	return &Decoder{workers: opts.Workers}
}

// Decode computes the most probable hidden-state path for obs under m.
//
// The computation is standard Viterbi in log-space: probabilities are only
// ever added as logarithms, so products of small probabilities cannot
// underflow and zero transition or initial probabilities become negative
// infinity rather than errors. Ties are broken toward the lowest state
// index, making repeated calls bitwise deterministic. Runs in O(T·N²) time
// and O(T·N) space; the trellis is released when the call returns.
//
// The model is validated before any trellis work and borrowed read-only;
// it must not be mutated while the call is in flight.
func (d *Decoder) Decode(m *hmm.Model, obs *Observations) (*Result, error) {
	start := time.Now()

	if err := d.check(m, obs); err != nil {
		return nil, err
	}

	n := m.NumStates()
	steps := obs.Len()
	logInit, logTrans := logParams(m)
	emit := d.emissionScores(m, obs)

	// Flat trellis, indexed t*n+s. back is never read at t == 0.
	score := make([]float64, steps*n)
	back := make([]int, steps*n)

	for s := 0; s < n; s++ {
		score[s] = logInit[s] + emit[s]
	}

	cand := make([]float64, n)
	for t := 1; t < steps; t++ {
		prev := score[(t-1)*n : t*n]
		for s := 0; s < n; s++ {
			for p := 0; p < n; p++ {
				cand[p] = prev[p] + logTrans[p*n+s]
			}
			// MaxIdx takes the first maximum, so ties resolve to the
			// lowest predecessor index.
			bp := floats.MaxIdx(cand)
			back[t*n+s] = bp
			score[t*n+s] = cand[bp] + emit[t*n+s]
		}
	}

	final := score[(steps-1)*n:]
	best := floats.MaxIdx(final)

	states := make([]int, steps)
	states[steps-1] = best
	for t := steps - 1; t > 0; t-- {
		states[t-1] = back[t*n+states[t]]
	}

	return &Result{
		States:  states,
		LogProb: final[best],
		Stats:   newStats(steps, n, time.Since(start)),
	}, nil
}

// check runs the shared entry validation: a non-empty sequence, a
// structurally valid model and agreeing dimensionalities.
func (d *Decoder) check(m *hmm.Model, obs *Observations) error {
	if obs == nil || obs.Len() == 0 {
		return ErrEmptySequence
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if got, want := obs.Dim(), m.Dimensionality(); got != want {
		return &DimensionError{Got: got, Want: want}
	}
	return nil
}

// logParams returns the model's initial and transition probabilities as
// flat log-space arrays. Zero probabilities map to -Inf.
func logParams(m *hmm.Model) (logInit, logTrans []float64) {
	n := m.NumStates()
	logInit = make([]float64, n)
	for s, p := range m.Initial {
		logInit[s] = math.Log(p)
	}
	logTrans = make([]float64, n*n)
	for p := 0; p < n; p++ {
		row := m.Transition.RawRowView(p)
		for s, v := range row {
			logTrans[p*n+s] = math.Log(v)
		}
	}
	return logInit, logTrans
}

// emissionScores builds the T×N matrix of per-step, per-state emission
// log-likelihoods, flat-indexed t*n+s. Chunks of time steps may be scored
// on parallel workers; every worker writes a disjoint range, so the filled
// matrix is identical to the serial one.
func (d *Decoder) emissionScores(m *hmm.Model, obs *Observations) []float64 {
	n := m.NumStates()
	steps := obs.Len()
	emit := make([]float64, steps*n)

	workers := min(d.workers, runtime.GOMAXPROCS(0), steps)
	if workers <= 1 {
		emissionRange(m, obs, emit, 0, steps)
		return emit
	}

	var wg sync.WaitGroup
	chunk := (steps + workers - 1) / workers
	for i := range workers {
		ts := i * chunk
		te := min(ts+chunk, steps)
		if ts >= te {
			break
		}
		wg.Add(1)
		go emissionWorker(&wg, m, obs, emit, ts, te)
	}
	wg.Wait()
	return emit
}

func emissionWorker(wg *sync.WaitGroup, m *hmm.Model, obs *Observations, emit []float64, ts, te int) {
	defer wg.Done()
	emissionRange(m, obs, emit, ts, te)
}

func emissionRange(m *hmm.Model, obs *Observations, emit []float64, ts, te int) {
	n := m.NumStates()
	x := make([]float64, obs.Dim())
	for t := ts; t < te; t++ {
		obs.Col(x, t)
		for s := 0; s < n; s++ {
			emit[t*n+s] = m.Emissions[s].LogLikelihood(x)
		}
	}
}
