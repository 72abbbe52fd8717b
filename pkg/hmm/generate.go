package hmm

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generate samples a hidden-state path of the given length and one
// observation per step, returned in the orientation the decoder consumes
// (columns are time steps, rows are feature dimensions). src drives all
// randomness; pass a seeded source for reproducible sequences, or nil for
// the shared global source. The model is not modified.
func (m *Model) Generate(length int, src rand.Source) (*mat.Dense, []int, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	if length <= 0 {
		return nil, nil, fmt.Errorf("generate: length must be positive, got %d", length)
	}

	n := m.NumStates()
	dim := m.Dimensionality()
	obs := mat.NewDense(dim, length, nil)
	states := make([]int, length)

	initial := distuv.NewCategorical(m.Initial, src)
	trans := make([]distuv.Categorical, n)
	for i := range trans {
		trans[i] = distuv.NewCategorical(m.Transition.RawRowView(i), src)
	}

	x := make([]float64, dim)
	s := int(initial.Rand())
	for t := 0; t < length; t++ {
		states[t] = s
		m.Emissions[s].sample(x, src)
		obs.SetCol(t, x)
		if t+1 < length {
			s = int(trans[s].Rand())
		}
	}
	return obs, states, nil
}
