package decode

import "time"

// Result is one decoded observation sequence. States holds the MAP
// hidden-state path in chronological order, one index per time step, each
// in [0, NumStates). LogProb is the log-probability of that path; it may be
// negative infinity for a model whose structural zeros make every complete
// path impossible, which is still a valid decode. ID is assigned by the
// Runner; results obtained directly from a Decoder carry an empty ID.
type Result struct {
	ID      string  `json:"id,omitempty"`
	States  []int   `json:"states"`
	LogProb float64 `json:"log_prob"`
	Stats   Stats   `json:"stats"`
}

// Stats describes one decode invocation.
type Stats struct {
	Steps          int           `json:"steps"`
	NumStates      int           `json:"num_states"`
	Duration       time.Duration `json:"duration"`
	StepsPerSecond float64       `json:"steps_per_second"`
}

func newStats(steps, numStates int, elapsed time.Duration) Stats {
	s := Stats{
		Steps:     steps,
		NumStates: numStates,
		Duration:  elapsed,
	}
	if elapsed > 0 {
		s.StepsPerSecond = float64(steps) / elapsed.Seconds()
	}
	return s
}
