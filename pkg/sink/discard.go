package sink

import "github.com/seqlab/lattice/pkg/decode"

// Discard is the null sink: it accepts every result and drops it. It exists
// so call sites that want no persistence can still wire an unconditional
// sink instead of branching on nil.
type Discard struct{}

var _ decode.Sink = Discard{}

func (Discard) Write(*decode.Result) error { return nil }

func (Discard) Close() error { return nil }
