package decode

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/seqlab/lattice/internal/version"
	"github.com/seqlab/lattice/pkg/hmm"
	"github.com/seqlab/lattice/pkg/logger"
)

// Sink receives decoded results. Implementations own persistence; the
// decode itself never depends on a sink being present or healthy.
type Sink interface {
	Write(res *Result) error
	Close() error
}

// Runner wires a model, a decoder, an optional sink and an optional logger
// into the full decode flow: orient the raw observations, decode, hand the
// result off. Zero-value fields are usable: a nil Decoder decodes serially,
// a nil Log is silent, a nil Sink only costs a warning.
type Runner struct {
	Model   *hmm.Model
	Decoder *Decoder
	Sink    Sink
	Log     logger.Logger
}

// NewRunner builds a Runner whose decoder and logger follow opts.
func NewRunner(m *hmm.Model, sink Sink, opts Options) *Runner {
	opts = opts.withDefaults()
	return &Runner{
		Model:   m,
		Decoder: NewDecoder(opts),
		Sink:    sink,
		Log:     newOptionsLogger(opts),
	}
}

func newOptionsLogger(opts Options) logger.Logger {
	level := logger.ParseLevel(opts.LogLevel)
	switch opts.LogFormat {
	case "none":
		return logger.Nop()
	case "json":
		return logger.JSON(os.Stderr, level)
	default:
		return logger.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
	}
}

// Run normalizes raw observations, decodes them and emits the result.
//
// Decoding is unconditional once Run is invoked: a missing sink is only a
// warning and the Result is still computed and returned. When the decode
// succeeded but the hand-off failed, Run returns the Result together with a
// *SinkError, so persistence failures are never conflated with decoding
// failures. ctx applies to the hand-off boundary only; the decode itself
// runs to completion.
func (r *Runner) Run(ctx context.Context, raw *mat.Dense) (*Result, error) {
	log := r.Log
	if log == nil {
		log = logger.Nop()
	}
	dec := r.Decoder
	if dec == nil {
		dec = NewDecoder(Options{})
	}

	if err := r.Model.Validate(); err != nil {
		return nil, err
	}

	log.Debug("decoding observation sequence",
		"version", version.String(),
		"states", r.Model.NumStates(),
		"dimensionality", r.Model.Dimensionality(),
		"emissions", r.Model.EmissionKind())

	obs, err := Normalize(raw, r.Model.Dimensionality())
	if err != nil {
		return nil, err
	}
	if obs.Transposed() {
		log.Debug("transposed observation matrix to match emission dimensionality",
			"steps", obs.Len())
	}

	res, err := dec.Decode(r.Model, obs)
	if err != nil {
		return nil, err
	}
	res.ID = "decode-" + uuid.NewString()

	log.Info("decode complete",
		"id", res.ID,
		"steps", res.Stats.Steps,
		"log_prob", res.LogProb,
		"duration", res.Stats.Duration)

	if r.Sink == nil {
		log.Warn("no result sink configured; decoded sequence will not be saved")
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, &SinkError{Err: err}
	}
	if err := r.Sink.Write(res); err != nil {
		log.Error("failed to hand result to sink", "id", res.ID, "error", err)
		return res, &SinkError{Err: err}
	}
	return res, nil
}
