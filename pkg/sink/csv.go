// Package sink provides ready-made decode.Sink implementations: CSV rows,
// a single JSON document, and a null sink that drops everything.
package sink

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/seqlab/lattice/pkg/decode"
)

// CSV streams decoded sequences as one "step,state" row per time step. The
// header is written before the first row. If the underlying writer is an
// io.Closer, Close closes it after the final flush.
type CSV struct {
	out         *csv.Writer
	closer      io.Closer
	wroteHeader bool
}

var _ decode.Sink = (*CSV)(nil)

// NewCSV returns a CSV sink writing to w.
func NewCSV(w io.Writer) *CSV {
	s := &CSV{out: csv.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// Write appends one row per time step of res and flushes.
func (s *CSV) Write(res *decode.Result) error {
	if !s.wroteHeader {
		if err := s.out.Write([]string{"step", "state"}); err != nil {
			return err
		}
		s.wroteHeader = true
	}
	for t, state := range res.States {
		if err := s.out.Write([]string{strconv.Itoa(t), strconv.Itoa(state)}); err != nil {
			return err
		}
	}
	s.out.Flush()
	return s.out.Error()
}

// Close flushes buffered rows and closes the underlying writer when it is
// closable. Flush and close failures are both reported.
func (s *CSV) Close() error {
	var errs *multierror.Error
	s.out.Flush()
	if err := s.out.Error(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}
