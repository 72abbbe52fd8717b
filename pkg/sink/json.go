package sink

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/seqlab/lattice/pkg/decode"
)

// JSON writes each decoded result as one JSON document. If the underlying
// writer is an io.Closer, Close closes it.
type JSON struct {
	w      io.Writer
	closer io.Closer
}

var _ decode.Sink = (*JSON)(nil)

// NewJSON returns a JSON sink writing to w.
func NewJSON(w io.Writer) *JSON {
	s := &JSON{w: w}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// Write encodes res as a single newline-terminated JSON document.
func (s *JSON) Write(res *decode.Result) error {
	return json.NewEncoder(s.w).Encode(res)
}

// Close closes the underlying writer when it is closable.
func (s *JSON) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
