package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/saitounei/phylonj/njtree"
)

// EdgeStreamWriter is a njtree.EdgeSink that writes each edge as
// "u,v,length\n" with %.2f length, per the Default render mode's wire
// format. It is the one EdgeSink that writes to an external sink rather
// than accumulating in memory.
type EdgeStreamWriter struct {
	w *bufio.Writer
}

// NewEdgeStreamWriter wraps w for edge-stream emission.
func NewEdgeStreamWriter(w io.Writer) *EdgeStreamWriter {
	return &EdgeStreamWriter{w: bufio.NewWriter(w)}
}

// Emit writes one "u,v,length\n" line and flushes it immediately, so
// partial output survives a later failure elsewhere in the pipeline.
func (s *EdgeStreamWriter) Emit(e njtree.Edge) error {
	if _, err := fmt.Fprintf(s.w, "%d,%d,%.2f\n", e.U, e.V, e.Length); err != nil {
		return err
	}
	return s.w.Flush()
}
