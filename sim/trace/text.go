package trace

import (
	"bufio"
	"io"
)

// TextRecorder writes output records as trace lines to w.
// Decision records are ignored. The first write error is kept and
// reported by Flush; later records are dropped.
type TextRecorder struct {
	w   *bufio.Writer
	err error
}

// NewTextRecorder creates a buffered text recorder over w.
func NewTextRecorder(w io.Writer) *TextRecorder {
	return &TextRecorder{w: bufio.NewWriter(w)}
}

// Record writes the record's trace line, if it has one.
func (tr *TextRecorder) Record(rec Record) {
	if tr.err != nil {
		return
	}
	line, ok := FormatLine(rec)
	if !ok {
		return
	}
	if _, err := tr.w.WriteString(line); err != nil {
		tr.err = err
		return
	}
	tr.err = tr.w.WriteByte('\n')
}

// Flush writes any buffered lines and returns the first error seen.
func (tr *TextRecorder) Flush() error {
	if tr.err != nil {
		return tr.err
	}
	return tr.w.Flush()
}
