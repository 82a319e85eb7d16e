package csvio

import (
	"encoding/csv"
	"io"
)

// Writer emits Records as CSV rows. Output is buffered; callers must
// Flush once after the last record and check the returned error, since
// encoding/csv defers most write failures to the flush.
type Writer struct {
	cw *csv.Writer
}

// NewWriter returns a Writer using the given field delimiter (zero means
// comma).
func NewWriter(w io.Writer, delimiter rune) *Writer {
	cw := csv.NewWriter(w)
	if delimiter != 0 {
		cw.Comma = delimiter
	}
	return &Writer{cw: cw}
}

// Write appends one record to the output.
func (w *Writer) Write(rec Record) error {
	return w.cw.Write(rec.Strings())
}

// Flush writes buffered output to the underlying writer and reports any
// write error encountered so far.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}
