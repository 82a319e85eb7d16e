package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"
)

// utf8BOM is stripped from the first field of the first row. Spreadsheet
// exports prepend it routinely and it would otherwise poison header-name
// matching.
var utf8BOM = []byte("\uFEFF")

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	// Delimiter is the field delimiter. Zero means comma.
	Delimiter rune

	// Encoding names the input character encoding. Empty means UTF-8
	// (passthrough). See ValidateEncoding for accepted names.
	Encoding string
}

// Reader yields one Record per input row.
//
// Rows may be ragged: no fixed field count is enforced. Every returned
// Record owns its field bytes, so callers may retain records across Read
// calls (the fill engine buffers them indefinitely under backfill).
type Reader struct {
	cr  *csv.Reader
	row int
}

// NewReader wraps r in a CSV record reader. It fails if the delimiter or
// encoding name is invalid.
func NewReader(r io.Reader, opts ReaderOptions) (*Reader, error) {
	delim := opts.Delimiter
	if delim == 0 {
		delim = ','
	}
	if err := ValidateDelimiter(delim); err != nil {
		return nil, err
	}

	decoded, err := decodeReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(decoded)
	cr.Comma = delim
	cr.FieldsPerRecord = -1 // ragged rows permitted
	cr.ReuseRecord = true   // fields are copied into the Record below
	return &Reader{cr: cr}, nil
}

// Read returns the next record, io.EOF at end of stream, or an error
// carrying the 1-based row number.
func (r *Reader) Read() (Record, error) {
	fields, err := r.cr.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	r.row++
	if err != nil {
		return nil, fmt.Errorf("row %d: %w", r.row, err)
	}

	rec := make(Record, len(fields))
	for i, f := range fields {
		rec[i] = []byte(f)
	}
	if r.row == 1 && len(rec) > 0 {
		rec[0] = bytes.TrimPrefix(rec[0], utf8BOM)
	}
	return rec, nil
}

// Row returns the 1-based number of the last row read.
func (r *Reader) Row() int {
	return r.row
}

// ValidateDelimiter reports whether d is usable as a CSV field delimiter.
// Mirrors the characters encoding/csv rejects so the failure surfaces as a
// usage error instead of a mid-stream read error.
func ValidateDelimiter(d rune) error {
	if d == '"' || d == '\r' || d == '\n' || d == utf8.RuneError || !utf8.ValidRune(d) {
		return fmt.Errorf("invalid field delimiter %q", d)
	}
	return nil
}
