// Package testutil provides small CSV table helpers shared by tests.
package testutil

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/kmarsh/csvfill/internal/csvio"
)

// Rec builds a Record from string cells.
func Rec(fields ...string) csvio.Record {
	return csvio.FromStrings(fields)
}

// CSV renders rows as comma-delimited text, one line per row. Cells are
// written verbatim, so test data must not need quoting.
func CSV(rows ...[]string) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseCSV parses CSV text into rows of string cells, failing the test on
// malformed input.
func ParseCSV(t *testing.T, text string) [][]string {
	t.Helper()
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	return rows
}

// CollectSink accumulates records emitted by the fill engine.
type CollectSink struct {
	Records []csvio.Record
}

// Write implements fill.Sink.
func (s *CollectSink) Write(rec csvio.Record) error {
	s.Records = append(s.Records, rec)
	return nil
}

// Rows returns the collected records as string cells for assertions.
func (s *CollectSink) Rows() [][]string {
	rows := make([][]string, len(s.Records))
	for i, rec := range s.Records {
		rows[i] = rec.Strings()
	}
	return rows
}

// Column returns one column of the collected records.
func (s *CollectSink) Column(idx int) []string {
	col := make([]string, len(s.Records))
	for i, rec := range s.Records {
		if idx < len(rec) {
			col[i] = string(rec[idx])
		}
	}
	return col
}

// FailAfterSink accepts n writes, then fails every further write with
// err. Used to verify that sink failures abort the run.
type FailAfterSink struct {
	N   int
	Err error

	written int
}

// Write implements fill.Sink.
func (s *FailAfterSink) Write(csvio.Record) error {
	if s.written >= s.N {
		return s.Err
	}
	s.written++
	return nil
}
