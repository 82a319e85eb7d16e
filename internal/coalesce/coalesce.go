// Package coalesce implements the single-pass coalesce transform: append
// one column holding the first non-empty field among a selection. Unlike
// fill it carries no state across rows.
package coalesce

import (
	"github.com/kmarsh/csvfill/internal/csvio"
	"github.com/kmarsh/csvfill/internal/selection"
)

// Coalescer appends the coalesced column to each record.
type Coalescer struct {
	sel []int
}

// New builds a Coalescer over the selection, in selection order: the
// earliest selected column with a non-empty field wins.
func New(sel selection.Selection) *Coalescer {
	return &Coalescer{sel: sel}
}

// Header returns the header row with the coalesced column's name
// appended: name when given, otherwise the first selected header.
func (c *Coalescer) Header(header csvio.Record, name string) csvio.Record {
	out := append(csvio.Record(nil), header...)
	if name == "" && len(c.sel) > 0 && c.sel[0] < len(header) {
		return append(out, header[c.sel[0]])
	}
	return append(out, []byte(name))
}

// Apply returns rec with the coalesced value appended. Selected columns
// beyond a ragged row's width count as empty. When every selected field
// is empty the appended field is empty too.
func (c *Coalescer) Apply(rec csvio.Record) csvio.Record {
	out := append(csvio.Record(nil), rec...)
	for _, idx := range c.sel {
		if idx < len(rec) && len(rec[idx]) > 0 {
			return append(out, rec[idx])
		}
	}
	return append(out, []byte{})
}
