package fill

import "github.com/kmarsh/csvfill/internal/csvio"

// Policy selects how a group's value memory is written.
type Policy int

const (
	// PolicyForward overwrites memory on every non-empty sighting, so the
	// most recent value wins.
	PolicyForward Policy = iota

	// PolicyFirst writes memory only once per column per group; the first
	// non-empty sighting is fixed for the rest of the run.
	PolicyFirst
)

func (p Policy) String() string {
	switch p {
	case PolicyForward:
		return "forward"
	case PolicyFirst:
		return "first"
	default:
		return "unknown"
	}
}

// valueMemory maps a target column index to the value remembered for it
// within one group. Entries never mix data across groups: each group owns
// its own map.
type valueMemory map[int][]byte

// memorize records the non-empty target fields of rec per policy. It runs
// before fill for the same record. A record too short for a target index
// is malformed input and fails the row.
func (m valueMemory) memorize(rec csvio.Record, targets []int, p Policy, row int) error {
	for _, idx := range targets {
		if idx >= len(rec) {
			return &ShortRowError{Row: row, Column: idx, Width: len(rec)}
		}
		field := rec[idx]
		if len(field) == 0 {
			continue
		}
		if p == PolicyFirst {
			if _, ok := m[idx]; ok {
				continue
			}
		}
		m[idx] = field
	}
	return nil
}

// fill produces a filled copy of rec: each empty target field takes the
// remembered value for its column when one exists, otherwise it stays
// empty. Non-empty fields are never altered.
func (m valueMemory) fill(rec csvio.Record, targets []int) csvio.Record {
	return mapSelected(rec, targets, func(idx int, field []byte) []byte {
		if len(field) > 0 {
			return field
		}
		if v, ok := m[idx]; ok {
			return v
		}
		return field
	})
}

// unresolved reports whether any target field of rec is still empty.
// Backfill buffers exactly the rows for which this holds after filling.
func unresolved(rec csvio.Record, targets []int) bool {
	for _, idx := range targets {
		if idx < len(rec) && len(rec[idx]) == 0 {
			return true
		}
	}
	return false
}
