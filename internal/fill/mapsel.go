package fill

import "github.com/kmarsh/csvfill/internal/csvio"

// mapSelected returns a new record in which the field at each target index
// is replaced by fn(index, field) and every other field passes through
// unchanged. Field order and count are preserved.
//
// targets must be sorted ascending and duplicate-free; the walk is a
// two-pointer merge of the field index against the next target index.
// Target indices beyond the record's width are ignored here: bounds are
// the memorize step's responsibility, which runs first and fails the row.
func mapSelected(rec csvio.Record, targets []int, fn func(idx int, field []byte) []byte) csvio.Record {
	out := make(csvio.Record, len(rec))
	t := 0
	for i, field := range rec {
		if t < len(targets) && targets[t] == i {
			out[i] = fn(i, field)
			t++
		} else {
			out[i] = field
		}
	}
	return out
}
