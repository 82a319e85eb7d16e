package fill

import (
	"encoding/binary"

	"golang.org/x/text/unicode/norm"

	"github.com/kmarsh/csvfill/internal/csvio"
	"github.com/kmarsh/csvfill/internal/selection"
)

// KeyExtractor derives the group key for a record: the group-by columns,
// in selection order, encoded as a length-prefixed byte tuple. Two records
// share a group iff their projected fields are element-wise byte equal.
//
// Without a group-by selection every record maps to the fixed empty key,
// so ungrouped runs behave as a single implicit group.
type KeyExtractor struct {
	sel       []int
	normalize bool
}

// NewKeyExtractor builds an extractor over the group-by selection.
// When normalize is set, key fields are NFC-normalized before encoding so
// visually identical values composed differently still share a group.
func NewKeyExtractor(groupBy selection.Selection, normalize bool) KeyExtractor {
	return KeyExtractor{sel: groupBy, normalize: normalize}
}

// Key encodes rec's group key. row is the 1-based data row number, used
// only for error context when the record is too short to project.
func (k KeyExtractor) Key(rec csvio.Record, row int) ([]byte, error) {
	if len(k.sel) == 0 {
		return nil, nil
	}
	var key []byte
	for _, idx := range k.sel {
		if idx >= len(rec) {
			return nil, &ShortRowError{Row: row, Column: idx, Width: len(rec)}
		}
		field := rec[idx]
		if k.normalize {
			field = norm.NFC.Bytes(field)
		}
		// Length-prefixed so ("ab","c") and ("a","bc") stay distinct.
		key = binary.AppendUvarint(key, uint64(len(field)))
		key = append(key, field...)
	}
	return key, nil
}
