package fill

import (
	"errors"
	"fmt"
)

// ShortRowError reports a record too narrow for a resolved column index,
// for either the target or the group-by selection. It is fatal: the run
// aborts at the offending row with no partial-row recovery.
type ShortRowError struct {
	Row    int // 1-based data row number
	Column int // zero-based column index that was out of range
	Width  int // actual field count of the record
}

func (e *ShortRowError) Error() string {
	return fmt.Sprintf("row %d: record has %d field(s), selected column %d does not exist", e.Row, e.Width, e.Column+1)
}

// IsShortRow reports whether err is (or wraps) a ShortRowError.
func IsShortRow(err error) bool {
	var se *ShortRowError
	return errors.As(err, &se)
}
