package csvio

// Record is one row of a table: an ordered sequence of raw byte fields.
// Width may vary row to row (ragged tables are permitted by the reader).
//
// Records handed out by Reader own their field slices; nothing in this
// module mutates a record after it is read. Transformations produce new
// records and may share field slices with their input.
type Record [][]byte

// FromStrings builds a Record from string cells. Mostly useful in tests
// and when adapting encoding/csv output.
func FromStrings(fields []string) Record {
	rec := make(Record, len(fields))
	for i, f := range fields {
		rec[i] = []byte(f)
	}
	return rec
}

// Strings converts the record back to string cells for encoding/csv.
func (r Record) Strings() []string {
	fields := make([]string, len(r))
	for i, f := range r {
		fields[i] = string(f)
	}
	return fields
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for i, f := range r {
		out[i] = append([]byte(nil), f...)
	}
	return out
}
