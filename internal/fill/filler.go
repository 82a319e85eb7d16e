package fill

import (
	"github.com/kmarsh/csvfill/internal/csvio"
	"github.com/kmarsh/csvfill/internal/selection"
)

// Sink receives emitted records in final output order. csvio.Writer
// satisfies it.
type Sink interface {
	Write(csvio.Record) error
}

// Options configures a Filler.
type Options struct {
	// Targets are the columns eligible to be filled.
	Targets selection.Selection

	// GroupBy are the columns whose values scope fill memory. Empty means
	// one implicit group.
	GroupBy selection.Selection

	// Policy picks forward (latest value) or first (write-once) memory.
	Policy Policy

	// Backfill buffers rows whose target fields are still empty after
	// filling, until a later row of the same group supplies the value.
	Backfill bool

	// Normalize applies NFC normalization to group key bytes before
	// comparison.
	Normalize bool
}

// Filler is the streaming fill engine. Feed it records one at a time with
// Process and call Flush exactly once after the last record. The Filler
// exclusively owns its group table for the lifetime of a run.
type Filler struct {
	targets  []int
	keys     KeyExtractor
	policy   Policy
	backfill bool
	groups   *groupTable
	sink     Sink
	row      int
}

// New builds a Filler emitting to sink. The target selection is sorted
// and deduplicated; the group-by selection keeps its given order, which
// defines key tuple order.
func New(opts Options, sink Sink) *Filler {
	return &Filler{
		targets:  opts.Targets.Sorted(),
		keys:     NewKeyExtractor(opts.GroupBy, opts.Normalize),
		policy:   opts.Policy,
		backfill: opts.Backfill,
		groups:   newGroupTable(),
		sink:     sink,
	}
}

// Process consumes the next input record and emits zero or more records
// downstream. Errors (malformed rows, sink failures) are terminal: the
// caller must abort the run.
func (f *Filler) Process(rec csvio.Record) error {
	f.row++

	key, err := f.keys.Key(rec, f.row)
	if err != nil {
		return err
	}
	g := f.groups.lookup(key)

	// Memorize before fill: the current record's non-empty fields update
	// memory first, then filling reads it. Fill never touches non-empty
	// fields, so a value cannot fill its own field.
	if err := g.memory.memorize(rec, f.targets, f.policy, f.row); err != nil {
		return err
	}
	filled := g.memory.fill(rec, f.targets)

	if !f.backfill {
		return f.sink.Write(filled)
	}

	if unresolved(filled, f.targets) {
		g.pending = append(g.pending, filled)
		return nil
	}

	// The current row resolved, which means memory now holds a value for
	// every target column of this group: older pending rows can be
	// released ahead of it.
	if err := f.drain(g); err != nil {
		return err
	}
	return f.sink.Write(filled)
}

// drain emits g's pending rows in arrival order, refilled from the
// group's current memory (which may have advanced since buffering).
func (f *Filler) drain(g *group) error {
	if len(g.pending) == 0 {
		return nil
	}
	for i, rec := range g.pending {
		if err := f.sink.Write(g.memory.fill(rec, f.targets)); err != nil {
			return err
		}
		g.pending[i] = nil
	}
	g.pending = g.pending[:0]
	return nil
}

// Flush releases every group's remaining pending rows. Groups flush in
// first-seen order and rows keep their within-group arrival order; rows
// whose columns never saw a value emit with fields still empty. Call once
// at end of stream.
func (f *Filler) Flush() error {
	for _, g := range f.groups.order {
		if err := f.drain(g); err != nil {
			return err
		}
	}
	return nil
}

// Rows returns the number of records processed so far.
func (f *Filler) Rows() int {
	return f.row
}

// Groups returns the number of distinct group keys seen so far.
func (f *Filler) Groups() int {
	return f.groups.len()
}
