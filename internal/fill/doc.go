// Package fill implements the streaming fill engine: it replaces empty
// fields in selected columns with previously observed values, optionally
// scoped by a group key and optionally buffering leading empty runs until
// a value appears (backfill).
//
// PIPELINE (per input record, strictly in this order):
//
//  1. Extract the group key (the empty key when no grouping is configured,
//     so "no grouping" is just one implicit group).
//  2. Memorize non-empty target fields into the group's value memory,
//     per policy (forward: latest sighting wins; first: write-once).
//  3. Produce a filled copy: empty target fields take the group's
//     remembered value when one exists. Non-target fields and non-empty
//     target fields pass through untouched. Memorization runs before fill,
//     and fill only touches empty fields, so a field never fills itself.
//  4. Emit, or under backfill buffer the row if any target field is still
//     empty. A row that comes out fully resolved first drains its group's
//     buffer (refilling each buffered row from the now-current memory).
//
// Flush drains whatever is still buffered at end of stream; rows whose
// columns never saw a value emit with their fields still empty. Every row
// is emitted exactly once and row count is preserved.
//
// ORDERING: within a group, output order always equals input order. Across
// groups, backfill can reorder: a later-arriving group that resolves early
// emits before an earlier-arriving group that is still waiting. That is a
// documented property of per-group buffering, not a defect.
//
// The engine is single-threaded by construction: one record is read,
// fully processed and emitted or buffered before the next is touched, so
// the group table needs no locking.
package fill
