package fill

import (
	"bytes"

	"github.com/zeebo/xxh3"

	"github.com/kmarsh/csvfill/internal/csvio"
)

// group carries all state scoped to one group key: the value memory and,
// under backfill, the queue of rows still waiting for a value. Pending
// rows keep their arrival order; a row enters the queue at most once.
type group struct {
	key     []byte
	memory  valueMemory
	pending []csvio.Record
}

// groupTable indexes groups by the xxh3 hash of their encoded key.
// Buckets hold the full key bytes and are compared exactly on lookup, so
// a hash collision shares a bucket but can never merge two groups.
//
// The table also keeps first-seen insertion order, which fixes the
// end-of-stream flush order of still-pending groups.
type groupTable struct {
	buckets map[uint64][]*group
	order   []*group
}

func newGroupTable() *groupTable {
	return &groupTable{buckets: make(map[uint64][]*group)}
}

// lookup returns the group for key, creating it on first sight.
func (t *groupTable) lookup(key []byte) *group {
	h := xxh3.Hash(key)
	for _, g := range t.buckets[h] {
		if bytes.Equal(g.key, key) {
			return g
		}
	}
	g := &group{
		key:    append([]byte(nil), key...),
		memory: make(valueMemory),
	}
	t.buckets[h] = append(t.buckets[h], g)
	t.order = append(t.order, g)
	return g
}

// len returns the number of distinct groups seen so far.
func (t *groupTable) len() int {
	return len(t.order)
}
