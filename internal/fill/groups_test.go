package fill

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

func TestGroupTable_LookupCreatesOnce(t *testing.T) {
	tbl := newGroupTable()

	g1 := tbl.lookup([]byte("a"))
	g2 := tbl.lookup([]byte("a"))
	g3 := tbl.lookup([]byte("b"))

	assert.Same(t, g1, g2)
	assert.NotSame(t, g1, g3)
	assert.Equal(t, 2, tbl.len())
}

func TestGroupTable_FirstSeenOrder(t *testing.T) {
	tbl := newGroupTable()

	keys := []string{"z", "a", "m", "a", "z", "q"}
	for _, k := range keys {
		tbl.lookup([]byte(k))
	}

	var order []string
	for _, g := range tbl.order {
		order = append(order, string(g.key))
	}
	assert.Equal(t, []string{"z", "a", "m", "q"}, order)
}

func TestGroupTable_ExactKeyMatchWithinBucket(t *testing.T) {
	tbl := newGroupTable()
	gA := tbl.lookup([]byte("a"))

	// Plant a foreign group in a's bucket to simulate a hash collision;
	// lookup must still return gA by exact key comparison.
	h := xxh3.Hash([]byte("a"))
	planted := &group{key: []byte("not-a"), memory: make(valueMemory)}
	tbl.buckets[h] = append(tbl.buckets[h], planted)

	assert.Same(t, gA, tbl.lookup([]byte("a")))
}

func TestGroupTable_ManyDistinctKeys(t *testing.T) {
	tbl := newGroupTable()

	const n = 1000
	groups := make(map[string]*group, n)
	for i := 0; i < n; i++ {
		k := fmt.Sprintf("key-%d", i)
		groups[k] = tbl.lookup([]byte(k))
	}
	require.Equal(t, n, tbl.len())

	for k, want := range groups {
		assert.Same(t, want, tbl.lookup([]byte(k)))
	}
}

func TestGroupTable_OwnsKeyBytes(t *testing.T) {
	tbl := newGroupTable()

	key := []byte("mutable")
	g := tbl.lookup(key)
	key[0] = 'X'

	assert.Equal(t, "mutable", string(g.key))
	assert.Same(t, g, tbl.lookup([]byte("mutable")))
}
