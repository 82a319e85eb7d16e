package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	got := CSV([]string{"a", "b"}, []string{"", "c"})
	assert.Equal(t, "a,b\n,c\n", got)
}

func TestParseCSVRoundTrip(t *testing.T) {
	rows := [][]string{{"a", "b"}, {"", "c"}}
	assert.Equal(t, rows, ParseCSV(t, CSV(rows...)))
}

func TestCollectSink(t *testing.T) {
	s := &CollectSink{}
	require.NoError(t, s.Write(Rec("a", "b")))
	require.NoError(t, s.Write(Rec("c", "d")))

	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, s.Rows())
	assert.Equal(t, []string{"b", "d"}, s.Column(1))
}

func TestFailAfterSink(t *testing.T) {
	boom := errors.New("boom")
	s := &FailAfterSink{N: 2, Err: boom}

	require.NoError(t, s.Write(Rec("1")))
	require.NoError(t, s.Write(Rec("2")))
	assert.ErrorIs(t, s.Write(Rec("3")), boom)
	assert.ErrorIs(t, s.Write(Rec("4")), boom)
}
