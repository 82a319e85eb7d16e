package csvio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *Reader) []Record {
	t.Helper()
	var recs []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs
		}
		require.NoError(t, err)
		recs = append(recs, rec)
	}
}

func TestReader_Basic(t *testing.T) {
	r, err := NewReader(strings.NewReader("a,b,c\n1,2,3\n"), ReaderOptions{})
	require.NoError(t, err)

	recs := readAll(t, r)
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"a", "b", "c"}, recs[0].Strings())
	assert.Equal(t, []string{"1", "2", "3"}, recs[1].Strings())
	assert.Equal(t, 2, r.Row())
}

func TestReader_RaggedRows(t *testing.T) {
	r, err := NewReader(strings.NewReader("a,b,c\n1\nx,y,z,w\n"), ReaderOptions{})
	require.NoError(t, err)

	recs := readAll(t, r)
	require.Len(t, recs, 3)
	assert.Len(t, recs[1], 1)
	assert.Len(t, recs[2], 4)
}

func TestReader_CustomDelimiter(t *testing.T) {
	r, err := NewReader(strings.NewReader("a;b\n1;2\n"), ReaderOptions{Delimiter: ';'})
	require.NoError(t, err)

	recs := readAll(t, r)
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"a", "b"}, recs[0].Strings())
}

func TestReader_StripsBOM(t *testing.T) {
	r, err := NewReader(strings.NewReader("\uFEFFh1,h2\na,b\n"), ReaderOptions{})
	require.NoError(t, err)

	recs := readAll(t, r)
	assert.Equal(t, "h1", string(recs[0][0]))
}

func TestReader_OwnsFieldBytes(t *testing.T) {
	// ReuseRecord is set on the inner csv.Reader; returned records must
	// still be safe to retain across reads.
	r, err := NewReader(strings.NewReader("a,b\nc,d\n"), ReaderOptions{})
	require.NoError(t, err)

	first, err := r.Read()
	require.NoError(t, err)
	_, err = r.Read()
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, first.Strings())
}

func TestReader_ErrorCarriesRowNumber(t *testing.T) {
	// A bare quote mid-field is a parse error on row 2.
	r, err := NewReader(strings.NewReader("a,b\n\"x,y\n"), ReaderOptions{})
	require.NoError(t, err)

	_, err = r.Read()
	require.NoError(t, err)
	_, err = r.Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestReader_Latin1Encoding(t *testing.T) {
	// 0xE9 is e-acute in latin-1 and invalid UTF-8 on its own.
	input := []byte{'n', 'a', 'm', 'e', '\n', 'c', 'a', 'f', 0xE9, '\n'}

	r, err := NewReader(bytes.NewReader(input), ReaderOptions{Encoding: "latin-1"})
	require.NoError(t, err)

	recs := readAll(t, r)
	require.Len(t, recs, 2)
	assert.Equal(t, "caf\u00e9", string(recs[1][0]))
}

func TestReader_UnknownEncoding(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), ReaderOptions{Encoding: "ebcdic"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestValidateEncoding(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8", "latin-1", "ISO-8859-1", "windows-1252", "utf-16"} {
		assert.NoError(t, ValidateEncoding(name), name)
	}
	assert.Error(t, ValidateEncoding("koi8-r"))
}

func TestValidateDelimiter(t *testing.T) {
	assert.NoError(t, ValidateDelimiter(','))
	assert.NoError(t, ValidateDelimiter('\t'))
	assert.NoError(t, ValidateDelimiter(';'))

	for _, d := range []rune{'"', '\n', '\r'} {
		assert.Error(t, ValidateDelimiter(d), string(d))
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 0)

	require.NoError(t, w.Write(FromStrings([]string{"a", "", "c"})))
	require.NoError(t, w.Write(FromStrings([]string{"x", "y", "z"})))
	require.NoError(t, w.Flush())

	assert.Equal(t, "a,,c\nx,y,z\n", buf.String())
}

func TestWriter_CustomDelimiter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, '\t')

	require.NoError(t, w.Write(FromStrings([]string{"a", "b"})))
	require.NoError(t, w.Flush())

	assert.Equal(t, "a\tb\n", buf.String())
}

func TestRecord_Clone(t *testing.T) {
	rec := FromStrings([]string{"a", "b"})
	clone := rec.Clone()

	clone[0][0] = 'X'
	assert.Equal(t, "a", string(rec[0]))
}
