package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmarsh/csvfill/internal/testutil"
)

func TestRoot_RejectsMultiCharDelimiter(t *testing.T) {
	_, err := execute(t, "a,b\n", "fill", "-d", ";;", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "one character")
}

func TestRoot_RejectsQuoteDelimiter(t *testing.T) {
	_, err := execute(t, "a,b\n", "fill", "-d", `"`, "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRoot_RejectsUnknownEncoding(t *testing.T) {
	_, err := execute(t, "a,b\n", "fill", "--encoding", "ebcdic", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestRoot_VerboseLogsGoToStderrOnly(t *testing.T) {
	input := testutil.CSV(
		[]string{"h1", "h2"},
		[]string{"a", "b"},
		[]string{"", "c"},
	)

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"fill", "-v", "1"})

	require.NoError(t, cmd.Execute())

	// Data output stays clean CSV; diagnostics land on stderr.
	assert.Equal(t, testutil.CSV(
		[]string{"h1", "h2"},
		[]string{"a", "b"},
		[]string{"a", "c"},
	), out.String())
	assert.Contains(t, errOut.String(), "fill complete")
	assert.Contains(t, errOut.String(), "run=")
}

func TestRoot_UnknownCommand(t *testing.T) {
	_, err := execute(t, "", "transmogrify")
	require.Error(t, err)
}
