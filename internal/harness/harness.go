package harness

import (
	"bytes"
	"io"
	"strings"

	"github.com/kmarsh/csvfill/internal/cli"
)

// Run executes a scenario through the real command tree, feeding Input on
// stdin and capturing stdout. It returns the raw output and the command
// error, leaving expectation checks to the caller.
func Run(s *Scenario) (string, error) {
	cmd := cli.NewRootCommand()

	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(s.Input))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{s.Command}, s.Args...))

	err := cmd.Execute()
	return out.String(), err
}
