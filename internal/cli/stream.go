package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kmarsh/csvfill/internal/csvio"
	"github.com/kmarsh/csvfill/internal/selection"
)

// openInput returns the byte source for a command: the named file, or the
// command's stdin when path is empty or "-". The returned closer is
// always safe to call.
func openInput(cmd *cobra.Command, path string) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// openOutput returns the byte sink for a command: the named file, or the
// command's stdout when path is empty or "-".
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// resolveSelection parses a column specification and resolves it against
// the header (or first) row. All selection failures surface before any
// record is processed.
func resolveSelection(spec string, header csvio.Record, noHeaders bool) (selection.Selection, error) {
	parsed, err := selection.ParseSpec(spec)
	if err != nil {
		return nil, err
	}
	return parsed.Resolve(header, noHeaders)
}
