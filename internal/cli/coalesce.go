package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/kmarsh/csvfill/internal/coalesce"
	"github.com/kmarsh/csvfill/internal/csvio"
)

// CoalesceOptions holds flags for the coalesce command.
type CoalesceOptions struct {
	*RootOptions
	Name string
}

// NewCoalesceCommand creates the coalesce command.
func NewCoalesceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CoalesceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "coalesce [--name <name>] <selection> [input]",
		Short: "Append a column holding the first non-empty selected field",
		Long: `Append one column to each row holding the first non-empty field among
the selected columns, in selection order. When every selected field is
empty the appended field is empty too.

With headers, the new column is named by --name or inherits the first
selected header.

Example:
  csvfill coalesce --name contact phone,mobile,email people.csv`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 2 {
				input = args[1]
			}
			return runCoalesce(opts, cmd, args[0], input)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "name for the coalesced column (default: first selected header)")

	return cmd
}

func runCoalesce(opts *CoalesceOptions, cmd *cobra.Command, selArg, input string) error {
	in, closeIn, err := openInput(cmd, input)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open input", err)
	}
	defer closeIn()

	out, closeOut, err := openOutput(cmd, opts.Output)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open output", err)
	}
	defer closeOut()

	rdr, err := csvio.NewReader(in, csvio.ReaderOptions{
		Delimiter: opts.delimiter,
		Encoding:  opts.Encoding,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot read input", err)
	}
	w := csvio.NewWriter(out, opts.delimiter)

	header, err := rdr.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return WrapExitError(ExitFailure, "read failed", err)
	}

	sel, err := resolveSelection(selArg, header, opts.NoHeaders)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid selection", err)
	}
	c := coalesce.New(sel)

	var first csvio.Record
	if opts.NoHeaders {
		first = c.Apply(header)
	} else {
		first = c.Header(header, opts.Name)
	}
	if err := w.Write(first); err != nil {
		return WrapExitError(ExitFailure, "write failed", err)
	}

	for {
		rec, err := rdr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return WrapExitError(ExitFailure, "read failed", err)
		}
		if err := w.Write(c.Apply(rec)); err != nil {
			return WrapExitError(ExitFailure, "write failed", err)
		}
	}

	if err := w.Flush(); err != nil {
		return WrapExitError(ExitFailure, "write failed", err)
	}
	return nil
}
