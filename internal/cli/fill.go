package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kmarsh/csvfill/internal/csvio"
	"github.com/kmarsh/csvfill/internal/fill"
	"github.com/kmarsh/csvfill/internal/selection"
)

// FillOptions holds flags for the fill command.
type FillOptions struct {
	*RootOptions
	GroupBy   string
	First     bool
	Backfill  bool
	Normalize bool
}

// NewFillCommand creates the fill command.
func NewFillCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FillOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fill <selection> [input]",
		Short: "Fill empty fields in selected columns from earlier rows",
		Long: `Fill empty fields in the selected columns using values seen in other
rows of the same column.

By default the most recently seen non-empty value is used (forward fill)
and rows stream through in order. With --first, the first value ever seen
for a column is used and later values never override it. With --groupby,
fill memory is scoped per group key so values never leak between groups.

--backfill holds back rows whose selected fields are still empty until a
later row of the same group supplies the value, then releases them filled,
in their original order. With --groupby and --backfill together, output
order across different groups can differ from input order; order within a
group is always preserved.

Example:
  csvfill fill price transactions.csv
  csvfill fill --groupby account --backfill price transactions.csv
  csvfill fill -n -g 2 --first 1 < data.csv`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 2 {
				input = args[1]
			}
			return runFill(opts, cmd, args[0], input)
		},
	}

	cmd.Flags().StringVarP(&opts.GroupBy, "groupby", "g", "", "scope fill memory by this column selection")
	cmd.Flags().BoolVar(&opts.First, "first", false, "fill with the first seen value instead of the most recent")
	cmd.Flags().BoolVar(&opts.Backfill, "backfill", false, "buffer rows with still-empty fields until a value appears")
	cmd.Flags().BoolVar(&opts.Normalize, "normalize", false, "NFC-normalize group key values before comparison")

	return cmd
}

func runFill(opts *FillOptions, cmd *cobra.Command, selArg, input string) error {
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

	// The first row resolves selections: header row, or first data row
	// under --no-headers (it supplies the column count either way).
	header, err := rdr.Read()
	if err == io.EOF {
		return nil // empty input, nothing to do
	}
	if err != nil {
		return WrapExitError(ExitFailure, "read failed", err)
	}

	targets, err := resolveSelection(selArg, header, opts.NoHeaders)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid selection", err)
	}
	var groupBy selection.Selection
	if opts.GroupBy != "" {
		groupBy, err = resolveSelection(opts.GroupBy, header, opts.NoHeaders)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --groupby selection", err)
		}
	}

	policy := fill.PolicyForward
	if opts.First {
		policy = fill.PolicyFirst
	}
	filler := fill.New(fill.Options{
		Targets:   targets,
		GroupBy:   groupBy,
		Policy:    policy,
		Backfill:  opts.Backfill,
		Normalize: opts.Normalize,
	}, w)

	slog.Debug("fill configured",
		"targets", []int(targets),
		"groupby", []int(groupBy),
		"policy", policy.String(),
		"backfill", opts.Backfill)

	if opts.NoHeaders {
		// First row is data: it resolved the selections above and still
		// goes through the engine.
		if err := filler.Process(header); err != nil {
			return WrapExitError(ExitFailure, "fill failed", err)
		}
	} else if err := w.Write(header); err != nil {
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
		if err := filler.Process(rec); err != nil {
			return WrapExitError(ExitFailure, "fill failed", err)
		}
	}

	if err := filler.Flush(); err != nil {
		return WrapExitError(ExitFailure, "write failed", err)
	}
	if err := w.Flush(); err != nil {
		return WrapExitError(ExitFailure, "write failed", err)
	}

	slog.Debug("fill complete", "rows", filler.Rows(), "groups", filler.Groups())
	return nil
}
