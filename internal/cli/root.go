package cli

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kmarsh/csvfill/internal/csvio"
)

// RootOptions holds global flags shared by all subcommands.
type RootOptions struct {
	Output    string
	NoHeaders bool
	Delimiter string
	Encoding  string
	Verbose   bool
	Defaults  string

	delimiter rune // Delimiter parsed and validated
}

// NewRootCommand creates the root command for the csvfill CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "csvfill",
		Short: "Fill and coalesce empty fields in CSV streams",
		Long: `csvfill patches holes in tabular data.

fill replaces empty fields in selected columns with a previously seen
value from the same column, optionally scoped by a group key; coalesce
appends one column holding the first non-empty field among a selection.

Input defaults to stdin and output to stdout, so both commands compose
in shell pipelines.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyDefaults(opts, cmd.Flags()); err != nil {
				return err
			}

			d, size := utf8.DecodeRuneInString(opts.Delimiter)
			if size == 0 || size != len(opts.Delimiter) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("delimiter must be exactly one character, got %q", opts.Delimiter))
			}
			if err := csvio.ValidateDelimiter(d); err != nil {
				return WrapExitError(ExitCommandError, "invalid --delimiter", err)
			}
			opts.delimiter = d

			if err := csvio.ValidateEncoding(opts.Encoding); err != nil {
				return WrapExitError(ExitCommandError, "invalid --encoding", err)
			}

			setupLogging(cmd, opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "", "write output to this file instead of stdout")
	cmd.PersistentFlags().BoolVarP(&opts.NoHeaders, "no-headers", "n", false, "treat the first row as data, not headers")
	cmd.PersistentFlags().StringVarP(&opts.Delimiter, "delimiter", "d", ",", "field delimiter for reading and writing (one character)")
	cmd.PersistentFlags().StringVar(&opts.Encoding, "encoding", "", "input character encoding (utf-8, latin-1, windows-1252, utf-16)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	cmd.PersistentFlags().StringVar(&opts.Defaults, "defaults", "", "YAML file with default values for common flags")

	// Add subcommands
	cmd.AddCommand(NewFillCommand(opts))
	cmd.AddCommand(NewCoalesceCommand(opts))

	return cmd
}

// setupLogging routes diagnostics to stderr, never to the data stream on
// stdout. Each run is stamped with a time-ordered token so interleaved
// pipeline logs stay attributable.
func setupLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler).With("run", newRunToken()))
}

// newRunToken returns a UUIDv7 identifying this run in logs.
func newRunToken() string {
	return uuid.Must(uuid.NewV7()).String()
}
