package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Defaults is the optional YAML defaults file loaded with --defaults.
// It only covers the common flags; values given explicitly on the command
// line always win.
type Defaults struct {
	Output    string `yaml:"output,omitempty"`
	Delimiter string `yaml:"delimiter,omitempty"`
	NoHeaders *bool  `yaml:"no_headers,omitempty"`
	Encoding  string `yaml:"encoding,omitempty"`
}

// loadDefaults reads and parses a defaults file. Unknown fields are
// rejected so typos fail loudly instead of being silently ignored.
func loadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read defaults file: %w", err)
	}

	var d Defaults
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &d, nil
}

// applyDefaults merges the defaults file into opts for every flag the
// user did not set explicitly.
func applyDefaults(opts *RootOptions, flags *pflag.FlagSet) error {
	if opts.Defaults == "" {
		return nil
	}
	d, err := loadDefaults(opts.Defaults)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid defaults file", err)
	}

	if d.Output != "" && !flags.Changed("output") {
		opts.Output = d.Output
	}
	if d.Delimiter != "" && !flags.Changed("delimiter") {
		opts.Delimiter = d.Delimiter
	}
	if d.NoHeaders != nil && !flags.Changed("no-headers") {
		opts.NoHeaders = *d.NoHeaders
	}
	if d.Encoding != "" && !flags.Changed("encoding") {
		opts.Encoding = d.Encoding
	}
	return nil
}
