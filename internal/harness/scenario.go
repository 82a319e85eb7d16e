// Package harness runs end-to-end fill and coalesce cases declared as
// YAML scenario files: raw CSV in, flags, and either an expected CSV
// output, an expected error, or a golden file.
package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario defines one end-to-end CLI case.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Command is the subcommand under test: "fill" or "coalesce".
	Command string `yaml:"command"`

	// Args are the remaining CLI arguments: flags and the selection.
	Args []string `yaml:"args"`

	// Input is the raw CSV text fed to stdin.
	Input string `yaml:"input"`

	// Output is the expected raw CSV output. Optional when the scenario
	// is verified against a golden file instead.
	Output string `yaml:"output,omitempty"`

	// Error is a substring the command error must contain. A scenario
	// with Error set expects the run to fail.
	Error string `yaml:"error,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected (catches typos like "arg:" vs "args:").
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// LoadDir loads every *.yaml scenario in dir, sorted by filename so test
// order is stable.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Command != "fill" && s.Command != "coalesce" {
		return fmt.Errorf("command must be \"fill\" or \"coalesce\", got %q", s.Command)
	}
	if len(s.Args) == 0 {
		return fmt.Errorf("args list is required and must be non-empty")
	}
	if s.Input == "" {
		return fmt.Errorf("input is required")
	}
	if s.Output != "" && s.Error != "" {
		return fmt.Errorf("output and error are mutually exclusive")
	}
	return nil
}
