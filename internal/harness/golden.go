package harness

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its raw output against
// the golden file testdata/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Scenarios with an expected error assert on the error, and scenarios
// with an inline expected output compare against it directly; only the
// rest use golden files.
func RunWithGolden(t *testing.T, scenario *Scenario) {
	t.Helper()

	got, err := Run(scenario)

	if scenario.Error != "" {
		if err == nil {
			t.Fatalf("expected error containing %q, command succeeded", scenario.Error)
		}
		if !strings.Contains(err.Error(), scenario.Error) {
			t.Fatalf("expected error containing %q, got %q", scenario.Error, err.Error())
		}
		return
	}
	if err != nil {
		t.Fatalf("scenario %s failed: %v", scenario.Name, err)
	}

	if scenario.Output != "" {
		if got != scenario.Output {
			t.Fatalf("scenario %s output mismatch:\ngot:\n%s\nwant:\n%s", scenario.Name, got, scenario.Output)
		}
		return
	}

	g := goldie.New(t)
	g.Assert(t, scenario.Name, []byte(got))
}
