// Package testutil provides shared test infrastructure for the MLFQ simulator.
// It holds the golden trace dataset types and assertion helpers used by the
// sim/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one script together with its exact expected trace.
// All cases use the default configuration.
type GoldenTestCase struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Script      []string      `json:"script"` // instruction lines, file order
	Trace       []string      `json:"trace"`  // expected stdout lines
	Metrics     GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected run totals of a golden test case.
type GoldenMetrics struct {
	// Exact match counters
	Ticks       int64 `json:"ticks"`
	BusyTicks   int64 `json:"busy_ticks"`
	Preemptions int   `json:"preemptions"`
	Demotions   int   `json:"demotions"`
	Boosts      int   `json:"boosts"`
	Relocations int   `json:"relocations"`

	// Averages over exited tasks
	MeanWait       float64 `json:"mean_wait"`
	MeanTurnaround float64 `json:"mean_turnaround"`
}

// ScriptText joins the script lines into input file contents.
func (tc GoldenTestCase) ScriptText() string {
	return strings.Join(tc.Script, "\n") + "\n"
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset has no test cases")
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
