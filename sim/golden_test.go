package sim_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/mlfq-sim/sim"
	"github.com/inference-sim/mlfq-sim/sim/internal/testutil"
	"github.com/inference-sim/mlfq-sim/sim/trace"
	"github.com/inference-sim/mlfq-sim/sim/workload"
)

// TestSimulator_GoldenDataset replays every golden script and requires the
// exact trace and run totals.
func TestSimulator_GoldenDataset(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, tc := range dataset.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			cfg := sim.DefaultSimConfig()
			cfg.CheckInvariants = true
			st := trace.NewSimulationTrace()
			var out bytes.Buffer
			text := trace.NewTextRecorder(&out)
			s, err := sim.NewSimulator(cfg, workload.NewReader(strings.NewReader(tc.ScriptText())), trace.Multi(st, text))
			require.NoError(t, err)

			require.NoError(t, s.Run())
			require.NoError(t, text.Flush())

			assert.Equal(t, tc.Trace, st.Lines())
			assert.Equal(t, strings.Join(tc.Trace, "\n")+"\n", out.String())
			m := s.Metrics
			assert.Equal(t, tc.Metrics.Ticks, m.Ticks, "ticks")
			assert.Equal(t, tc.Metrics.BusyTicks, m.BusyTicks, "busy ticks")
			assert.Equal(t, tc.Metrics.Preemptions, m.Preemptions, "preemptions")
			assert.Equal(t, tc.Metrics.Demotions, m.Demotions, "demotions")
			assert.Equal(t, tc.Metrics.Boosts, m.Boosts, "boosts")
			assert.Equal(t, tc.Metrics.Relocations, m.Relocations, "relocations")
			testutil.AssertFloat64Equal(t, "mean wait", tc.Metrics.MeanWait, m.MeanWait(), 1e-9)
			testutil.AssertFloat64Equal(t, "mean turnaround", tc.Metrics.MeanTurnaround, m.MeanTurnaround(), 1e-9)

			// the summary derived from the trace agrees with the kernel's counters
			summary := trace.Summarize(st)
			assert.Equal(t, int(m.Ticks), summary.Ticks)
			assert.Equal(t, m.Preemptions, summary.Preemptions)
			assert.Equal(t, m.Demotions, summary.Demotions)
		})
	}
}
