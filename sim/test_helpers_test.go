package sim

import (
	"fmt"
	"testing"

	"github.com/inference-sim/mlfq-sim/sim/trace"
)

func create(tick int64, id TaskID) Instruction {
	return Instruction{Tick: tick, TaskID: id, Burst: BurstCreate}
}

func burst(tick int64, id TaskID, n int) Instruction {
	return Instruction{Tick: tick, TaskID: id, Burst: n}
}

func exit(tick int64, id TaskID) Instruction {
	return Instruction{Tick: tick, TaskID: id, Burst: BurstExit}
}

// newTestSimulator builds a simulator over ins. With no instructions a single
// far-future creation keeps NewSimulator from rejecting the empty script, so
// tests can craft queue state by hand.
func newTestSimulator(t *testing.T, cfg SimConfig, ins ...Instruction) (*Simulator, *trace.SimulationTrace) {
	t.Helper()
	if len(ins) == 0 {
		ins = []Instruction{create(1_000_000, TaskID(cfg.MaxTasks))}
	}
	st := trace.NewSimulationTrace()
	s, err := NewSimulator(cfg, NewSliceSource(ins...), st)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return s, st
}

// runScript replays ins with invariant checks on and fails the test on error.
func runScript(t *testing.T, cfg SimConfig, ins ...Instruction) (*Simulator, *trace.SimulationTrace) {
	t.Helper()
	cfg.CheckInvariants = true
	s, st := newTestSimulator(t, cfg, ins...)
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return s, st
}

// placeQueued puts a created task with a pending burst at the tail of queue.
func placeQueued(s *Simulator, id TaskID, level, queue Level, remaining int) *Task {
	t := s.Tasks.MustGet(id)
	t.reset(id)
	t.Level = level
	t.RequestedBurst = remaining
	t.RemainingBurst = remaining
	t.State = StateQueued
	s.Queue(queue).Enqueue(id)
	return t
}

// placeRunning puts a created task into the running slot.
func placeRunning(s *Simulator, id TaskID, level Level, quantum, remaining int) *Task {
	t := s.Tasks.MustGet(id)
	t.reset(id)
	t.Level = level
	t.RequestedBurst = remaining
	t.RemainingBurst = remaining
	t.State = StateRunning
	s.Running = RunningSlot{Task: id, RemainingQuantum: quantum}
	return t
}

func idleLines(from, to int64) []string {
	var lines []string
	for tick := from; tick <= to; tick++ {
		lines = append(lines, fmt.Sprintf("[%05d] IDLE", tick))
	}
	return lines
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
