// sim/simulator.go
package sim

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/mlfq-sim/sim/trace"
)

// RunningSlot holds the task currently on the CPU, if any.
type RunningSlot struct {
	Task             TaskID // NoTask when the CPU is idle
	RemainingQuantum int    // ticks left before the quantum check; 0 when idle
}

// Empty reports whether no task is running.
func (rs RunningSlot) Empty() bool {
	return rs.Task == NoTask
}

// Simulator is the single simulation context: clock, task registry, level
// queues, running slot and the instruction stream. Every phase of a tick is
// a method on it; there is no package-level mutable state.
type Simulator struct {
	Clock   int64
	Config  SimConfig
	Tasks   *Registry
	Queues  [NumLevels]*LevelQueue // index 0 = level 1
	Running RunningSlot
	Metrics *Metrics

	source     InstructionSource
	pending    Instruction // next unapplied instruction, valid while hasPending
	hasPending bool
	consumed   int
	recorder   trace.Recorder
}

// NewSimulator validates cfg and primes the first instruction from source.
// A nil recorder discards all records.
func NewSimulator(cfg SimConfig, source InstructionSource, recorder trace.Recorder) (*Simulator, error) {
	if source == nil {
		panic("NewSimulator: source must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if recorder == nil {
		recorder = trace.Discard
	}
	s := &Simulator{
		Clock:    cfg.StartTick,
		Config:   cfg,
		Tasks:    NewRegistry(cfg.MaxTasks),
		Metrics:  NewMetrics(),
		source:   source,
		recorder: recorder,
	}
	for i, level := range readyLevels {
		s.Queues[i] = NewLevelQueue(level)
	}
	if err := s.advance(cfg.StartTick); err != nil {
		return nil, err
	}
	if !s.hasPending {
		return nil, ErrEmptyScript
	}
	return s, nil
}

// Queue returns the ready queue for level.
func (sim *Simulator) Queue(level Level) *LevelQueue {
	if !level.IsReady() {
		panic(fmt.Sprintf("Queue: %s has no queue", level))
	}
	return sim.Queues[level-1]
}

// Exhausted reports whether every instruction has been applied.
func (sim *Simulator) Exhausted() bool {
	return !sim.hasPending
}

// Consumed returns the number of instructions applied so far.
func (sim *Simulator) Consumed() int {
	return sim.consumed
}

// Done reports the termination condition: no instructions left, every queue
// empty and the CPU idle.
func (sim *Simulator) Done() bool {
	if sim.hasPending || !sim.Running.Empty() {
		return false
	}
	for _, q := range sim.Queues {
		if !q.Empty() {
			return false
		}
	}
	return true
}

// Run steps the simulation from Config.StartTick until Done.
func (sim *Simulator) Run() error {
	logrus.Infof("[tick %05d] Simulation started: quantums=%v boost-interval=%d max-tasks=%d",
		sim.Config.StartTick, sim.Config.Quantums, sim.Config.BoostInterval, sim.Config.MaxTasks)
	for tick := sim.Config.StartTick; ; tick++ {
		if h := sim.Config.Horizon; h > 0 && tick > h {
			return fmt.Errorf("stopped after tick %d: %w", h, ErrHorizonReached)
		}
		if err := sim.Step(tick); err != nil {
			return err
		}
		if sim.Done() {
			break
		}
	}
	sim.Metrics.SimEndedTick = sim.Clock
	logrus.Infof("[tick %05d] Simulation ended after %d instructions", sim.Clock, sim.consumed)
	return nil
}

// Step runs one tick: instructions, boost, scheduling, wait accounting, execution.
func (sim *Simulator) Step(tick int64) error {
	sim.Clock = tick
	if err := sim.DispatchInstructions(); err != nil {
		return err
	}
	sim.Boost()
	sim.Schedule()
	sim.AccumulateWait()
	sim.Execute()
	sim.Metrics.Ticks++
	if sim.Config.CheckInvariants {
		if err := sim.CheckInvariants(); err != nil {
			return fmt.Errorf("tick %d: %w", tick, err)
		}
	}
	return nil
}

// advance reads the next instruction. Instructions before tick can never be
// applied, so they are rejected.
func (sim *Simulator) advance(tick int64) error {
	in, err := sim.source.Next()
	if errors.Is(err, io.EOF) {
		sim.hasPending = false
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading instruction %d: %w", sim.consumed+1, err)
	}
	if in.Tick < tick {
		return fmt.Errorf("instruction %s after tick %d: %w", in, tick, ErrOutOfOrder)
	}
	sim.pending = in
	sim.hasPending = true
	return nil
}

func (sim *Simulator) emit(rec trace.Record) {
	sim.recorder.Record(rec)
}

// CheckInvariants verifies that every task is referenced by at most one of
// the level queues and the running slot, that references agree with task
// state and that only the running task holds a quantum.
func (sim *Simulator) CheckInvariants() error {
	seen := make(map[TaskID]string)
	queued := 0
	for _, q := range sim.Queues {
		for _, id := range q.Items() {
			where := q.Level().String()
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("task %d in both %s and %s: %w", id, prev, where, ErrInvariant)
			}
			seen[id] = where
			t := sim.Tasks.MustGet(id)
			if t.State != StateQueued {
				return fmt.Errorf("task %d in %s has state %s: %w", id, where, t.State, ErrInvariant)
			}
			if q.Level() != Level1 && t.Level != q.Level() {
				return fmt.Errorf("task %d at %s queued in %s: %w", id, t.Level, where, ErrInvariant)
			}
			queued++
		}
	}
	if sim.Running.Empty() {
		if sim.Running.RemainingQuantum != 0 {
			return fmt.Errorf("idle CPU holds quantum %d: %w", sim.Running.RemainingQuantum, ErrInvariant)
		}
	} else {
		id := sim.Running.Task
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("running task %d also queued in %s: %w", id, prev, ErrInvariant)
		}
		t := sim.Tasks.MustGet(id)
		if t.State != StateRunning || !t.Level.IsReady() {
			return fmt.Errorf("running task %d has state %s level %s: %w", id, t.State, t.Level, ErrInvariant)
		}
		if sim.Running.RemainingQuantum <= 0 {
			return fmt.Errorf("running task %d has quantum %d: %w", id, sim.Running.RemainingQuantum, ErrInvariant)
		}
	}
	var stateQueued, stateRunning int
	sim.Tasks.Each(func(t *Task) {
		switch t.State {
		case StateQueued:
			stateQueued++
		case StateRunning:
			stateRunning++
		}
	})
	if stateQueued != queued {
		return fmt.Errorf("%d tasks marked queued, %d in queues: %w", stateQueued, queued, ErrInvariant)
	}
	if stateRunning > 1 || (stateRunning == 1) == sim.Running.Empty() {
		return fmt.Errorf("%d tasks marked running, slot=%d: %w", stateRunning, sim.Running.Task, ErrInvariant)
	}
	return nil
}
