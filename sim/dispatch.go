package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/mlfq-sim/sim/trace"
)

// DispatchInstructions applies, in file order, every pending instruction
// scheduled for the current tick. It makes no scheduling decision.
func (sim *Simulator) DispatchInstructions() error {
	for sim.hasPending && sim.pending.Tick == sim.Clock {
		in := sim.pending
		if err := sim.applyInstruction(in); err != nil {
			return fmt.Errorf("tick %d: instruction %s: %w", sim.Clock, in, err)
		}
		sim.consumed++
		if err := sim.advance(sim.Clock); err != nil {
			return err
		}
	}
	return nil
}

func (sim *Simulator) applyInstruction(in Instruction) error {
	task, err := sim.Tasks.Lookup(in.TaskID)
	if err != nil {
		return err
	}
	switch in.Kind() {
	case KindCreate:
		return sim.createTask(task)
	case KindBurst:
		return sim.requestBurst(task, in.Burst)
	case KindExit:
		return sim.exitTask(task)
	default:
		return fmt.Errorf("burst %d: %w", in.Burst, ErrInvalidBurst)
	}
}

// createTask (re)initialises the record. A task that is queued or running
// cannot be recreated without losing scheduling state.
func (sim *Simulator) createTask(t *Task) error {
	if t.Active() {
		return fmt.Errorf("create task %d: %w", t.ID, ErrTaskActive)
	}
	if t.State == StateIdle {
		logrus.Warnf("[tick %05d] task %d recreated without exit; counters reset", sim.Clock, t.ID)
	}
	t.reset(t.ID)
	sim.Metrics.Created++
	sim.emit(trace.Record{Kind: trace.KindNew, Tick: sim.Clock, TaskID: int(t.ID)})
	return nil
}

// requestBurst arms a new CPU burst and appends the task to the level-1 queue.
// The task keeps any level it already reached; only an unassigned task starts at level 1.
func (sim *Simulator) requestBurst(t *Task, burst int) error {
	switch t.State {
	case StateUnborn:
		return fmt.Errorf("burst for task %d: %w", t.ID, ErrUnknownTask)
	case StateRetired:
		return fmt.Errorf("burst for task %d: %w", t.ID, ErrTaskRetired)
	case StateQueued, StateRunning:
		return fmt.Errorf("burst for task %d: %w", t.ID, ErrBurstWhileActive)
	case StateIdle:
	default:
		panic(fmt.Sprintf("requestBurst: unknown state %q", t.State))
	}
	t.RequestedBurst = burst
	t.RemainingBurst = burst
	if t.Level == LevelUnassigned {
		t.Level = Level1
	}
	t.Bursts++
	t.State = StateQueued
	sim.Queue(Level1).Enqueue(t.ID)
	logrus.Debugf("[tick %05d] task %d requests burst of %d ticks (level %s)", sim.Clock, t.ID, burst, t.Level)
	return nil
}

// exitTask reports the lifetime accounting and retires the task.
func (sim *Simulator) exitTask(t *Task) error {
	switch t.State {
	case StateUnborn:
		return fmt.Errorf("exit for task %d: %w", t.ID, ErrUnknownTask)
	case StateRetired:
		return fmt.Errorf("exit for task %d: %w", t.ID, ErrTaskRetired)
	case StateQueued, StateRunning:
		return fmt.Errorf("exit for task %d with %d ticks of burst left: %w", t.ID, t.RemainingBurst, ErrTaskActive)
	case StateIdle:
	default:
		panic(fmt.Sprintf("exitTask: unknown state %q", t.State))
	}
	if t.Bursts == 0 {
		logrus.Warnf("[tick %05d] task %d exits without ever requesting a burst", sim.Clock, t.ID)
	}
	t.State = StateRetired
	sim.Metrics.recordExit(t, sim.Clock)
	sim.emit(trace.Record{
		Kind:       trace.KindExit,
		Tick:       sim.Clock,
		TaskID:     int(t.ID),
		Wait:       t.TotalWaitTime,
		Turnaround: t.Turnaround(),
	})
	return nil
}
