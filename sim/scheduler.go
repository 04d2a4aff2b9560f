package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/mlfq-sim/sim/trace"
)

// Schedule decides the running task for the current tick.
//
// An idle CPU takes the head of the highest non-empty level. A running task
// is preempted only when a strictly higher level has a ready task; same-level
// and lower-level arrivals never preempt. A preempted task goes to the tail of
// its own level's queue and keeps its remaining burst.
func (sim *Simulator) Schedule() {
	if sim.Running.Empty() {
		if level, ok := sim.highestReady(); ok {
			sim.dispatchFrom(level)
		}
		return
	}

	current := sim.Tasks.MustGet(sim.Running.Task)
	switch current.Level {
	case Level1:
		// nothing outranks level 1
	case Level2, Level3:
		level, ok := sim.highestReady()
		if !ok || !level.HigherThan(current.Level) {
			return
		}
		next, _ := sim.Queue(level).Peek()
		sim.preempt(current, next)
		sim.dispatchFrom(level)
	default:
		panic(fmt.Sprintf("Schedule: running task %d at %s", current.ID, current.Level))
	}
}

// highestReady returns the highest-priority level with a queued task.
func (sim *Simulator) highestReady() (Level, bool) {
	for _, level := range readyLevels {
		if !sim.Queue(level).Empty() {
			return level, true
		}
	}
	return LevelUnassigned, false
}

// preempt returns the running task to the tail of its level's queue.
func (sim *Simulator) preempt(t *Task, by TaskID) {
	t.State = StateQueued
	sim.Queue(t.Level).Enqueue(t.ID)
	sim.Running = RunningSlot{}
	sim.Metrics.Preemptions++
	logrus.Debugf("[tick %05d] task %d (%s, %d left) preempted by task %d", sim.Clock, t.ID, t.Level, t.RemainingBurst, by)
	sim.emit(trace.Record{
		Kind:   trace.KindPreempt,
		Tick:   sim.Clock,
		TaskID: int(t.ID),
		Level:  int(t.Level),
		By:     int(by),
	})
}

// dispatchFrom moves the head of level's queue into the running slot with
// that level's quantum.
func (sim *Simulator) dispatchFrom(level Level) {
	id, ok := sim.Queue(level).Dequeue()
	if !ok {
		panic(fmt.Sprintf("dispatchFrom: %s queue is empty", level))
	}
	t := sim.Tasks.MustGet(id)
	t.State = StateRunning
	quantum := sim.Config.QuantumFor(level)
	sim.Running = RunningSlot{Task: id, RemainingQuantum: quantum}
	sim.Metrics.Dispatches[level-1]++
	logrus.Debugf("[tick %05d] dispatch task %d from %s (quantum %d, burst %d/%d)",
		sim.Clock, id, level, quantum, t.Used(), t.RequestedBurst)
	sim.emit(trace.Record{
		Kind:    trace.KindDispatch,
		Tick:    sim.Clock,
		TaskID:  int(id),
		Level:   int(t.Level),
		From:    int(level),
		Quantum: quantum,
	})
}
