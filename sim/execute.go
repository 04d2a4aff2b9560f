package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/mlfq-sim/sim/trace"
)

// Execute runs the current task for one tick, or records an idle tick.
//
// After the tick a finished burst frees the CPU without demotion, even when
// the quantum ran out on the same tick. Otherwise an expired quantum demotes
// the task one level (level 3 is a floor) to the tail of its new queue.
func (sim *Simulator) Execute() {
	if sim.Running.Empty() {
		sim.Metrics.IdleTicks++
		sim.emit(trace.Record{Kind: trace.KindIdle, Tick: sim.Clock})
		return
	}

	t := sim.Tasks.MustGet(sim.Running.Task)
	sim.Running.RemainingQuantum--
	t.RemainingBurst--
	t.TotalExecutionTime++
	sim.Metrics.BusyTicks++
	sim.emit(trace.Record{
		Kind:      trace.KindRun,
		Tick:      sim.Clock,
		TaskID:    int(t.ID),
		Requested: t.RequestedBurst,
		Used:      t.Used(),
		Level:     int(t.Level),
	})

	switch {
	case t.RemainingBurst == 0:
		t.State = StateIdle
		sim.Running = RunningSlot{}
		sim.Metrics.CompletedBursts++
		logrus.Debugf("[tick %05d] task %d completed burst of %d ticks", sim.Clock, t.ID, t.RequestedBurst)
		sim.emit(trace.Record{
			Kind:      trace.KindComplete,
			Tick:      sim.Clock,
			TaskID:    int(t.ID),
			Requested: t.RequestedBurst,
			Used:      t.Used(),
			Level:     int(t.Level),
		})
	case sim.Running.RemainingQuantum == 0:
		from := t.Level
		t.Level = t.Level.Demote()
		t.State = StateQueued
		sim.Queue(t.Level).Enqueue(t.ID)
		sim.Running = RunningSlot{}
		sim.Metrics.Demotions++
		logrus.Debugf("[tick %05d] task %d quantum expired, %s -> %s (%d left)", sim.Clock, t.ID, from, t.Level, t.RemainingBurst)
		sim.emit(trace.Record{
			Kind:   trace.KindDemote,
			Tick:   sim.Clock,
			TaskID: int(t.ID),
			Level:  int(t.Level),
			From:   int(from),
		})
	}
}
