package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/mlfq-sim/sim/trace"
)

// BoostDue reports whether the current tick is a boost tick.
func (sim *Simulator) BoostDue() bool {
	return sim.Clock%sim.Config.BoostInterval == 0
}

// Boost moves every ready task back to level 1 on boost ticks and reports
// whether a boost happened.
//
// A running task below level 1 is moved to the tail of level 1 and the slot is
// cleared, so the scheduler re-dispatches this same tick. A running level-1
// task keeps the CPU with its quantum capped at BoostQuantumCap. Level 3 is
// drained before level 2, each in queue order.
func (sim *Simulator) Boost() bool {
	if !sim.BoostDue() {
		return false
	}
	l1 := sim.Queue(Level1)

	if !sim.Running.Empty() {
		t := sim.Tasks.MustGet(sim.Running.Task)
		if t.Level != Level1 {
			from := t.Level
			t.Level = Level1
			t.State = StateQueued
			l1.Enqueue(t.ID)
			sim.Running = RunningSlot{}
			sim.emitRelocate(t, from)
		} else if sim.Running.RemainingQuantum > sim.Config.BoostQuantumCap {
			sim.Running.RemainingQuantum = sim.Config.BoostQuantumCap
		}
	}

	for _, level := range []Level{Level3, Level2} {
		for _, id := range sim.Queue(level).Drain() {
			t := sim.Tasks.MustGet(id)
			t.Level = Level1
			l1.Enqueue(id)
			sim.emitRelocate(t, level)
		}
	}

	sim.Metrics.Boosts++
	logrus.Debugf("[tick %05d] boost: level 1 now %s", sim.Clock, l1)
	sim.emit(trace.Record{Kind: trace.KindBoost, Tick: sim.Clock})
	return true
}

func (sim *Simulator) emitRelocate(t *Task, from Level) {
	sim.Metrics.Relocations++
	sim.emit(trace.Record{
		Kind:   trace.KindRelocate,
		Tick:   sim.Clock,
		TaskID: int(t.ID),
		Level:  int(Level1),
		From:   int(from),
	})
}
