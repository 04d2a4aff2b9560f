// Package trace provides trace recording for MLFQ simulation runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// Kind names the action a Record describes.
type Kind string

// Output kinds have a fixed text line in the simulation trace.
const (
	KindNew   Kind = "NEW"
	KindExit  Kind = "EXIT"
	KindRun   Kind = "RUN"
	KindIdle  Kind = "IDLE"
	KindBoost Kind = "BOOST"
)

// Decision kinds describe scheduler actions that have no trace line.
const (
	KindDispatch Kind = "DISPATCH" // task took the running slot
	KindPreempt  Kind = "PREEMPT"  // running task was displaced by a higher level
	KindDemote   Kind = "DEMOTE"   // quantum expired mid-burst
	KindComplete Kind = "COMPLETE" // burst finished
	KindRelocate Kind = "RELOCATE" // boost moved a task to level 1
)

// IsOutput reports whether k produces a line in the text trace.
func (k Kind) IsOutput() bool {
	switch k {
	case KindNew, KindExit, KindRun, KindIdle, KindBoost:
		return true
	default:
		return false
	}
}

// Record captures a single simulation action at a tick.
// Fields that do not apply to a kind are left zero.
type Record struct {
	Kind   Kind
	Tick   int64
	TaskID int

	Requested int // RUN, COMPLETE: burst length
	Used      int // RUN, COMPLETE: ticks served so far
	Level     int // level after the action (RUN: level the tick ran at)
	From      int // DEMOTE, RELOCATE: level before the action; DISPATCH: queue level taken from
	Quantum   int // DISPATCH: quantum assigned
	By        int // PREEMPT: id of the task that took the slot

	Wait       int64 // EXIT: total wait time
	Turnaround int64 // EXIT: wait + execution time
}
