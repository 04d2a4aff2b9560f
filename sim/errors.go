package sim

import "errors"

// Errors returned by the simulation kernel. Call sites wrap them with the
// offending tick and task id; match with errors.Is.
var (
	// ErrTaskIDOutOfRange: an instruction names an id outside 1..=MaxTasks.
	ErrTaskIDOutOfRange = errors.New("task id out of range")
	// ErrTaskActive: NEW or EXIT for a task that is queued or running.
	ErrTaskActive = errors.New("task is queued or running")
	// ErrUnknownTask: burst or EXIT for an id that was never created.
	ErrUnknownTask = errors.New("task was never created")
	// ErrTaskRetired: burst or EXIT for a task that already exited.
	ErrTaskRetired = errors.New("task already exited")
	// ErrBurstWhileActive: burst request for a task that is queued or running.
	ErrBurstWhileActive = errors.New("burst requested while task is queued or running")
	// ErrInvalidBurst: burst_time below -1.
	ErrInvalidBurst = errors.New("invalid burst time")
	// ErrOutOfOrder: an instruction tick lies before the current tick.
	ErrOutOfOrder = errors.New("instruction tick is before the current tick")
	// ErrEmptyScript: the instruction source yielded nothing.
	ErrEmptyScript = errors.New("instruction script is empty")
	// ErrHorizonReached: the configured horizon elapsed with work remaining.
	ErrHorizonReached = errors.New("simulation horizon reached with work remaining")
	// ErrInvariant: CheckInvariants found inconsistent queue or slot state.
	ErrInvariant = errors.New("scheduler invariant violated")
)
