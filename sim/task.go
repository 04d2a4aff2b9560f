// Defines the Task record that models one simulated process in the MLFQ.
// Tracks the current burst, the feedback level and lifetime accounting.

package sim

import "fmt"

// TaskID identifies a task. Valid ids are 1..=SimConfig.MaxTasks; 0 is "no task".
type TaskID int

// NoTask is the zero TaskID, used for an empty running slot.
const NoTask TaskID = 0

// TaskState represents the lifecycle state of a task record.
type TaskState string

const (
	StateUnborn  TaskState = "unborn"  // never created
	StateIdle    TaskState = "idle"    // created, no pending burst
	StateQueued  TaskState = "queued"  // waiting in a level queue
	StateRunning TaskState = "running" // holds the running slot
	StateRetired TaskState = "retired" // exit reported
)

// Task is owned by the Registry; queues and the running slot refer to it by ID.
type Task struct {
	ID    TaskID
	State TaskState

	RequestedBurst int   // length of the burst being served; 0 when no burst was requested
	RemainingBurst int   // ticks left in the current burst
	Level          Level // LevelUnassigned until the first burst request

	TotalWaitTime      int64 // ticks spent queued, across all bursts
	TotalExecutionTime int64 // ticks spent running, across all bursts
	Bursts             int   // bursts requested since creation
}

// Used returns the ticks already served of the current burst.
func (t *Task) Used() int {
	return t.RequestedBurst - t.RemainingBurst
}

// Turnaround returns wait plus execution time.
func (t *Task) Turnaround() int64 {
	return t.TotalWaitTime + t.TotalExecutionTime
}

// Active reports whether the task is queued or running.
func (t *Task) Active() bool {
	return t.State == StateQueued || t.State == StateRunning
}

// reset returns the record to its freshly created state.
func (t *Task) reset(id TaskID) {
	*t = Task{ID: id, State: StateIdle, Level: LevelUnassigned}
}

func (t Task) String() string {
	return fmt.Sprintf("Task: (ID: %d, State: %s, Level: %s, Burst: %d/%d, Wait: %d, Exec: %d)",
		t.ID, t.State, t.Level, t.Used(), t.RequestedBurst, t.TotalWaitTime, t.TotalExecutionTime)
}
