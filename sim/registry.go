package sim

import "fmt"

// Registry is the fixed-capacity task table. Tasks live in a slice indexed by
// id-1, so a TaskID is a stable handle for the whole run.
type Registry struct {
	tasks []Task
}

// NewRegistry creates a registry for ids 1..=capacity, all unborn.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		panic(fmt.Sprintf("NewRegistry: capacity must be > 0, got %d", capacity))
	}
	r := &Registry{tasks: make([]Task, capacity)}
	for i := range r.tasks {
		r.tasks[i] = Task{ID: TaskID(i + 1), State: StateUnborn}
	}
	return r
}

// Capacity returns the largest valid TaskID.
func (r *Registry) Capacity() int {
	return len(r.tasks)
}

// Contains reports whether id is inside the registry's id range.
func (r *Registry) Contains(id TaskID) bool {
	return id >= 1 && int(id) <= len(r.tasks)
}

// Lookup returns the record for id, or ErrTaskIDOutOfRange.
func (r *Registry) Lookup(id TaskID) (*Task, error) {
	if !r.Contains(id) {
		return nil, fmt.Errorf("id %d not in 1..%d: %w", id, len(r.tasks), ErrTaskIDOutOfRange)
	}
	return &r.tasks[id-1], nil
}

// MustGet returns the record for an id already known to be valid.
// Queues and the running slot only ever hold valid ids.
func (r *Registry) MustGet(id TaskID) *Task {
	t, err := r.Lookup(id)
	if err != nil {
		panic(fmt.Sprintf("MustGet: %v", err))
	}
	return t
}

// Each calls fn for every task that has been created, in id order.
func (r *Registry) Each(fn func(*Task)) {
	for i := range r.tasks {
		if r.tasks[i].State != StateUnborn {
			fn(&r.tasks[i])
		}
	}
}
