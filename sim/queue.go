// Implements the LevelQueue, which holds the ready tasks of one MLFQ level.
// Tasks are enqueued on burst arrival, demotion, preemption and boost.

package sim

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// LevelQueue is a strict FIFO of TaskIDs waiting at one level.
// It stores ids only; the Registry owns the task records.
type LevelQueue struct {
	level Level
	queue *linkedlistqueue.Queue
}

// NewLevelQueue creates an empty queue for the given ready level.
func NewLevelQueue(level Level) *LevelQueue {
	if !level.IsReady() {
		panic(fmt.Sprintf("NewLevelQueue: %s is not a ready level", level))
	}
	return &LevelQueue{level: level, queue: linkedlistqueue.New()}
}

// Level returns the level this queue serves.
func (lq *LevelQueue) Level() Level {
	return lq.level
}

// Enqueue adds a task to the back of the queue.
func (lq *LevelQueue) Enqueue(id TaskID) {
	if id == NoTask {
		panic("Enqueue: id must not be NoTask")
	}
	lq.queue.Enqueue(id)
}

// Dequeue removes and returns the task at the front of the queue.
// Returns false if the queue is empty.
func (lq *LevelQueue) Dequeue() (TaskID, bool) {
	v, ok := lq.queue.Dequeue()
	if !ok {
		return NoTask, false
	}
	return v.(TaskID), true
}

// Peek returns the task at the front of the queue without removing it.
// Returns false if the queue is empty.
func (lq *LevelQueue) Peek() (TaskID, bool) {
	v, ok := lq.queue.Peek()
	if !ok {
		return NoTask, false
	}
	return v.(TaskID), true
}

// Empty reports whether the queue holds no tasks.
func (lq *LevelQueue) Empty() bool {
	return lq.queue.Empty()
}

// Len returns the number of queued tasks.
func (lq *LevelQueue) Len() int {
	return lq.queue.Size()
}

// Items returns a copy of the queue contents, front first.
func (lq *LevelQueue) Items() []TaskID {
	values := lq.queue.Values()
	ids := make([]TaskID, len(values))
	for i, v := range values {
		ids[i] = v.(TaskID)
	}
	return ids
}

// Drain removes every task, front first, and returns them.
func (lq *LevelQueue) Drain() []TaskID {
	ids := lq.Items()
	lq.queue.Clear()
	return ids
}

func (lq *LevelQueue) String() string {
	var sb strings.Builder
	sb.WriteString(lq.level.String())
	sb.WriteString("[")
	for i, id := range lq.Items() {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d", id)
	}
	sb.WriteString("]")
	return sb.String()
}
