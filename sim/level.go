package sim

import "fmt"

// Level is a task's feedback-queue level. Level1 is the highest priority.
// LevelUnassigned only exists before a task's first burst request.
type Level int

const (
	LevelUnassigned Level = iota
	Level1
	Level2
	Level3
)

// Demote returns the next lower-priority level. Level3 is a floor.
func (l Level) Demote() Level {
	switch l {
	case Level1:
		return Level2
	case Level2, Level3:
		return Level3
	case LevelUnassigned:
		panic("Demote: unassigned level cannot be demoted")
	default:
		panic(fmt.Sprintf("Demote: unknown level %d", l))
	}
}

// IsReady reports whether l names one of the three ready levels.
func (l Level) IsReady() bool {
	return l >= Level1 && l <= Level3
}

// HigherThan reports whether l has strictly higher priority than other.
func (l Level) HigherThan(other Level) bool {
	return l.IsReady() && other.IsReady() && l < other
}

func (l Level) String() string {
	switch l {
	case LevelUnassigned:
		return "unassigned"
	case Level1:
		return "L1"
	case Level2:
		return "L2"
	case Level3:
		return "L3"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// readyLevels lists the ready levels from highest to lowest priority.
var readyLevels = [NumLevels]Level{Level1, Level2, Level3}
