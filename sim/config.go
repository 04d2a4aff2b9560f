package sim

import "fmt"

// NumLevels is the number of ready levels in the feedback queue.
const NumLevels = 3

// SimConfig groups the fixed parameters of one simulation run.
// Values are read once at construction; nothing tunes them mid-run.
type SimConfig struct {
	Quantums        [NumLevels]int // time quantum per level, index 0 = level 1 (default 2, 4, 8)
	BoostInterval   int64          // boost fires when tick % BoostInterval == 0 (default 25)
	BoostQuantumCap int            // cap applied to a level-1 running task's quantum on boost (default 2)
	MaxTasks        int            // task ids are 1..=MaxTasks (default 10)
	StartTick       int64          // first simulated tick (default 0)
	Horizon         int64          // last tick allowed to run; 0 = unlimited
	CheckInvariants bool           // verify queue/slot invariants after every tick
}

// DefaultSimConfig returns the reference MLFQ parameters.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Quantums:        [NumLevels]int{2, 4, 8},
		BoostInterval:   25,
		BoostQuantumCap: 2,
		MaxTasks:        10,
		StartTick:       0,
		Horizon:         0,
	}
}

// QuantumFor returns the time quantum assigned when a task is dispatched at level.
// Panics for LevelUnassigned: an unassigned task is never dispatched.
func (c SimConfig) QuantumFor(level Level) int {
	switch level {
	case Level1, Level2, Level3:
		return c.Quantums[level-1]
	case LevelUnassigned:
		panic("QuantumFor: unassigned level has no quantum")
	default:
		panic(fmt.Sprintf("QuantumFor: unknown level %d", level))
	}
}

// Validate reports the first invalid field, if any.
func (c SimConfig) Validate() error {
	for i, q := range c.Quantums {
		if q <= 0 {
			return fmt.Errorf("quantum for level %d must be > 0, got %d", i+1, q)
		}
	}
	if c.BoostInterval <= 0 {
		return fmt.Errorf("boost interval must be > 0, got %d", c.BoostInterval)
	}
	if c.BoostQuantumCap <= 0 {
		return fmt.Errorf("boost quantum cap must be > 0, got %d", c.BoostQuantumCap)
	}
	if c.MaxTasks <= 0 {
		return fmt.Errorf("max tasks must be > 0, got %d", c.MaxTasks)
	}
	if c.StartTick < 0 {
		return fmt.Errorf("start tick must be >= 0, got %d", c.StartTick)
	}
	if c.Horizon < 0 {
		return fmt.Errorf("horizon must be >= 0, got %d", c.Horizon)
	}
	if c.Horizon > 0 && c.Horizon < c.StartTick {
		return fmt.Errorf("horizon %d is before start tick %d", c.Horizon, c.StartTick)
	}
	return nil
}
