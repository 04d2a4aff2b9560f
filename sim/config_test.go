package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSimConfig_ReferenceParameters(t *testing.T) {
	cfg := DefaultSimConfig()

	assert.Equal(t, [NumLevels]int{2, 4, 8}, cfg.Quantums)
	assert.Equal(t, int64(25), cfg.BoostInterval)
	assert.Equal(t, 2, cfg.BoostQuantumCap)
	assert.Equal(t, 10, cfg.MaxTasks)
	assert.NoError(t, cfg.Validate())
}

func TestSimConfig_QuantumFor(t *testing.T) {
	cfg := DefaultSimConfig()

	assert.Equal(t, 2, cfg.QuantumFor(Level1))
	assert.Equal(t, 4, cfg.QuantumFor(Level2))
	assert.Equal(t, 8, cfg.QuantumFor(Level3))
	assert.Panics(t, func() { cfg.QuantumFor(LevelUnassigned) })
}

func TestSimConfig_Validate_RejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SimConfig)
	}{
		{"zero quantum", func(c *SimConfig) { c.Quantums[1] = 0 }},
		{"negative quantum", func(c *SimConfig) { c.Quantums[2] = -1 }},
		{"zero boost interval", func(c *SimConfig) { c.BoostInterval = 0 }},
		{"zero boost cap", func(c *SimConfig) { c.BoostQuantumCap = 0 }},
		{"zero max tasks", func(c *SimConfig) { c.MaxTasks = 0 }},
		{"negative start tick", func(c *SimConfig) { c.StartTick = -1 }},
		{"negative horizon", func(c *SimConfig) { c.Horizon = -5 }},
		{"horizon before start", func(c *SimConfig) { c.StartTick = 10; c.Horizon = 5 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSimConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLevel_Demote_Level3IsFloor(t *testing.T) {
	assert.Equal(t, Level2, Level1.Demote())
	assert.Equal(t, Level3, Level2.Demote())
	assert.Equal(t, Level3, Level3.Demote())
	assert.Panics(t, func() { LevelUnassigned.Demote() })
}

func TestLevel_HigherThan(t *testing.T) {
	assert.True(t, Level1.HigherThan(Level2))
	assert.True(t, Level2.HigherThan(Level3))
	assert.False(t, Level2.HigherThan(Level2))
	assert.False(t, Level3.HigherThan(Level1))
	assert.False(t, LevelUnassigned.HigherThan(Level3))
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry(10)

	task, err := r.Lookup(10)
	assert.NoError(t, err)
	assert.Equal(t, TaskID(10), task.ID)
	assert.Equal(t, StateUnborn, task.State)

	for _, id := range []TaskID{0, 11, -3} {
		_, err := r.Lookup(id)
		assert.ErrorIs(t, err, ErrTaskIDOutOfRange, "id %d", id)
	}
}

func TestRegistry_Each_SkipsUnborn(t *testing.T) {
	r := NewRegistry(4)
	r.MustGet(2).reset(2)
	r.MustGet(4).reset(4)

	var ids []TaskID
	r.Each(func(t *Task) { ids = append(ids, t.ID) })

	assert.Equal(t, []TaskID{2, 4}, ids)
}
