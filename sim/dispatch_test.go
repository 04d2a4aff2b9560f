package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/mlfq-sim/sim/trace"
)

func TestDispatchInstructions_FatalInstructions(t *testing.T) {
	tests := []struct {
		name string
		ins  []Instruction
		want error
	}{
		{"id zero", []Instruction{create(0, 0)}, ErrTaskIDOutOfRange},
		{"id above max", []Instruction{create(0, 11)}, ErrTaskIDOutOfRange},
		{"burst below exit marker", []Instruction{create(0, 1), burst(1, 1, -2)}, ErrInvalidBurst},
		{"burst for unborn task", []Instruction{burst(0, 3, 4)}, ErrUnknownTask},
		{"exit for unborn task", []Instruction{exit(0, 3)}, ErrUnknownTask},
		{"create while running", []Instruction{create(0, 1), burst(1, 1, 5), create(2, 1)}, ErrTaskActive},
		{"create while queued", []Instruction{create(0, 1), create(0, 2), burst(1, 1, 5), burst(1, 2, 5), create(1, 2)}, ErrTaskActive},
		{"burst while running", []Instruction{create(0, 1), burst(1, 1, 5), burst(2, 1, 3)}, ErrBurstWhileActive},
		{"exit while running", []Instruction{create(0, 1), burst(1, 1, 5), exit(3, 1)}, ErrTaskActive},
		{"burst after exit", []Instruction{create(0, 1), exit(1, 1), burst(2, 1, 3)}, ErrTaskRetired},
		{"exit twice", []Instruction{create(0, 1), exit(1, 1), exit(2, 1)}, ErrTaskRetired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestSimulator(t, DefaultSimConfig(), tc.ins...)
			err := s.Run()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDispatchInstructions_SameTick_AppliedInFileOrder(t *testing.T) {
	// GIVEN creation, burst and exit of task 2 interleaved with task 1 on tick 0
	_, st := runScript(t, DefaultSimConfig(),
		create(0, 2), create(0, 1), exit(0, 2), burst(0, 1, 1), exit(1, 1))

	assert.Equal(t, []string{
		"[00000] id=0002 NEW",
		"[00000] id=0001 NEW",
		"[00000] id=0002 EXIT wt=0 tat=0",
		"[00000] BOOST",
		"[00000] id=0001 req=1 used=1 queue=1",
		"[00001] id=0001 EXIT wt=0 tat=1",
		"[00001] IDLE",
	}, st.Lines())
}

func TestDispatchInstructions_RespawnAfterExit_ResetsAccounting(t *testing.T) {
	// GIVEN a task that exits and is created again under the same id
	s, st := runScript(t, DefaultSimConfig(),
		create(0, 1), burst(1, 1, 4), exit(10, 1),
		create(11, 1), burst(12, 1, 1), exit(13, 1))

	lines := st.Lines()
	assert.Contains(t, lines, "[00010] id=0001 EXIT wt=0 tat=4")
	assert.Contains(t, lines, "[00011] id=0001 NEW")
	// THEN the new incarnation starts at level 1 with fresh counters
	assert.Contains(t, lines, "[00012] id=0001 req=1 used=1 queue=1")
	assert.Contains(t, lines, "[00013] id=0001 EXIT wt=0 tat=1")
	assert.Equal(t, 2, s.Metrics.Created)
	require.Len(t, s.Metrics.Exits, 2)
	assert.Equal(t, 1, s.Metrics.Exits[1].Bursts)
}

func TestDispatchInstructions_RecreateIdleTask_Allowed(t *testing.T) {
	s, st := runScript(t, DefaultSimConfig(),
		create(0, 1), burst(1, 1, 3), create(6, 1), exit(7, 1))

	assert.Len(t, st.OfKind(trace.KindNew), 2)
	assert.Contains(t, st.Lines(), "[00007] id=0001 EXIT wt=0 tat=0")
	assert.Equal(t, 2, s.Metrics.Created)
}

func TestRequestBurst_UnassignedTask_StartsAtLevel1(t *testing.T) {
	s, _ := newTestSimulator(t, DefaultSimConfig())
	task := s.Tasks.MustGet(4)
	task.reset(4)

	require.NoError(t, s.requestBurst(task, 6))

	assert.Equal(t, Level1, task.Level)
	assert.Equal(t, StateQueued, task.State)
	assert.Equal(t, []TaskID{4}, s.Queue(Level1).Items())
}

func TestRequestBurst_DemotedTask_KeepsLevelButJoinsLevel1Queue(t *testing.T) {
	s, _ := newTestSimulator(t, DefaultSimConfig())
	task := s.Tasks.MustGet(4)
	task.reset(4)
	task.Level = Level3

	require.NoError(t, s.requestBurst(task, 6))

	assert.Equal(t, Level3, task.Level)
	assert.Equal(t, []TaskID{4}, s.Queue(Level1).Items())
	assert.True(t, s.Queue(Level3).Empty())
}
