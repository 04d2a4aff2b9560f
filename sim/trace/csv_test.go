package trace

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVRecorder_OutputLevel_SkipsDecisions(t *testing.T) {
	var buf bytes.Buffer
	cr, err := NewCSVRecorder(&buf, "")
	require.NoError(t, err)

	cr.Record(Record{Kind: KindRun, Tick: 4, TaskID: 2, Requested: 6, Used: 3, Level: 2})
	cr.Record(Record{Kind: KindDemote, Tick: 4, TaskID: 2, From: 1, Level: 2})
	cr.Record(Record{Kind: KindExit, Tick: 9, TaskID: 2, Wait: 1, Turnaround: 7})
	require.NoError(t, cr.Close())

	assert.Equal(t,
		"tick,kind,task_id,requested,used,level,from,quantum,by,wait,turnaround\n"+
			"4,RUN,2,6,3,2,0,0,0,0,0\n"+
			"9,EXIT,2,0,0,0,0,0,0,1,7\n",
		buf.String())
}

func TestCSVRecorder_DecisionsLevel_KeepsEverything(t *testing.T) {
	var buf bytes.Buffer
	cr, err := NewCSVRecorder(&buf, TraceLevelDecisions)
	require.NoError(t, err)

	cr.Record(Record{Kind: KindPreempt, Tick: 8, TaskID: 1, Level: 3, By: 2})
	require.NoError(t, cr.Close())

	assert.Contains(t, buf.String(), "8,PREEMPT,1,0,0,3,0,0,2,0,0\n")
}

func TestNewCSVRecorder_UnknownLevel_ReturnsError(t *testing.T) {
	_, err := NewCSVRecorder(&bytes.Buffer{}, "verbose")
	assert.Error(t, err)
}

func TestCreateCSVRecorder_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	cr, err := CreateCSVRecorder(path, TraceLevelOutput)
	require.NoError(t, err)
	cr.Record(Record{Kind: KindBoost, Tick: 25})
	require.NoError(t, cr.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "25,BOOST,0,0,0,0,0,0,0,0,0\n")
}
