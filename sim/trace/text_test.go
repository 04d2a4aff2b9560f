package trace

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextRecorder_WritesOutputLinesOnly(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTextRecorder(&buf)

	tr.Record(Record{Kind: KindNew, Tick: 0, TaskID: 1})
	tr.Record(Record{Kind: KindDispatch, Tick: 1, TaskID: 1})
	tr.Record(Record{Kind: KindIdle, Tick: 2})

	assert.Empty(t, buf.String(), "lines are buffered until Flush")
	assert.NoError(t, tr.Flush())
	assert.Equal(t, "[00000] id=0001 NEW\n[00002] IDLE\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextRecorder_WriteError_ReportedByFlush(t *testing.T) {
	tr := NewTextRecorder(failingWriter{})
	// enough lines to overflow the bufio buffer
	for i := 0; i < 1000; i++ {
		tr.Record(Record{Kind: KindIdle, Tick: int64(i)})
	}

	err := tr.Flush()

	assert.EqualError(t, err, "disk full")
}
