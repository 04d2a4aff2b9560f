package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CSV column headers for the record log.
var csvColumns = []string{
	"tick", "kind", "task_id", "requested", "used", "level", "from", "quantum", "by", "wait", "turnaround",
}

// CSVRecorder writes records kept by its TraceLevel as CSV rows.
type CSVRecorder struct {
	level  TraceLevel
	writer *csv.Writer
	closer io.Closer
	err    error
}

// NewCSVRecorder writes a header row to w and returns a recorder over it.
func NewCSVRecorder(w io.Writer, level TraceLevel) (*CSVRecorder, error) {
	if !IsValidTraceLevel(string(level)) {
		return nil, fmt.Errorf("unknown trace level %q", level)
	}
	if level == "" {
		level = TraceLevelOutput
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	return &CSVRecorder{level: level, writer: writer}, nil
}

// CreateCSVRecorder creates (or truncates) path and returns a recorder writing to it.
// Close must be called to flush and release the file.
func CreateCSVRecorder(path string, level TraceLevel) (*CSVRecorder, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace CSV: %w", err)
	}
	rec, err := NewCSVRecorder(file, level)
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	rec.closer = file
	return rec, nil
}

// Record appends one row if the record's kind is kept.
func (cr *CSVRecorder) Record(rec Record) {
	if cr.err != nil || !cr.level.Keeps(rec.Kind) {
		return
	}
	row := []string{
		strconv.FormatInt(rec.Tick, 10),
		string(rec.Kind),
		strconv.Itoa(rec.TaskID),
		strconv.Itoa(rec.Requested),
		strconv.Itoa(rec.Used),
		strconv.Itoa(rec.Level),
		strconv.Itoa(rec.From),
		strconv.Itoa(rec.Quantum),
		strconv.Itoa(rec.By),
		strconv.FormatInt(rec.Wait, 10),
		strconv.FormatInt(rec.Turnaround, 10),
	}
	if err := cr.writer.Write(row); err != nil {
		cr.err = fmt.Errorf("writing CSV row at tick %d: %w", rec.Tick, err)
	}
}

// Close flushes buffered rows and closes the underlying file, if any.
func (cr *CSVRecorder) Close() error {
	cr.writer.Flush()
	if cr.err == nil {
		cr.err = cr.writer.Error()
	}
	if cr.closer != nil {
		if err := cr.closer.Close(); err != nil && cr.err == nil {
			cr.err = err
		}
		cr.closer = nil
	}
	return cr.err
}
