// Package workload reads instruction scripts for the MLFQ simulator.
//
// A script has one instruction per line, "event_tick,task_id,burst_time",
// sorted ascending by event_tick. The reader checks syntax only; scheduling
// rules are enforced by the simulator.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/inference-sim/mlfq-sim/sim"
)

// scriptFields is the number of fields in an instruction line.
const scriptFields = 3

// ParseError describes a malformed script line.
type ParseError struct {
	Line int    // 1-based line number
	Msg  string // what was wrong
	Err  error  // underlying error, may be nil
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader streams instructions from a script. It implements sim.InstructionSource.
type Reader struct {
	csv    *csv.Reader
	closer io.Closer
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // field count is checked per line for a clearer error
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return &Reader{csv: cr}
}

// Open opens the script at path. Close releases the file.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	r := NewReader(file)
	r.closer = file
	return r, nil
}

// Close closes the underlying file, if the Reader opened one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// Next returns the next instruction, or io.EOF at the end of the script.
func (r *Reader) Next() (sim.Instruction, error) {
	row, err := r.csv.Read()
	if err == io.EOF {
		return sim.Instruction{}, io.EOF
	}
	if err != nil {
		line := 0
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			line = pe.Line
		}
		return sim.Instruction{}, &ParseError{Line: line, Msg: "unreadable line", Err: err}
	}
	line, _ := r.csv.FieldPos(0)
	return parseInstruction(row, line)
}

func parseInstruction(row []string, line int) (sim.Instruction, error) {
	if len(row) != scriptFields {
		return sim.Instruction{}, &ParseError{
			Line: line,
			Msg:  fmt.Sprintf("expected %d fields, got %d", scriptFields, len(row)),
		}
	}
	var vals [scriptFields]int64
	names := [scriptFields]string{"event_tick", "task_id", "burst_time"}
	for i, field := range row {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
		if err != nil {
			return sim.Instruction{}, &ParseError{Line: line, Msg: "bad " + names[i], Err: err}
		}
		vals[i] = v
	}
	if vals[0] < 0 {
		return sim.Instruction{}, &ParseError{Line: line, Msg: fmt.Sprintf("negative event_tick %d", vals[0])}
	}
	if vals[1] < 0 {
		return sim.Instruction{}, &ParseError{Line: line, Msg: fmt.Sprintf("negative task_id %d", vals[1])}
	}
	return sim.Instruction{
		Tick:   vals[0],
		TaskID: sim.TaskID(vals[1]),
		Burst:  int(vals[2]),
	}, nil
}

// ReadAll parses every instruction from r.
func ReadAll(r io.Reader) ([]sim.Instruction, error) {
	reader := NewReader(r)
	var out []sim.Instruction
	for {
		in, err := reader.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
}

// Write renders instructions in script format.
func Write(w io.Writer, instructions []sim.Instruction) error {
	for _, in := range instructions {
		if _, err := fmt.Fprintln(w, in.String()); err != nil {
			return fmt.Errorf("writing instruction %s: %w", in, err)
		}
	}
	return nil
}
