package trace

import "fmt"

// TraceLevel controls which records an exporter keeps.
type TraceLevel string

const (
	// TraceLevelOutput keeps only records with a text trace line.
	TraceLevelOutput TraceLevel = "output"
	// TraceLevelDecisions keeps every record, including scheduler decisions.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelOutput:    true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to output
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// Keeps reports whether a record of kind k is kept at this level.
func (l TraceLevel) Keeps(k Kind) bool {
	if l == TraceLevelDecisions {
		return true
	}
	return k.IsOutput()
}

// Recorder receives every record the simulator emits, in emission order.
type Recorder interface {
	Record(rec Record)
}

// Discard drops every record.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(Record) {}

// multi fans a record out to several recorders.
type multi []Recorder

func (m multi) Record(rec Record) {
	for _, r := range m {
		r.Record(rec)
	}
}

// Multi returns a Recorder that forwards to each non-nil recorder in order.
func Multi(recorders ...Recorder) Recorder {
	var m multi
	for _, r := range recorders {
		if r != nil {
			m = append(m, r)
		}
	}
	switch len(m) {
	case 0:
		return Discard
	case 1:
		return m[0]
	default:
		return m
	}
}

// SimulationTrace collects records in memory.
type SimulationTrace struct {
	Records []Record
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace() *SimulationTrace {
	return &SimulationTrace{Records: make([]Record, 0)}
}

// Record appends a record.
func (st *SimulationTrace) Record(rec Record) {
	st.Records = append(st.Records, rec)
}

// OfKind returns the records of the given kinds, in order.
func (st *SimulationTrace) OfKind(kinds ...Kind) []Record {
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	var out []Record
	for _, rec := range st.Records {
		if want[rec.Kind] {
			out = append(out, rec)
		}
	}
	return out
}

// Lines renders the output records as text trace lines.
func (st *SimulationTrace) Lines() []string {
	var lines []string
	for _, rec := range st.Records {
		if line, ok := FormatLine(rec); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// FormatLine renders an output record in the fixed trace format.
// Returns false for decision kinds.
func FormatLine(rec Record) (string, bool) {
	switch rec.Kind {
	case KindNew:
		return fmt.Sprintf("[%05d] id=%04d NEW", rec.Tick, rec.TaskID), true
	case KindExit:
		return fmt.Sprintf("[%05d] id=%04d EXIT wt=%d tat=%d", rec.Tick, rec.TaskID, rec.Wait, rec.Turnaround), true
	case KindRun:
		return fmt.Sprintf("[%05d] id=%04d req=%d used=%d queue=%d", rec.Tick, rec.TaskID, rec.Requested, rec.Used, rec.Level), true
	case KindIdle:
		return fmt.Sprintf("[%05d] IDLE", rec.Tick), true
	case KindBoost:
		return fmt.Sprintf("[%05d] BOOST", rec.Tick), true
	default:
		return "", false
	}
}
