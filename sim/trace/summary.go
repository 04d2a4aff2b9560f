package trace

import (
	"fmt"
	"io"
)

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	Ticks          int // ticks that ran or idled
	BusyTicks      int
	IdleTicks      int
	Utilization    float64 // BusyTicks / Ticks
	Boosts         int
	Dispatches     int
	Preemptions    int
	Demotions      int
	Relocations    int
	CompletedBurst int
	Created        int
	Exited         int
	MeanWait       float64 // over exited tasks
	MeanTurnaround float64 // over exited tasks
	MaxTurnaround  int64
	TicksPerLevel  map[int]int // level -> busy ticks run at that level
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		TicksPerLevel: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	var totalWait, totalTurnaround int64
	for _, rec := range st.Records {
		switch rec.Kind {
		case KindRun:
			summary.BusyTicks++
			summary.TicksPerLevel[rec.Level]++
		case KindIdle:
			summary.IdleTicks++
		case KindBoost:
			summary.Boosts++
		case KindDispatch:
			summary.Dispatches++
		case KindPreempt:
			summary.Preemptions++
		case KindDemote:
			summary.Demotions++
		case KindRelocate:
			summary.Relocations++
		case KindComplete:
			summary.CompletedBurst++
		case KindNew:
			summary.Created++
		case KindExit:
			summary.Exited++
			totalWait += rec.Wait
			totalTurnaround += rec.Turnaround
			if rec.Turnaround > summary.MaxTurnaround {
				summary.MaxTurnaround = rec.Turnaround
			}
		}
	}

	summary.Ticks = summary.BusyTicks + summary.IdleTicks
	if summary.Ticks > 0 {
		summary.Utilization = float64(summary.BusyTicks) / float64(summary.Ticks)
	}
	if summary.Exited > 0 {
		summary.MeanWait = float64(totalWait) / float64(summary.Exited)
		summary.MeanTurnaround = float64(totalTurnaround) / float64(summary.Exited)
	}
	return summary
}

// Print writes a human-readable summary to w.
func (s *TraceSummary) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Summary ===")
	fmt.Fprintf(w, "Ticks              : %d (busy %d, idle %d)\n", s.Ticks, s.BusyTicks, s.IdleTicks)
	fmt.Fprintf(w, "CPU Utilization    : %.2f%%\n", s.Utilization*100)
	fmt.Fprintf(w, "Ticks per Level    : L1=%d L2=%d L3=%d\n", s.TicksPerLevel[1], s.TicksPerLevel[2], s.TicksPerLevel[3])
	fmt.Fprintf(w, "Dispatches         : %d\n", s.Dispatches)
	fmt.Fprintf(w, "Preemptions        : %d\n", s.Preemptions)
	fmt.Fprintf(w, "Demotions          : %d\n", s.Demotions)
	fmt.Fprintf(w, "Boosts             : %d (%d tasks relocated)\n", s.Boosts, s.Relocations)
	fmt.Fprintf(w, "Completed Bursts   : %d\n", s.CompletedBurst)
	fmt.Fprintf(w, "Tasks Created/Exit : %d/%d\n", s.Created, s.Exited)
	if s.Exited > 0 {
		fmt.Fprintf(w, "Average Wait       : %.2f ticks\n", s.MeanWait)
		fmt.Fprintf(w, "Average Turnaround : %.2f ticks\n", s.MeanTurnaround)
		fmt.Fprintf(w, "Max Turnaround     : %d ticks\n", s.MaxTurnaround)
	}
}
