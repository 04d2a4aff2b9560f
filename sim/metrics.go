// Tracks simulation-wide and per-task scheduling metrics such as
// utilization, waiting time and turnaround time.

package sim

import (
	"fmt"
	"io"
)

// ExitStat is the accounting reported when a task exits.
type ExitStat struct {
	TaskID     TaskID
	Tick       int64
	Bursts     int
	Wait       int64
	Execution  int64
	Turnaround int64
}

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	Ticks     int64 // ticks simulated
	BusyTicks int64 // ticks a task ran
	IdleTicks int64 // ticks the CPU was idle
	WaitTicks int64 // sum over ticks of queued tasks

	Dispatches      [NumLevels]int // by queue level dispatched from
	Preemptions     int
	Demotions       int
	Boosts          int
	Relocations     int // tasks moved to level 1 by boosts
	CompletedBursts int
	Created         int

	Exits        []ExitStat // in exit order
	SimEndedTick int64
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{Exits: make([]ExitStat, 0)}
}

func (m *Metrics) recordExit(t *Task, tick int64) {
	m.Exits = append(m.Exits, ExitStat{
		TaskID:     t.ID,
		Tick:       tick,
		Bursts:     t.Bursts,
		Wait:       t.TotalWaitTime,
		Execution:  t.TotalExecutionTime,
		Turnaround: t.Turnaround(),
	})
}

// Utilization returns the fraction of ticks a task was running.
func (m *Metrics) Utilization() float64 {
	if m.Ticks == 0 {
		return 0
	}
	return float64(m.BusyTicks) / float64(m.Ticks)
}

// MeanWait returns the average wait time over exited tasks.
func (m *Metrics) MeanWait() float64 {
	if len(m.Exits) == 0 {
		return 0
	}
	var sum int64
	for _, e := range m.Exits {
		sum += e.Wait
	}
	return float64(sum) / float64(len(m.Exits))
}

// MeanTurnaround returns the average turnaround time over exited tasks.
func (m *Metrics) MeanTurnaround() float64 {
	if len(m.Exits) == 0 {
		return 0
	}
	var sum int64
	for _, e := range m.Exits {
		sum += e.Turnaround
	}
	return float64(sum) / float64(len(m.Exits))
}

// Print writes the per-task report and run totals to w.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Ticks Simulated      : %d (ended at tick %d)\n", m.Ticks, m.SimEndedTick)
	fmt.Fprintf(w, "CPU Utilization      : %.2f%%\n", m.Utilization()*100)
	fmt.Fprintf(w, "Dispatches L1/L2/L3  : %d/%d/%d\n", m.Dispatches[0], m.Dispatches[1], m.Dispatches[2])
	fmt.Fprintf(w, "Preemptions          : %d\n", m.Preemptions)
	fmt.Fprintf(w, "Demotions            : %d\n", m.Demotions)
	fmt.Fprintf(w, "Boosts               : %d\n", m.Boosts)
	if len(m.Exits) > 0 {
		fmt.Fprintln(w, "  id  bursts    wait    exec     tat")
		for _, e := range m.Exits {
			fmt.Fprintf(w, "%4d %7d %7d %7d %7d\n", e.TaskID, e.Bursts, e.Wait, e.Execution, e.Turnaround)
		}
		fmt.Fprintf(w, "Average Wait         : %.2f ticks\n", m.MeanWait())
		fmt.Fprintf(w, "Average Turnaround   : %.2f ticks\n", m.MeanTurnaround())
	}
}
