// Package sim provides the tick-driven simulation engine for a three-level
// Multi-Level Feedback Queue (MLFQ) CPU scheduler.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - task.go, level.go: Task record, lifecycle state and the Level enumeration
//   - instruction.go: the scripted input records and the InstructionSource interface
//   - simulator.go: the Simulator context and the per-tick pipeline
//
// # Per-tick pipeline
//
// Every tick runs the same five phases, in this order:
//   - dispatch.go: apply the instructions scheduled for the tick (NEW, burst, EXIT)
//   - boost.go: periodic priority boost of every ready task to level 1
//   - scheduler.go: pick or replace the running task by strict level priority
//   - wait.go: charge one tick of waiting time to every queued task
//   - execute.go: run the current task for one tick, demote or complete it
//
// # State ownership
//
// The Registry owns every Task. LevelQueues and the running slot hold TaskIDs
// only, and a task is referenced by at most one of them at any time.
// CheckInvariants verifies this after every tick when SimConfig.CheckInvariants
// is set.
//
// # Output
//
// The kernel never writes output directly. Every observable action is emitted
// as a trace.Record to the configured trace.Recorder; see sim/trace/ for the
// text, CSV and in-memory recorders and sim/observe/ for Prometheus metrics.
package sim
