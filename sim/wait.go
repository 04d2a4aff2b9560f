package sim

// AccumulateWait charges one tick of waiting time to every queued task.
// It runs after Schedule, so the running task is never charged.
func (sim *Simulator) AccumulateWait() {
	for _, q := range sim.Queues {
		for _, id := range q.Items() {
			sim.Tasks.MustGet(id).TotalWaitTime++
			sim.Metrics.WaitTicks++
		}
	}
}
