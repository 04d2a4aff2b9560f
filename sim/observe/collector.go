// Package observe exports MLFQ simulation activity as Prometheus metrics.
//
// Collector is a trace.Recorder: attach it to the simulator next to the text
// recorder and it counts ticks, dispatches, preemptions, demotions and boosts,
// and observes per-task wait and turnaround at exit. Metrics live in the
// collector's own registry and are written in the text exposition format
// with WriteTextfile once the run ends.
package observe

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/inference-sim/mlfq-sim/sim/trace"
)

const namespace = "mlfq"

// Collector turns trace records into Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	ticks       *prometheus.CounterVec // state=busy|idle
	levelTicks  *prometheus.CounterVec // level the busy tick ran at
	dispatches  *prometheus.CounterVec // queue level dispatched from
	demotions   *prometheus.CounterVec // level demoted to
	preemptions prometheus.Counter
	boosts      prometheus.Counter
	relocations prometheus.Counter
	bursts      prometheus.Counter
	created     prometheus.Counter
	exited      prometheus.Counter

	wait       prometheus.Histogram
	turnaround prometheus.Histogram
	lastTick   prometheus.Gauge
}

// NewCollector creates a collector registered on a fresh registry.
func NewCollector() *Collector {
	tickBuckets := prometheus.ExponentialBuckets(1, 2, 12)
	c := &Collector{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulated ticks by CPU state",
		}, []string{"state"}),
		levelTicks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "level_ticks_total",
			Help:      "Busy ticks by the running task's level",
		}, []string{"level"}),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatches_total",
			Help:      "Tasks moved into the running slot, by source queue level",
		}, []string{"level"}),
		demotions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "demotions_total",
			Help:      "Quantum expirations mid-burst, by destination level",
		}, []string{"to"}),
		preemptions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preemptions_total",
			Help:      "Running tasks displaced by a higher-priority level",
		}),
		boosts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boosts_total",
			Help:      "Priority boosts performed",
		}),
		relocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "boost_relocations_total",
			Help:      "Tasks moved to level 1 by a boost",
		}),
		bursts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bursts_completed_total",
			Help:      "CPU bursts run to completion",
		}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_created_total",
			Help:      "Task creation instructions applied",
		}),
		exited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tasks_exited_total",
			Help:      "Task termination instructions applied",
		}),
		wait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "task_wait_ticks",
			Help:      "Total wait time of a task at exit",
			Buckets:   tickBuckets,
		}),
		turnaround: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "task_turnaround_ticks",
			Help:      "Turnaround time of a task at exit",
			Buckets:   tickBuckets,
		}),
		lastTick: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_tick",
			Help:      "Most recent simulated tick",
		}),
	}

	c.registry.MustRegister(
		c.ticks, c.levelTicks, c.dispatches, c.demotions,
		c.preemptions, c.boosts, c.relocations, c.bursts,
		c.created, c.exited, c.wait, c.turnaround, c.lastTick,
	)
	return c
}

// Registry exposes the collector's registry, e.g. for promhttp or testutil.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Record updates the metrics for one trace record.
func (c *Collector) Record(rec trace.Record) {
	c.lastTick.Set(float64(rec.Tick))
	switch rec.Kind {
	case trace.KindRun:
		c.ticks.WithLabelValues("busy").Inc()
		c.levelTicks.WithLabelValues(strconv.Itoa(rec.Level)).Inc()
	case trace.KindIdle:
		c.ticks.WithLabelValues("idle").Inc()
	case trace.KindDispatch:
		c.dispatches.WithLabelValues(strconv.Itoa(rec.From)).Inc()
	case trace.KindDemote:
		c.demotions.WithLabelValues(strconv.Itoa(rec.Level)).Inc()
	case trace.KindPreempt:
		c.preemptions.Inc()
	case trace.KindBoost:
		c.boosts.Inc()
	case trace.KindRelocate:
		c.relocations.Inc()
	case trace.KindComplete:
		c.bursts.Inc()
	case trace.KindNew:
		c.created.Inc()
	case trace.KindExit:
		c.exited.Inc()
		c.wait.Observe(float64(rec.Wait))
		c.turnaround.Observe(float64(rec.Turnaround))
	}
}

// WriteTextfile writes every metric to path in the Prometheus text format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("writing metrics file: %w", err)
	}
	return nil
}
