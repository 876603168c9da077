// Package metrics records benchmark trials as prometheus series on a private
// registry. Nothing is served; the registry is gathered or dumped to a
// textfile after the run.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/fieldbench/internal/trace"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fieldbench"

type Collector struct {
	registry      *prometheus.Registry
	trials        *prometheus.CounterVec
	trialDuration *prometheus.HistogramVec
	operations    *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		trials: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "trials_total",
				Help:      "Number of completed trials",
			},
			[]string{"scenario", "threads"},
		),
		trialDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "trial_duration_seconds",
				Help:      "Wall-clock time of one trial",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16), // 1ms to ~33s
			},
			[]string{"scenario", "threads"},
		),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Store operations replayed, by kind",
			},
			[]string{"scenario", "op"},
		),
	}

	c.registry.MustRegister(c.trials, c.trialDuration, c.operations)
	return c
}

// ObserveTrial records one finished trial and the op mix its workers replayed.
func (c *Collector) ObserveTrial(scenario string, threads int, elapsed time.Duration, counts map[trace.Kind]int) {
	t := strconv.Itoa(threads)
	c.trials.WithLabelValues(scenario, t).Inc()
	c.trialDuration.WithLabelValues(scenario, t).Observe(elapsed.Seconds())
	for kind, n := range counts {
		c.operations.WithLabelValues(scenario, kind.String()).Add(float64(n))
	}
}

func (c *Collector) Gatherer() prometheus.Gatherer {
	return c.registry
}

// WriteTextfile dumps the registry in text exposition format, suitable for
// the node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
