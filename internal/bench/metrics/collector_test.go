package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/fieldbench/internal/trace"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveTrial(t *testing.T) {
	c := NewCollector()

	counts := map[trace.Kind]int{trace.KindRead: 10, trace.KindWrite: 4, trace.KindSnapshot: 1}
	c.ObserveTrial("A", 2, 15*time.Millisecond, counts)
	c.ObserveTrial("A", 2, 25*time.Millisecond, counts)
	c.ObserveTrial("B", 1, 5*time.Millisecond, map[trace.Kind]int{trace.KindSnapshot: 3})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.trials.WithLabelValues("A", "2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.trials.WithLabelValues("B", "1")))
	assert.Equal(t, 20.0, testutil.ToFloat64(c.operations.WithLabelValues("A", "read")))
	assert.Equal(t, 8.0, testutil.ToFloat64(c.operations.WithLabelValues("A", "write")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.operations.WithLabelValues("B", "string")))

	assert.Equal(t, 2, testutil.CollectAndCount(c.trialDuration))
}

func TestGatherer(t *testing.T) {
	c := NewCollector()
	c.ObserveTrial("A", 1, time.Millisecond, nil)

	families, err := c.Gatherer().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "fieldbench_trials_total")
	assert.Contains(t, names, "fieldbench_trial_duration_seconds")
}

func TestWriteTextfile(t *testing.T) {
	c := NewCollector()
	c.ObserveTrial("C ('string' Spam)", 3, 40*time.Millisecond, map[trace.Kind]int{trace.KindSnapshot: 9})

	path := filepath.Join(t.TempDir(), "fieldbench.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fieldbench_trials_total")
	assert.Contains(t, string(data), `op="string"`)
}
