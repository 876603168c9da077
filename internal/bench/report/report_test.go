package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/fieldbench/internal/bench/runner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *runner.BenchmarkResult {
	br := &runner.BenchmarkResult{
		RunID:     uuid.MustParse("6f1c2d3e-4a5b-4c6d-8e7f-0123456789ab"),
		StartedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Config:    runner.Config{Runs: 2, Threads: []int{1, 2}, FieldCount: 3},
		Scenarios: []string{"A (Variant 9)", "B (Equal Freq)"},
	}
	ms := func(f float64) time.Duration { return time.Duration(f * float64(time.Millisecond)) }
	add := func(run int, sc string, threads int, elapsed time.Duration) {
		br.Trials = append(br.Trials, runner.TrialResult{
			Run: run, Scenario: sc, Threads: threads, Elapsed: elapsed, Ops: 100 * threads,
			Snapshot: "Fields: [1, 1, 1]",
		})
	}
	add(1, "A (Variant 9)", 1, ms(10))
	add(1, "A (Variant 9)", 2, ms(20))
	add(1, "B (Equal Freq)", 1, ms(30))
	add(1, "B (Equal Freq)", 2, ms(40))
	add(2, "A (Variant 9)", 1, ms(12))
	add(2, "A (Variant 9)", 2, ms(22))
	add(2, "B (Equal Freq)", 1, ms(34))
	add(2, "B (Equal Freq)", 2, ms(44.5))
	return br
}

func TestGenerate(t *testing.T) {
	r := Generate(sampleResult())

	assert.Equal(t, "6f1c2d3e-4a5b-4c6d-8e7f-0123456789ab", r.Meta.RunID)
	assert.NotEmpty(t, r.Meta.Environment.GoVersion)
	assert.Equal(t, []int{1, 2}, r.Config.Threads)
	assert.Len(t, r.Trials, 8)

	require.Len(t, r.Averages, 2)
	a := r.Averages[0]
	assert.Equal(t, "A (Variant 9)", a.Scenario)
	require.Len(t, a.Cells, 2)
	assert.Equal(t, 1, a.Cells[0].Threads)
	assert.InDelta(t, 11.0, a.Cells[0].MeanMs, 1e-9)
	assert.InDelta(t, 11.0, a.Cells[0].MedianMs, 1e-9)
	assert.InDelta(t, 10.0, a.Cells[0].MinMs, 1e-9)
	assert.InDelta(t, 12.0, a.Cells[0].MaxMs, 1e-9)
	assert.Equal(t, 2, a.Cells[0].Samples)

	b := r.Averages[1]
	assert.InDelta(t, 42.25, b.Cells[1].MeanMs, 1e-9)
	assert.InDelta(t, 42.25, b.Cells[1].MedianMs, 1e-9)
}

func TestTrialPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewTrialPrinter(&buf)
	for _, tr := range sampleResult().Trials[:5] {
		p.Print(tr)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "--- Run 1 ---", lines[0])
	assert.Equal(t, "  A (Variant 9)      | Threads: 1 | Time:    10.00 ms", lines[1])
	assert.Equal(t, "  B (Equal Freq)     | Threads: 2 | Time:    40.00 ms", lines[4])
	assert.Equal(t, "--- Run 2 ---", lines[5])
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(Generate(sampleResult()), &buf)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, rule+"\n"))
	assert.True(t, strings.HasSuffix(out, rule+"\n"))
	assert.Contains(t, out, "Scenario / Threads")
	assert.Contains(t, out, "1 Thread")
	assert.Contains(t, out, "2 Threads")
	assert.NotContains(t, out, "3 Threads")

	var rowA string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "A (Variant 9)") {
			rowA = l
		}
	}
	require.NotEmpty(t, rowA)
	assert.Equal(t, []string{"A", "(Variant", "9)", "11.00", "21.00"}, strings.Fields(rowA))
}

func TestWriteOpLatency(t *testing.T) {
	t.Run("silent without histograms", func(t *testing.T) {
		var buf bytes.Buffer
		WriteOpLatency(Generate(sampleResult()), &buf)
		assert.Empty(t, buf.String())
	})

	t.Run("prints recorded trials", func(t *testing.T) {
		br := sampleResult()
		br.Trials[0].OpLatency = &runner.OpLatency{Count: 100, P50: 80, P90: 120, P99: 400, Max: 900}

		var buf bytes.Buffer
		WriteOpLatency(Generate(br), &buf)
		assert.Contains(t, buf.String(), "Per-op latency")
		assert.Contains(t, buf.String(), "400ns")
	})
}

func TestWriteJSON(t *testing.T) {
	r := Generate(sampleResult())
	dir := t.TempDir()

	path, err := WriteJSON(r, filepath.Join(dir, "out", "bench-%Y%m%d-%H%M%S.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "bench-20260314-092653.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.Meta.RunID, decoded.Meta.RunID)
	assert.Len(t, decoded.Trials, 8)
	assert.Equal(t, "A (Variant 9)", decoded.Averages[0].Scenario)
	assert.InDelta(t, 21.0, decoded.Averages[0].Cells[1].MedianMs, 1e-9)
}

func TestExpandPath(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "report.json", ExpandPath("report.json", ts))
	assert.Equal(t, "runs/2026-01-02.json", ExpandPath("runs/%Y-%m-%d.json", ts))
	assert.Equal(t, "100%.json", ExpandPath("100%%.json", ts))
}
