package report

import (
	"time"

	"github.com/DjordjeVuckovic/fieldbench/internal/bench/runner"
	"github.com/DjordjeVuckovic/fieldbench/pkg/utils"
)

func Generate(br *runner.BenchmarkResult) *Report {
	r := &Report{
		Meta: BenchMeta{
			RunID:       br.RunID.String(),
			Timestamp:   br.StartedAt,
			Environment: NewEnvironmentInfo(),
		},
		Config: ReportConfig{
			Runs:       br.Config.Runs,
			Threads:    br.Config.Threads,
			FieldCount: br.Config.FieldCount,
		},
	}

	for _, tr := range br.Trials {
		r.Trials = append(r.Trials, TrialEntry{
			Run:       tr.Run,
			Scenario:  tr.Scenario,
			Threads:   tr.Threads,
			ElapsedMs: utils.RoundDecimal(tr.ElapsedMillis(), 3),
			Ops:       tr.Ops,
			Snapshot:  tr.Snapshot,
			OpLatency: tr.OpLatency,
		})
	}

	r.Averages = aggregate(br)

	return r
}

func aggregate(br *runner.BenchmarkResult) []ScenarioAverages {
	out := make([]ScenarioAverages, 0, len(br.Scenarios))
	for _, name := range br.Scenarios {
		sa := ScenarioAverages{Scenario: name}
		for _, threads := range br.Config.Threads {
			s := br.CellStats(name, threads)
			sa.Cells = append(sa.Cells, Cell{
				Threads:  threads,
				MeanMs:   millis(s.Mean),
				MedianMs: millis(s.Median),
				MinMs:    millis(s.Min),
				MaxMs:    millis(s.Max),
				StddevMs: millis(s.Stddev),
				Samples:  s.SampleCount,
			})
		}
		out = append(out, sa)
	}
	return out
}

func millis(d time.Duration) float64 {
	return utils.RoundDecimal(float64(d)/float64(time.Millisecond), 3)
}
