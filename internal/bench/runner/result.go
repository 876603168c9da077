package runner

import (
	"time"

	"github.com/google/uuid"
)

type TrialResult struct {
	Run       int           `json:"run"`
	Scenario  string        `json:"scenario"`
	Threads   int           `json:"threads"`
	Elapsed   time.Duration `json:"elapsed"`
	Ops       int           `json:"ops"`
	Snapshot  string        `json:"snapshot"`
	OpLatency *OpLatency    `json:"op_latency,omitempty"`
}

func (t TrialResult) ElapsedMillis() float64 {
	return float64(t.Elapsed) / float64(time.Millisecond)
}

type BenchmarkResult struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Config    Config
	Scenarios []string // execution order
	Trials    []TrialResult
}

// Cell returns the trials of one scenario at one worker count, in run order.
func (br *BenchmarkResult) Cell(scenario string, threads int) []TrialResult {
	var out []TrialResult
	for _, t := range br.Trials {
		if t.Scenario == scenario && t.Threads == threads {
			out = append(out, t)
		}
	}
	return out
}

func (br *BenchmarkResult) CellStats(scenario string, threads int) DurationStats {
	cell := br.Cell(scenario, threads)
	durations := make([]time.Duration, 0, len(cell))
	for _, t := range cell {
		durations = append(durations, t.Elapsed)
	}
	return Summarize(durations)
}
