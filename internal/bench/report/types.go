package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/fieldbench/internal/bench/runner"
)

type Report struct {
	Meta     BenchMeta          `json:"meta"`
	Config   ReportConfig       `json:"config"`
	Averages []ScenarioAverages `json:"averages"`
	Trials   []TrialEntry       `json:"trials"`
}

type BenchMeta struct {
	RunID       string          `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion  string `json:"go_version"`
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	NumCPU     int    `json:"num_cpu"`
	GOMAXPROCS int    `json:"gomaxprocs"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}
}

type ReportConfig struct {
	Runs       int   `json:"runs"`
	Threads    []int `json:"threads"`
	FieldCount int   `json:"field_count"`
}

type TrialEntry struct {
	Run       int               `json:"run"`
	Scenario  string            `json:"scenario"`
	Threads   int               `json:"threads"`
	ElapsedMs float64           `json:"elapsed_ms"`
	Ops       int               `json:"ops"`
	Snapshot  string            `json:"snapshot"`
	OpLatency *runner.OpLatency `json:"op_latency,omitempty"`
}

type ScenarioAverages struct {
	Scenario string `json:"scenario"`
	Cells    []Cell `json:"cells"`
}

// Cell is one scenario at one worker count, averaged over runs.
type Cell struct {
	Threads  int     `json:"threads"`
	MeanMs   float64 `json:"mean_ms"`
	MedianMs float64 `json:"median_ms"`
	MinMs    float64 `json:"min_ms"`
	MaxMs    float64 `json:"max_ms"`
	StddevMs float64 `json:"stddev_ms"`
	Samples  int     `json:"samples"`
}
