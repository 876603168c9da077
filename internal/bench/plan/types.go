package plan

import (
	"fmt"
	"path/filepath"
)

type BenchPlan struct {
	OpsPerTrace int        `yaml:"ops_per_trace"`
	Runs        int        `yaml:"runs"`
	Threads     []int      `yaml:"threads"`
	FieldCount  int        `yaml:"field_count"`
	TraceDir    string     `yaml:"trace_dir"`
	Seed        int64      `yaml:"seed"`
	Scenarios   []Scenario `yaml:"scenarios"`
}

// Scenario is a named weight profile. Its traces are written as
// <prefix>_<k>.txt, one per worker.
type Scenario struct {
	Name    string             `yaml:"name"`
	Prefix  string             `yaml:"prefix"`
	Weights map[string]float64 `yaml:"weights"`
}

func (s Scenario) TracePath(dir string, k int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%d.txt", s.Prefix, k))
}

// TracePaths returns the paths for workers 1..n.
func (s Scenario) TracePaths(dir string, n int) []string {
	paths := make([]string, 0, n)
	for k := 1; k <= n; k++ {
		paths = append(paths, s.TracePath(dir, k))
	}
	return paths
}

// MaxThreads is the largest worker count, and so the number of traces each
// scenario needs.
func (p *BenchPlan) MaxThreads() int {
	m := 0
	for _, t := range p.Threads {
		m = max(m, t)
	}
	return m
}
