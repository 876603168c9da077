package plan

import (
	"fmt"
	"math"
	"os"

	"github.com/DjordjeVuckovic/fieldbench/internal/apperr"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*BenchPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*BenchPlan, error) {
	var p BenchPlan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan YAML: %w", err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks p and fills zero values with defaults.
func Validate(p *BenchPlan) error {
	if len(p.Scenarios) == 0 {
		return apperr.NewValidation("plan has no scenarios")
	}

	names := make(map[string]bool, len(p.Scenarios))
	prefixes := make(map[string]bool, len(p.Scenarios))
	for i, s := range p.Scenarios {
		if s.Name == "" {
			return apperr.NewValidation(fmt.Sprintf("scenario at index %d has no name", i))
		}
		if names[s.Name] {
			return apperr.NewValidation(fmt.Sprintf("duplicate scenario name %q", s.Name))
		}
		names[s.Name] = true

		if s.Prefix == "" {
			return apperr.NewValidation(fmt.Sprintf("scenario %q has no prefix", s.Name))
		}
		if prefixes[s.Prefix] {
			return apperr.NewValidation(fmt.Sprintf("scenario %q reuses prefix %q", s.Name, s.Prefix))
		}
		prefixes[s.Prefix] = true

		if err := validateWeights(s); err != nil {
			return err
		}
	}

	seenThreads := make(map[int]bool, len(p.Threads))
	for _, t := range p.Threads {
		if t <= 0 {
			return apperr.NewValidation(fmt.Sprintf("thread count must be positive, got %d", t))
		}
		if seenThreads[t] {
			return apperr.NewValidation(fmt.Sprintf("duplicate thread count %d", t))
		}
		seenThreads[t] = true
	}
	if p.OpsPerTrace < 0 {
		return apperr.NewValidation(fmt.Sprintf("ops_per_trace must not be negative, got %d", p.OpsPerTrace))
	}

	if len(p.Threads) == 0 {
		p.Threads = append([]int(nil), DefaultThreads...)
	}
	if p.OpsPerTrace == 0 {
		p.OpsPerTrace = DefaultOpsPerTrace
	}
	if p.Runs <= 0 {
		p.Runs = DefaultRuns
	}
	if p.FieldCount <= 0 {
		p.FieldCount = DefaultFieldCount
	}
	if p.TraceDir == "" {
		p.TraceDir = DefaultTraceDir
	}
	return nil
}

func validateWeights(s Scenario) error {
	if len(s.Weights) == 0 {
		return apperr.NewValidation(fmt.Sprintf("scenario %q has no weights", s.Name))
	}
	var sum float64
	for label, w := range s.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return apperr.NewValidation(fmt.Sprintf("scenario %q has invalid weight %v for %q", s.Name, w, label))
		}
		sum += w
	}
	if sum <= 0 {
		return apperr.NewValidation(fmt.Sprintf("scenario %q weights sum to zero", s.Name))
	}
	return nil
}
