package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/DjordjeVuckovic/fieldbench/internal/bench/plan"
	"github.com/DjordjeVuckovic/fieldbench/pkg/config/env"
	"github.com/DjordjeVuckovic/fieldbench/pkg/stringsutil"
)

// Zero values mean "keep what the plan says".
type cliConfig struct {
	PlanPath     string
	TraceDir     string
	Ops          int
	Runs         int
	Threads      string
	Seed         int64
	SkipGenerate bool
	OpLatency    bool
	Output       string
	ParquetPath  string
	MetricsPath  string
	Verbose      bool
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	ops, err := env.Int("FIELDBENCH_OPS", 0)
	if err != nil {
		return cfg, err
	}
	runs, err := env.Int("FIELDBENCH_RUNS", 0)
	if err != nil {
		return cfg, err
	}
	seed, err := env.Int64("FIELDBENCH_SEED", 0)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("fieldbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.PlanPath, "plan", "", "Path to bench plan YAML (default: built-in scenarios A, B, C)")
	fs.StringVar(&cfg.TraceDir, "traces", env.String("FIELDBENCH_TRACE_DIR", ""), "Directory for trace files")
	fs.IntVar(&cfg.Ops, "ops", ops, "Operations per generated trace file")
	fs.IntVar(&cfg.Runs, "runs", runs, "Number of measured runs to average")
	fs.StringVar(&cfg.Threads, "threads", "", "Worker counts, comma-separated (e.g. 1,2,3)")
	fs.Int64Var(&cfg.Seed, "seed", seed, "Seed for trace generation (0 = time based)")
	fs.BoolVar(&cfg.SkipGenerate, "skip-generate", false, "Reuse existing trace files instead of generating them")
	fs.BoolVar(&cfg.OpLatency, "op-latency", false, "Record per-operation latency histograms")
	fs.StringVar(&cfg.Output, "output", "", "Output path for JSON report, strftime verbs allowed")
	fs.StringVar(&cfg.ParquetPath, "parquet", "", "Output path for per-trial parquet rows")
	fs.StringVar(&cfg.MetricsPath, "metrics", "", "Output path for prometheus textfile metrics")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.Ops < 0 {
		return cfg, fmt.Errorf("ops must not be negative, got %d", cfg.Ops)
	}
	if cfg.Runs < 0 {
		return cfg, fmt.Errorf("runs must not be negative, got %d", cfg.Runs)
	}
	return cfg, nil
}

func (c cliConfig) parseThreads() ([]int, error) {
	parts := stringsutil.SplitList(c.Threads, ",")
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid thread count %q: %w", p, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("thread count must be positive, got %d", v)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func (c cliConfig) loadPlan() (*plan.BenchPlan, error) {
	bp := plan.Default()
	if c.PlanPath != "" {
		loaded, err := plan.LoadFromFile(c.PlanPath)
		if err != nil {
			return nil, err
		}
		bp = loaded
	}

	if c.TraceDir != "" {
		bp.TraceDir = c.TraceDir
	}
	if c.Ops > 0 {
		bp.OpsPerTrace = c.Ops
	}
	if c.Runs > 0 {
		bp.Runs = c.Runs
	}
	if c.Seed != 0 {
		bp.Seed = c.Seed
	}
	if c.Threads != "" {
		threads, err := c.parseThreads()
		if err != nil {
			return nil, err
		}
		if len(threads) > 0 {
			bp.Threads = threads
		}
	}

	if err := plan.Validate(bp); err != nil {
		return nil, fmt.Errorf("validate plan: %w", err)
	}
	return bp, nil
}
