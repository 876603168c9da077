package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/DjordjeVuckovic/fieldbench/internal/bench/export"
	"github.com/DjordjeVuckovic/fieldbench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/fieldbench/internal/bench/plan"
	"github.com/DjordjeVuckovic/fieldbench/internal/bench/report"
	"github.com/DjordjeVuckovic/fieldbench/internal/bench/runner"
	"github.com/DjordjeVuckovic/fieldbench/internal/generator"
	"github.com/DjordjeVuckovic/fieldbench/internal/trace"
	"github.com/DjordjeVuckovic/fieldbench/pkg/config/env"
)

func main() {
	if err := env.LoadDotEnv(".env"); err != nil {
		slog.Warn("Failed to load .env", "error", err)
	}

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		slog.Error("Invalid arguments", "error", err)
		os.Exit(1)
	}
	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	bp, err := cfg.loadPlan()
	if err != nil {
		slog.Error("Failed to load plan", "path", cfg.PlanPath, "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !cfg.SkipGenerate {
		fmt.Println("Generating test files...")
		generateTraces(bp)
	}

	fmt.Println("Loading commands from files...")
	scenarios := loadScenarios(bp)

	fmt.Printf("Running performance tests (%d runs for averaging)...\n", bp.Runs)

	collector := metrics.NewCollector()
	printer := report.NewTrialPrinter(os.Stdout)
	r := runner.New(runner.Config{
		Runs:            bp.Runs,
		Threads:         bp.Threads,
		FieldCount:      bp.FieldCount,
		RecordOpLatency: cfg.OpLatency,
	}, runner.WithMetrics(collector), runner.WithTrialHook(printer.Print))

	result, err := r.RunAll(ctx, scenarios)
	if err != nil {
		slog.Error("Benchmark failed", "error", err)
		os.Exit(1)
	}

	outputReport(cfg, result, collector)
}

// generateTraces writes MaxThreads trace files per scenario. A file that
// cannot be written is logged and skipped; loading it later yields an empty
// workload.
func generateTraces(bp *plan.BenchPlan) {
	seed := bp.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Debug("Generating traces", "dir", bp.TraceDir, "ops", bp.OpsPerTrace, "seed", seed)
	rng := rand.New(rand.NewSource(seed))

	for _, sc := range bp.Scenarios {
		chooser, err := generator.NewChooser(sc.Weights, rng)
		if err != nil {
			slog.Error("Invalid scenario weights", "scenario", sc.Name, "error", err)
			continue
		}
		for _, path := range sc.TracePaths(bp.TraceDir, bp.MaxThreads()) {
			if err := generator.GenerateFile(path, bp.OpsPerTrace, chooser); err != nil {
				slog.Error("Failed to generate trace", "path", path, "error", err)
			}
		}
	}
}

func loadScenarios(bp *plan.BenchPlan) []runner.Scenario {
	scenarios := make([]runner.Scenario, 0, len(bp.Scenarios))
	for _, sc := range bp.Scenarios {
		loaded := runner.Scenario{Name: sc.Name}
		for _, path := range sc.TracePaths(bp.TraceDir, bp.MaxThreads()) {
			w, err := trace.LoadFromFile(path)
			if err != nil {
				slog.Error("Failed to load trace", "path", path, "error", err)
			}
			loaded.Workloads = append(loaded.Workloads, w)
		}
		scenarios = append(scenarios, loaded)
	}
	return scenarios
}

func outputReport(cfg cliConfig, result *runner.BenchmarkResult, collector *metrics.Collector) {
	rpt := report.Generate(result)
	report.WriteTable(rpt, os.Stdout)
	report.WriteOpLatency(rpt, os.Stdout)

	if cfg.Output != "" {
		path, err := report.WriteJSON(rpt, cfg.Output)
		if err != nil {
			slog.Error("Failed to write JSON report", "error", err)
		} else {
			slog.Info("Report written", "path", path)
		}
	}

	if cfg.ParquetPath != "" {
		if err := export.WriteParquet(cfg.ParquetPath, result); err != nil {
			slog.Error("Failed to write parquet export", "error", err)
		} else {
			slog.Info("Parquet export written", "path", cfg.ParquetPath)
		}
	}

	if cfg.MetricsPath != "" {
		if err := collector.WriteTextfile(cfg.MetricsPath); err != nil {
			slog.Error("Failed to write metrics", "error", err)
		} else {
			slog.Info("Metrics written", "path", cfg.MetricsPath)
		}
	}
}
