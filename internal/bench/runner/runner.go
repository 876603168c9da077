package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/fieldbench/internal/bench/metrics"
	"github.com/DjordjeVuckovic/fieldbench/internal/fieldstore"
	"github.com/DjordjeVuckovic/fieldbench/internal/trace"
	"github.com/google/uuid"
)

// Scenario is a loaded weight profile: one workload per potential worker.
type Scenario struct {
	Name      string
	Workloads []trace.Workload
}

type Option func(*Runner)

func WithMetrics(c *metrics.Collector) Option {
	return func(r *Runner) { r.metrics = c }
}

// WithTrialHook registers fn to be called after every trial RunAll completes.
func WithTrialHook(fn func(TrialResult)) Option {
	return func(r *Runner) { r.onTrial = fn }
}

type Runner struct {
	config  Config
	metrics *metrics.Collector
	onTrial func(TrialResult)
}

func New(cfg Config, opts ...Option) *Runner {
	r := &Runner{config: cfg}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunAll runs every scenario at every configured worker count, Runs times.
// The loop order is run, then scenario, then worker count. Cancellation is
// checked between trials, and workers of a trial in flight stop within
// cancelCheckEvery ops.
func (r *Runner) RunAll(ctx context.Context, scenarios []Scenario) (*BenchmarkResult, error) {
	need := r.config.maxThreads()
	for _, sc := range scenarios {
		if len(sc.Workloads) < need {
			return nil, fmt.Errorf("scenario %q has %d workloads, need %d", sc.Name, len(sc.Workloads), need)
		}
	}

	br := &BenchmarkResult{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
		Config:    r.config,
	}
	for _, sc := range scenarios {
		br.Scenarios = append(br.Scenarios, sc.Name)
	}

	for run := 1; run <= r.config.Runs; run++ {
		for _, sc := range scenarios {
			for _, threads := range r.config.Threads {
				if err := ctx.Err(); err != nil {
					return br, fmt.Errorf("benchmark interrupted: %w", err)
				}

				tr, err := r.RunTrial(ctx, sc, threads)
				if err != nil {
					return br, fmt.Errorf("run %d scenario %q: %w", run, sc.Name, err)
				}
				tr.Run = run
				br.Trials = append(br.Trials, tr)

				slog.Debug("Trial finished",
					"run", run,
					"scenario", sc.Name,
					"threads", threads,
					"elapsed", tr.Elapsed,
				)
				if r.onTrial != nil {
					r.onTrial(tr)
				}
			}
		}
	}

	return br, nil
}

// RunTrial replays the first threads workloads of sc concurrently against a
// fresh store, one worker per workload, and times the whole fan-out.
func (r *Runner) RunTrial(ctx context.Context, sc Scenario, threads int) (TrialResult, error) {
	if threads <= 0 {
		return TrialResult{}, fmt.Errorf("thread count must be positive, got %d", threads)
	}
	if threads > len(sc.Workloads) {
		return TrialResult{}, fmt.Errorf("need %d workloads, have %d", threads, len(sc.Workloads))
	}

	if err := ctx.Err(); err != nil {
		return TrialResult{}, fmt.Errorf("trial not started: %w", err)
	}

	store := fieldstore.New(r.config.FieldCount)
	workloads := sc.Workloads[:threads]

	elapsed, hists, err := runWorkers(ctx, store, workloads, r.config.RecordOpLatency)
	if err != nil {
		return TrialResult{}, err
	}

	tr := TrialResult{
		Scenario: sc.Name,
		Threads:  threads,
		Elapsed:  elapsed,
		Snapshot: store.Snapshot(),
	}
	for _, w := range workloads {
		tr.Ops += len(w)
	}
	if r.config.RecordOpLatency {
		tr.OpLatency = summarizeOps(hists)
	}

	if r.metrics != nil {
		r.metrics.ObserveTrial(sc.Name, threads, elapsed, mixOf(workloads))
	}
	return tr, nil
}

func mixOf(workloads []trace.Workload) map[trace.Kind]int {
	total := make(map[trace.Kind]int, 3)
	for _, w := range workloads {
		for k, n := range w.Counts() {
			total[k] += n
		}
	}
	return total
}
