package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/fieldbench/internal/trace"
	"github.com/HdrHistogram/hdrhistogram-go"
	"golang.org/x/sync/errgroup"
)

// cancelCheckEvery is how many ops a worker replays between context checks.
// Must be a power of two.
const cancelCheckEvery = 1024

// runWorkers starts one goroutine per workload against the shared target and
// returns once all of them have finished. Workers share nothing but the
// target. When timeOps is set each worker fills its own histogram.
// A cancelled ctx stops every worker at its next check and the trial fails.
func runWorkers(ctx context.Context, target trace.Target, workloads []trace.Workload, timeOps bool) (time.Duration, []*hdrhistogram.Histogram, error) {
	hists := make([]*hdrhistogram.Histogram, len(workloads))
	if timeOps {
		for i := range hists {
			hists[i] = newOpHistogram()
		}
	}

	g, gCtx := errgroup.WithContext(ctx)

	start := time.Now()
	for i, w := range workloads {
		h := hists[i]
		g.Go(func() error {
			return replay(gCtx, target, w, h)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, fmt.Errorf("wait for workers: %w", err)
	}
	return time.Since(start), hists, nil
}

func replay(ctx context.Context, target trace.Target, w trace.Workload, h *hdrhistogram.Histogram) error {
	for i, op := range w {
		if i&(cancelCheckEvery-1) == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if h == nil {
			trace.Apply(target, op)
			continue
		}
		opStart := time.Now()
		trace.Apply(target, op)
		recordOp(h, time.Since(opStart))
	}
	return nil
}
