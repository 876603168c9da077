package runner

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	minOpLatencyNs   = 1
	maxOpLatencyNs   = int64(time.Second)
	opLatencySigFigs = 3
)

// OpLatency is the per-operation latency distribution of one trial, merged
// across its workers.
type OpLatency struct {
	Count int64         `json:"count"`
	Mean  time.Duration `json:"mean"`
	P50   time.Duration `json:"p50"`
	P90   time.Duration `json:"p90"`
	P99   time.Duration `json:"p99"`
	Max   time.Duration `json:"max"`
}

func newOpHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(minOpLatencyNs, maxOpLatencyNs, opLatencySigFigs)
}

// recordOp clamps d into the trackable range so outliers are kept rather
// than rejected.
func recordOp(h *hdrhistogram.Histogram, d time.Duration) {
	v := int64(d)
	if v < minOpLatencyNs {
		v = minOpLatencyNs
	}
	if v > maxOpLatencyNs {
		v = maxOpLatencyNs
	}
	_ = h.RecordValue(v)
}

func summarizeOps(hists []*hdrhistogram.Histogram) *OpLatency {
	merged := newOpHistogram()
	for _, h := range hists {
		if h != nil {
			merged.Merge(h)
		}
	}
	if merged.TotalCount() == 0 {
		return &OpLatency{}
	}
	return &OpLatency{
		Count: merged.TotalCount(),
		Mean:  time.Duration(merged.Mean()),
		P50:   time.Duration(merged.ValueAtQuantile(50)),
		P90:   time.Duration(merged.ValueAtQuantile(90)),
		P99:   time.Duration(merged.ValueAtQuantile(99)),
		Max:   time.Duration(merged.Max()),
	}
}
