package runner

var DefaultThreads = []int{1, 2, 3}

const (
	DefaultRuns       = 5
	DefaultFieldCount = 3
)

type Config struct {
	Runs       int
	Threads    []int
	FieldCount int
	// RecordOpLatency times every store operation into per-worker
	// histograms. It adds two clock reads per op.
	RecordOpLatency bool
}

func DefaultConfig() Config {
	return Config{
		Runs:       DefaultRuns,
		Threads:    append([]int(nil), DefaultThreads...),
		FieldCount: DefaultFieldCount,
	}
}

func (c Config) maxThreads() int {
	m := 0
	for _, t := range c.Threads {
		m = max(m, t)
	}
	return m
}
