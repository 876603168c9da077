package plan

const (
	DefaultOpsPerTrace = 200000
	DefaultRuns        = 5
	DefaultFieldCount  = 3
	DefaultTraceDir    = "traces"
)

var DefaultThreads = []int{1, 2, 3}

// Default returns the stock three-scenario plan.
func Default() *BenchPlan {
	const equal = 1.0 / 7.0
	return &BenchPlan{
		OpsPerTrace: DefaultOpsPerTrace,
		Runs:        DefaultRuns,
		Threads:     append([]int(nil), DefaultThreads...),
		FieldCount:  DefaultFieldCount,
		TraceDir:    DefaultTraceDir,
		Scenarios: []Scenario{
			{
				Name:   "A (Variant 9)",
				Prefix: "a",
				Weights: map[string]float64{
					"read 0": 0.10, "write 0": 0.10,
					"read 1": 0.10, "write 1": 0.10,
					"read 2": 0.40, "write 2": 0.05,
					"string": 0.15,
				},
			},
			{
				Name:   "B (Equal Freq)",
				Prefix: "b",
				Weights: map[string]float64{
					"read 0": equal, "write 0": equal,
					"read 1": equal, "write 1": equal,
					"read 2": equal, "write 2": equal,
					"string": equal,
				},
			},
			{
				Name:   "C ('string' Spam)",
				Prefix: "c",
				Weights: map[string]float64{
					"read 0": 0.01, "write 0": 0.01,
					"read 1": 0.01, "write 1": 0.01,
					"read 2": 0.01, "write 2": 0.05,
					"string": 0.90,
				},
			},
		},
	}
}
