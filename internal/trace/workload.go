package trace

// Target is what a workload is replayed against.
type Target interface {
	Get(index int) int
	Set(index, value int)
	String() string
}

// Workload is the ordered op list owned by a single worker.
type Workload []Op

// Apply performs op on t. Results of reads and snapshots are discarded.
func Apply(t Target, op Op) {
	switch op.Kind {
	case KindRead:
		_ = t.Get(op.Index)
	case KindWrite:
		t.Set(op.Index, op.Value)
	case KindSnapshot:
		_ = t.String()
	}
}

// Replay applies every op in order and returns how many were applied.
func (w Workload) Replay(t Target) int {
	for _, op := range w {
		Apply(t, op)
	}
	return len(w)
}

func (w Workload) Counts() map[Kind]int {
	counts := make(map[Kind]int, 3)
	for _, op := range w {
		counts[op.Kind]++
	}
	return counts
}
