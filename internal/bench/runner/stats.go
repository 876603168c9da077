package runner

import (
	"math"
	"sort"
	"time"
)

// DurationStats summarizes the elapsed times of repeated trials.
type DurationStats struct {
	Min         time.Duration `json:"min"`
	Max         time.Duration `json:"max"`
	Mean        time.Duration `json:"mean"`
	Median      time.Duration `json:"median"`
	Stddev      time.Duration `json:"stddev"`
	SampleCount int           `json:"sample_count"`
}

func Summarize(durations []time.Duration) DurationStats {
	if len(durations) == 0 {
		return DurationStats{}
	}

	sorted := make([]time.Duration, len(durations))
	copy(sorted, durations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	stats := DurationStats{
		Min:         sorted[0],
		Max:         sorted[len(sorted)-1],
		Median:      percentile(sorted, 50),
		SampleCount: len(durations),
	}

	var sum int64
	for _, d := range sorted {
		sum += int64(d)
	}
	stats.Mean = time.Duration(sum / int64(len(sorted)))

	if len(sorted) > 1 {
		var sumSquares float64
		meanNs := float64(stats.Mean.Nanoseconds())
		for _, d := range sorted {
			diff := float64(d.Nanoseconds()) - meanNs
			sumSquares += diff * diff
		}
		variance := sumSquares / float64(len(sorted)-1)
		stats.Stddev = time.Duration(math.Sqrt(variance))
	}

	return stats
}

// percentile interpolates linearly between the two closest ranks.
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := float64(p) / 100.0 * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return time.Duration(float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight)
}
