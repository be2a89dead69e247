package trace

import (
	"github.com/montanaflynn/stats"
)

// RunSummary aggregates statistics from a RunTrace.
type RunSummary struct {
	Ticks           int
	Decisions       int
	Commits         int // decisions that changed the replica count
	ByDirection     map[string]int
	ReplicaMin      float64
	ReplicaMax      float64
	ReplicaMean     float64
	ReplicaFinal    int
	MetricMean      float64
	MetricP95       float64
	TotalScaledUp   int
	TotalScaledDown int
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *RunSummary {
	summary := &RunSummary{
		ByDirection: make(map[string]int),
	}
	if rt == nil {
		return summary
	}

	summary.Ticks = len(rt.Samples)
	summary.Decisions = len(rt.Decisions)

	for _, d := range rt.Decisions {
		summary.ByDirection[d.Direction]++
		switch {
		case d.AppliedChange > 0:
			summary.Commits++
			summary.TotalScaledUp += d.AppliedChange
		case d.AppliedChange < 0:
			summary.Commits++
			summary.TotalScaledDown -= d.AppliedChange
		}
	}

	if len(rt.Samples) == 0 {
		return summary
	}

	replicas := make([]float64, len(rt.Samples))
	metrics := make([]float64, len(rt.Samples))
	for i, s := range rt.Samples {
		replicas[i] = float64(s.Replicas)
		metrics[i] = s.Metric
	}
	summary.ReplicaFinal = rt.Samples[len(rt.Samples)-1].Replicas

	// stats errors only on empty input, which is excluded above.
	summary.ReplicaMin, _ = stats.Min(replicas)
	summary.ReplicaMax, _ = stats.Max(replicas)
	summary.ReplicaMean, _ = stats.Mean(replicas)
	summary.MetricMean, _ = stats.Mean(metrics)
	summary.MetricP95, _ = stats.Percentile(metrics, 95)

	return summary
}
