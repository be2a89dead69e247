package sim

// HistoryEntry is one raw desired-replica observation at simulated time T.
type HistoryEntry struct {
	T       float64
	Desired int
}

// DesiredHistory holds the append-only raw desired-replica observations a
// run has made, pruned opportunistically to bound memory. The window
// filter in Stabilize is the authority on which entries count; pruning is
// only an optimization and keeps slack beyond the largest window so no
// in-window entry is ever lost to it.
type DesiredHistory struct {
	entries []HistoryEntry
}

// Append records a raw desired value observed at time t.
func (h *DesiredHistory) Append(t float64, desired int) {
	h.entries = append(h.entries, HistoryEntry{T: t, Desired: desired})
}

// Prune discards entries strictly older than cutoff.
func (h *DesiredHistory) Prune(cutoff float64) {
	keep := 0
	for keep < len(h.entries) && h.entries[keep].T < cutoff {
		keep++
	}
	if keep > 0 {
		h.entries = append(h.entries[:0], h.entries[keep:]...)
	}
}

// Len returns the number of retained entries.
func (h *DesiredHistory) Len() int { return len(h.entries) }

// Reset discards all history.
func (h *DesiredHistory) Reset() { h.entries = nil }

// Stabilize folds the window of recent raw desired values into the value
// the loop may act on. Scaling down takes the rolling maximum (do not
// shrink until the metric has stayed low for the whole window); scaling
// up takes the rolling minimum. A hold direction, a non-positive window,
// or an empty history passes rawDesired through unchanged. Entries with
// T >= now-windowSeconds participate, inclusive, plus the current raw
// value.
func Stabilize(dir Direction, rawDesired int, h *DesiredHistory, windowSeconds int, now float64) int {
	if windowSeconds <= 0 || dir == DirectionHold {
		return rawDesired
	}
	horizon := now - float64(windowSeconds)
	result := rawDesired
	for _, e := range h.entries {
		if e.T < horizon {
			continue
		}
		if dir == DirectionDown && e.Desired > result {
			result = e.Desired
		}
		if dir == DirectionUp && e.Desired < result {
			result = e.Desired
		}
	}
	return result
}
