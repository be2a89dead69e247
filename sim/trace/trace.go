package trace

// RunTrace collects timeline samples and scaling decisions during a run.
// Records are append-only and immutable once recorded; Reset discards
// everything atomically when the owning run is cleared.
type RunTrace struct {
	Samples   []Sample
	Decisions []Decision
}

// NewRunTrace creates a RunTrace ready for recording.
func NewRunTrace() *RunTrace {
	return &RunTrace{
		Samples:   make([]Sample, 0),
		Decisions: make([]Decision, 0),
	}
}

// RecordSample appends a per-tick timeline sample.
func (rt *RunTrace) RecordSample(s Sample) {
	rt.Samples = append(rt.Samples, s)
}

// RecordDecision appends a sync-boundary decision record.
func (rt *RunTrace) RecordDecision(d Decision) {
	rt.Decisions = append(rt.Decisions, d)
}

// LastDecision returns the most recent decision, or nil if none exists.
func (rt *RunTrace) LastDecision() *Decision {
	if len(rt.Decisions) == 0 {
		return nil
	}
	return &rt.Decisions[len(rt.Decisions)-1]
}

// Reset discards all recorded samples and decisions.
func (rt *RunTrace) Reset() {
	rt.Samples = rt.Samples[:0]
	rt.Decisions = rt.Decisions[:0]
}
