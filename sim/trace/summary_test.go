package trace

import (
	"math"
	"testing"
)

func TestSummarize_NilTrace_ReturnsZeroValues(t *testing.T) {
	s := Summarize(nil)
	if s.Ticks != 0 || s.Decisions != 0 || s.Commits != 0 {
		t.Errorf("expected zero counts, got %+v", s)
	}
	if s.ByDirection == nil {
		t.Error("expected non-nil direction map")
	}
}

func TestSummarize_EmptyTrace(t *testing.T) {
	s := Summarize(NewRunTrace())
	if s.Ticks != 0 || s.ReplicaMean != 0 {
		t.Errorf("expected zero-value summary, got %+v", s)
	}
}

func TestSummarize_Aggregates(t *testing.T) {
	rt := NewRunTrace()
	rt.RecordSample(Sample{T: 1, Metric: 100, Replicas: 3})
	rt.RecordSample(Sample{T: 2, Metric: 200, Replicas: 3})
	rt.RecordSample(Sample{T: 3, Metric: 300, Replicas: 7})

	rt.RecordDecision(Decision{Direction: DirectionUp, AppliedChange: 4})
	rt.RecordDecision(Decision{Direction: DirectionHold})
	rt.RecordDecision(Decision{Direction: DirectionGated})
	rt.RecordDecision(Decision{Direction: DirectionDown, AppliedChange: -2})

	s := Summarize(rt)

	if s.Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", s.Ticks)
	}
	if s.Decisions != 4 {
		t.Errorf("expected 4 decisions, got %d", s.Decisions)
	}
	if s.Commits != 2 {
		t.Errorf("expected 2 commits, got %d", s.Commits)
	}
	if s.ByDirection[DirectionUp] != 1 || s.ByDirection[DirectionGated] != 1 {
		t.Errorf("unexpected direction counts: %v", s.ByDirection)
	}
	if s.TotalScaledUp != 4 || s.TotalScaledDown != 2 {
		t.Errorf("expected scaled up 4 / down 2, got %d / %d", s.TotalScaledUp, s.TotalScaledDown)
	}
	if s.ReplicaMin != 3 || s.ReplicaMax != 7 {
		t.Errorf("expected replica range [3, 7], got [%v, %v]", s.ReplicaMin, s.ReplicaMax)
	}
	if s.ReplicaFinal != 7 {
		t.Errorf("expected final replicas 7, got %d", s.ReplicaFinal)
	}
	if math.Abs(s.MetricMean-200) > 1e-9 {
		t.Errorf("expected metric mean 200, got %v", s.MetricMean)
	}
}
