// Package trace provides run-trace recording for control-loop analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

import "math"

// Direction values recorded into Decision.Direction. "gated" means the
// raw signal pointed up or down but tolerance suppressed the move.
const (
	DirectionUp    = "up"
	DirectionDown  = "down"
	DirectionHold  = "hold"
	DirectionGated = "gated"
)

// Sample captures the loop's view of one tick: the sampled metric, the
// replica count in effect, and the raw and stabilized desired counts.
type Sample struct {
	T                 float64
	Metric            float64
	Replicas          int
	DesiredRaw        int
	DesiredStabilized int
}

// Decision captures one sync-boundary commit, the audit trail of the
// scaling algorithm. AllowedChange is +Inf for a rate-unlimited
// direction. Reason explains holds, gated moves, and degraded ticks.
type Decision struct {
	T                 float64
	Metric            float64
	Ratio             float64
	DesiredRaw        int
	DesiredStabilized int
	Direction         string
	AllowedChange     float64
	AppliedChange     int
	ReplicasAfter     int
	Reason            string
}

// Unlimited reports whether the decision's direction had no rate limit.
func (d Decision) Unlimited() bool {
	return math.IsInf(d.AllowedChange, 1)
}
