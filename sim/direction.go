package sim

import "math"

// Direction is the scaling direction implied by comparing desired
// replicas against the current count.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionHold Direction = "hold"
)

// DesiredReplicas computes the raw desired replica count implied purely
// by the metric-to-target ratio: max(0, ceil(current * metric / target)).
// A non-positive target is degenerate configuration; the current count is
// returned so the caller holds instead of dividing by zero.
func DesiredReplicas(current int, metric, target float64) int {
	if target <= 0 {
		return current
	}
	desired := int(math.Ceil(float64(current) * metric / target))
	if desired < 0 {
		desired = 0
	}
	return desired
}

// DirectionOf derives the scaling direction from current vs desired.
func DirectionOf(current, desired int) Direction {
	switch {
	case desired > current:
		return DirectionUp
	case desired < current:
		return DirectionDown
	default:
		return DirectionHold
	}
}
