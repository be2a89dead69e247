package sim

// AllowedByTolerance reports whether the metric deviates from target far
// enough to justify scaling in the given direction. Scaling up requires
// metric/target > 1+tolerance; scaling down requires metric/target <
// 1-tolerance. A zero tolerance means any deviation triggers. Hold and a
// non-positive target never permit scaling.
func AllowedByTolerance(dir Direction, metric, target, tolerance float64) bool {
	if target <= 0 {
		return false
	}
	ratio := metric / target
	switch dir {
	case DirectionUp:
		return ratio > 1+tolerance
	case DirectionDown:
		return ratio < 1-tolerance
	default:
		return false
	}
}
