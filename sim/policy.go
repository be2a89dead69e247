package sim

import "math"

// AllowedChange computes the maximum replica-count change magnitude this
// direction permits over one sync period. Disabled yields 0; an empty
// policy list yields +Inf (rate-unlimited). Each policy contributes its
// per-period allowance multiplied by the number of whole policy periods
// covered by the sync period, floored at one period; allowances combine
// under SelectMax (most permissive) or SelectMin (most restrictive).
//
// The discrete periods = max(1, floor(sync/period)) rule follows the
// reference simulation. The real controller instead replays scale events
// over the policy period, so non-integer sync/period ratios can diverge
// from it here.
func (r ScalingRules) AllowedChange(currentReplicas int, syncPeriodSeconds float64) float64 {
	if r.SelectPolicy == SelectDisabled {
		return 0
	}
	if len(r.Policies) == 0 {
		return math.Inf(1)
	}

	combined := 0.0
	for i, p := range r.Policies {
		period := p.PeriodSeconds
		if period < 1 {
			period = 1
		}
		periods := math.Floor(syncPeriodSeconds / float64(period))
		if periods < 1 {
			periods = 1
		}

		var allowance float64
		switch p.Kind {
		case PolicyPods:
			allowance = p.Value * periods
		case PolicyPercent:
			// Never a zero contribution: a configured percent policy
			// always allows at least one replica per period.
			perPeriod := math.Ceil(float64(currentReplicas) * p.Value / 100)
			if perPeriod < 1 {
				perPeriod = 1
			}
			allowance = perPeriod * periods
		}

		switch {
		case i == 0:
			combined = allowance
		case r.SelectPolicy == SelectMin:
			combined = math.Min(combined, allowance)
		default:
			combined = math.Max(combined, allowance)
		}
	}
	return combined
}
