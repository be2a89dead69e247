// Package metric provides the simulated metric sources that drive the
// control loop: fixed scenario shapes, a seeded noise wrapper, and a
// sandboxed expression evaluator for custom formulas.
package metric

import "math"

// Source produces the metric value at simulated time t (seconds).
//
// Implementations must be pure and total: the same t always yields the
// same value, for any finite t, without panicking. Determinism of a whole
// run depends on this — a source may not keep per-call state.
type Source interface {
	Evaluate(t float64) float64
}

// Constant holds the metric at a fixed value.
type Constant struct {
	Value float64
}

func (c Constant) Evaluate(float64) float64 { return c.Value }

// Square alternates between Low and High, spending half of each period
// at each level, starting low.
type Square struct {
	Low           float64
	High          float64
	PeriodSeconds float64
}

func (s Square) Evaluate(t float64) float64 {
	if s.PeriodSeconds <= 0 {
		return s.Low
	}
	phase := math.Mod(t, s.PeriodSeconds)
	if phase < 0 {
		phase += s.PeriodSeconds
	}
	if phase < s.PeriodSeconds/2 {
		return s.Low
	}
	return s.High
}

// Ramp grows linearly from Start at the given per-second slope.
type Ramp struct {
	Start float64
	Slope float64
}

func (r Ramp) Evaluate(t float64) float64 { return r.Start + r.Slope*t }

// Sine oscillates around Base with the given amplitude and period.
type Sine struct {
	Base          float64
	Amplitude     float64
	PeriodSeconds float64
}

func (s Sine) Evaluate(t float64) float64 {
	if s.PeriodSeconds <= 0 {
		return s.Base
	}
	return s.Base + s.Amplitude*math.Sin(2*math.Pi*t/s.PeriodSeconds)
}

// SawTooth rises linearly from Base to Base+Amplitude over each period,
// then drops back.
type SawTooth struct {
	Base          float64
	Amplitude     float64
	PeriodSeconds float64
}

func (s SawTooth) Evaluate(t float64) float64 {
	if s.PeriodSeconds <= 0 {
		return s.Base
	}
	phase := math.Mod(t, s.PeriodSeconds)
	if phase < 0 {
		phase += s.PeriodSeconds
	}
	return s.Base + s.Amplitude*(phase/s.PeriodSeconds)
}

// Spike holds Base and jumps to Peak for DurationSeconds once per
// EverySeconds, the burst starting at each period boundary.
type Spike struct {
	Base            float64
	Peak            float64
	EverySeconds    float64
	DurationSeconds float64
}

func (s Spike) Evaluate(t float64) float64 {
	if s.EverySeconds <= 0 {
		return s.Base
	}
	phase := math.Mod(t, s.EverySeconds)
	if phase < 0 {
		phase += s.EverySeconds
	}
	if phase < s.DurationSeconds {
		return s.Peak
	}
	return s.Base
}
