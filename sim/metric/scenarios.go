package metric

import (
	"fmt"
	"sort"
)

// ScenarioParams parameterizes the built-in scenario shapes. Base is the
// resting metric level, Amplitude the excursion above (or around) it, and
// PeriodSeconds the repetition period where one applies.
type ScenarioParams struct {
	Base          float64
	Amplitude     float64
	PeriodSeconds float64
	NoiseStdDev   float64
	Seed          int64
}

// validScenarios is the set of recognized scenario names.
var validScenarios = map[string]bool{
	"constant": true,
	"square":   true,
	"sine":     true,
	"ramp":     true,
	"sawtooth": true,
	"spike":    true,
}

// ScenarioNames lists the built-in scenarios in sorted order.
func ScenarioNames() []string {
	names := make([]string, 0, len(validScenarios))
	for name := range validScenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewScenario builds a metric source from a scenario name and parameters.
// A non-zero NoiseStdDev wraps the shape in seeded Gaussian noise.
func NewScenario(name string, p ScenarioParams) (Source, error) {
	if !validScenarios[name] {
		return nil, fmt.Errorf("unknown scenario %q", name)
	}
	if p.PeriodSeconds <= 0 {
		p.PeriodSeconds = 60
	}

	var src Source
	switch name {
	case "constant":
		src = Constant{Value: p.Base}
	case "square":
		src = Square{Low: p.Base, High: p.Base + p.Amplitude, PeriodSeconds: p.PeriodSeconds}
	case "sine":
		src = Sine{Base: p.Base, Amplitude: p.Amplitude, PeriodSeconds: p.PeriodSeconds}
	case "ramp":
		src = Ramp{Start: p.Base, Slope: p.Amplitude / p.PeriodSeconds}
	case "sawtooth":
		src = SawTooth{Base: p.Base, Amplitude: p.Amplitude, PeriodSeconds: p.PeriodSeconds}
	case "spike":
		src = Spike{Base: p.Base, Peak: p.Base + p.Amplitude, EverySeconds: p.PeriodSeconds, DurationSeconds: p.PeriodSeconds / 10}
	}

	if p.NoiseStdDev > 0 {
		src = Noisy{Inner: src, StdDev: p.NoiseStdDev, Seed: p.Seed}
	}
	return src, nil
}
