package sim

import (
	"fmt"
	"sort"
)

// PolicyKind selects how a scaling policy's value is interpreted.
type PolicyKind string

const (
	// PolicyPods allows an absolute number of replicas per policy period.
	PolicyPods PolicyKind = "Pods"
	// PolicyPercent allows a percentage of the current replica count per policy period.
	PolicyPercent PolicyKind = "Percent"
)

// SelectPolicy is the tie-break rule for combining multiple policies in one direction.
type SelectPolicy string

const (
	// SelectMax picks the most permissive policy allowance.
	SelectMax SelectPolicy = "Max"
	// SelectMin picks the most restrictive policy allowance.
	SelectMin SelectPolicy = "Min"
	// SelectDisabled forbids any change in the direction, regardless of policies.
	SelectDisabled SelectPolicy = "Disabled"
)

// validPolicyKinds maps accepted policy kind strings.
var validPolicyKinds = map[PolicyKind]bool{
	PolicyPods:    true,
	PolicyPercent: true,
}

// validSelectPolicies maps accepted select policy strings.
// Empty defaults to Max via ApplyDefaults.
var validSelectPolicies = map[SelectPolicy]bool{
	SelectMax:      true,
	SelectMin:      true,
	SelectDisabled: true,
	"":             true,
}

const (
	// defaultTolerance matches the stock HPA controller deviation threshold.
	defaultTolerance = 0.1
	// maxPolicyPeriodSeconds bounds periodSeconds, as the HPA API does.
	maxPolicyPeriodSeconds = 1800
	// maxStabilizationWindowSeconds bounds the look-back window (one hour).
	maxStabilizationWindowSeconds = 3600
)

// Policy is a single rate-limiting rule: at most Value (pods or percent)
// per PeriodSeconds. Immutable once a run starts.
type Policy struct {
	Kind          PolicyKind `yaml:"type"`
	Value         float64    `yaml:"value"`
	PeriodSeconds int        `yaml:"periodSeconds"`
}

// Validate checks policy fields against the accepted ranges.
func (p Policy) Validate() error {
	if !validPolicyKinds[p.Kind] {
		return fmt.Errorf("unknown policy type %q", p.Kind)
	}
	if p.Value <= 0 {
		return fmt.Errorf("policy value must be positive, got %v", p.Value)
	}
	if p.PeriodSeconds < 1 || p.PeriodSeconds > maxPolicyPeriodSeconds {
		return fmt.Errorf("policy periodSeconds must be in [1, %d], got %d", maxPolicyPeriodSeconds, p.PeriodSeconds)
	}
	return nil
}

// ScalingRules configures one scaling direction: how long to look back
// before committing (stabilization), how far off target the metric must be
// (tolerance), and how fast replicas may change (policies + select rule).
//
// A nil Tolerance means "not set"; ApplyDefaults fills it with the stock
// 0.1. An empty Policies list with a non-Disabled SelectPolicy means the
// direction is rate-unlimited.
type ScalingRules struct {
	StabilizationWindowSeconds int          `yaml:"stabilizationWindowSeconds"`
	Tolerance                  *float64     `yaml:"tolerance,omitempty"`
	SelectPolicy               SelectPolicy `yaml:"selectPolicy,omitempty"`
	Policies                   []Policy     `yaml:"policies,omitempty"`
}

// ToleranceValue returns the configured tolerance, or the stock default
// when the field was left unset.
func (r ScalingRules) ToleranceValue() float64 {
	if r.Tolerance == nil {
		return defaultTolerance
	}
	return *r.Tolerance
}

// Validate checks the direction's configuration.
func (r ScalingRules) Validate() error {
	if r.StabilizationWindowSeconds < 0 || r.StabilizationWindowSeconds > maxStabilizationWindowSeconds {
		return fmt.Errorf("stabilizationWindowSeconds must be in [0, %d], got %d", maxStabilizationWindowSeconds, r.StabilizationWindowSeconds)
	}
	if r.Tolerance != nil && *r.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %v", *r.Tolerance)
	}
	if !validSelectPolicies[r.SelectPolicy] {
		return fmt.Errorf("unknown selectPolicy %q", r.SelectPolicy)
	}
	for i, p := range r.Policies {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("policy %d: %w", i, err)
		}
	}
	return nil
}

// Behavior is the root scaling-behavior configuration for one run,
// one rule set per direction. It mirrors the Kubernetes HPA `behavior`
// stanza and round-trips through YAML without loss.
type Behavior struct {
	ScaleUp   ScalingRules `yaml:"scaleUp"`
	ScaleDown ScalingRules `yaml:"scaleDown"`
}

// Validate checks both directions.
func (b Behavior) Validate() error {
	if err := b.ScaleUp.Validate(); err != nil {
		return fmt.Errorf("scaleUp: %w", err)
	}
	if err := b.ScaleDown.Validate(); err != nil {
		return fmt.Errorf("scaleDown: %w", err)
	}
	return nil
}

// ApplyDefaults fills unset fields with the stock HPA defaults:
// selectPolicy Max and tolerance 0.1 for both directions.
func (b *Behavior) ApplyDefaults() {
	for _, r := range []*ScalingRules{&b.ScaleUp, &b.ScaleDown} {
		if r.SelectPolicy == "" {
			r.SelectPolicy = SelectMax
		}
		if r.Tolerance == nil {
			tol := defaultTolerance
			r.Tolerance = &tol
		}
	}
}

// floatPtr is a convenience for building template tolerances.
func floatPtr(v float64) *float64 { return &v }

// DefaultBehavior returns the stock HPA behavior: scale up by the larger
// of 100%/15s and 4 pods/15s with no stabilization, scale down by
// 100%/15s behind a 300s stabilization window.
func DefaultBehavior() Behavior {
	return Behavior{
		ScaleUp: ScalingRules{
			StabilizationWindowSeconds: 0,
			Tolerance:                  floatPtr(defaultTolerance),
			SelectPolicy:               SelectMax,
			Policies: []Policy{
				{Kind: PolicyPercent, Value: 100, PeriodSeconds: 15},
				{Kind: PolicyPods, Value: 4, PeriodSeconds: 15},
			},
		},
		ScaleDown: ScalingRules{
			StabilizationWindowSeconds: 300,
			Tolerance:                  floatPtr(defaultTolerance),
			SelectPolicy:               SelectMax,
			Policies: []Policy{
				{Kind: PolicyPercent, Value: 100, PeriodSeconds: 15},
			},
		},
	}
}

// behaviorTemplates maps template names to constructors. Constructors
// return fresh values so callers cannot corrupt a shared copy.
var behaviorTemplates = map[string]func() Behavior{
	"default": DefaultBehavior,
	"conservative-down": func() Behavior {
		b := DefaultBehavior()
		b.ScaleDown.StabilizationWindowSeconds = 600
		b.ScaleDown.SelectPolicy = SelectMin
		b.ScaleDown.Policies = []Policy{
			{Kind: PolicyPercent, Value: 10, PeriodSeconds: 60},
			{Kind: PolicyPods, Value: 2, PeriodSeconds: 60},
		}
		return b
	},
	"aggressive-up": func() Behavior {
		b := DefaultBehavior()
		b.ScaleUp.Tolerance = floatPtr(0.05)
		b.ScaleUp.Policies = []Policy{
			{Kind: PolicyPercent, Value: 200, PeriodSeconds: 15},
			{Kind: PolicyPods, Value: 8, PeriodSeconds: 15},
		}
		return b
	},
	"frozen-down": func() Behavior {
		b := DefaultBehavior()
		b.ScaleDown.SelectPolicy = SelectDisabled
		return b
	},
}

// Template returns a fresh copy of a named built-in behavior template.
func Template(name string) (Behavior, error) {
	ctor, ok := behaviorTemplates[name]
	if !ok {
		return Behavior{}, fmt.Errorf("unknown behavior template %q", name)
	}
	return ctor(), nil
}

// TemplateNames lists the built-in behavior templates in sorted order.
func TemplateNames() []string {
	names := make([]string, 0, len(behaviorTemplates))
	for name := range behaviorTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
