package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/hpa-sim/hpa-sim/sim/metric"
	"github.com/hpa-sim/hpa-sim/sim/trace"
)

// RunState is the lifecycle state of a ControlLoop.
type RunState string

const (
	StateIdle    RunState = "idle"
	StateRunning RunState = "running"
	StatePaused  RunState = "paused"
)

// timeEpsilon absorbs float drift when accumulating fixed time steps, so
// a sync boundary at t=15.000000000000002 still counts as reached.
const timeEpsilon = 1e-9

// Config holds the per-run parameters of a control loop.
type Config struct {
	MinReplicas       int
	MaxReplicas       int
	InitialReplicas   int
	Target            float64 // target metric value, must be > 0
	SyncPeriodSeconds float64 // commit interval
	TimeStepSeconds   float64 // simulation tick size, independent of sync period
}

// Validate checks the run parameters.
func (c Config) Validate() error {
	if c.MinReplicas < 0 {
		return fmt.Errorf("minReplicas must be non-negative, got %d", c.MinReplicas)
	}
	if c.MaxReplicas < c.MinReplicas {
		return fmt.Errorf("maxReplicas (%d) must be >= minReplicas (%d)", c.MaxReplicas, c.MinReplicas)
	}
	if c.Target <= 0 {
		return fmt.Errorf("target must be positive, got %v", c.Target)
	}
	if c.SyncPeriodSeconds <= 0 {
		return fmt.Errorf("syncPeriodSeconds must be positive, got %v", c.SyncPeriodSeconds)
	}
	if c.TimeStepSeconds <= 0 {
		return fmt.Errorf("timeStepSeconds must be positive, got %v", c.TimeStepSeconds)
	}
	return nil
}

// ControlLoop simulates the HPA configurable-scaling-behavior algorithm:
// it advances simulated time in fixed ticks, samples the metric, derives
// raw and stabilized desired replica counts, and at sync-period
// boundaries commits a rate-limited, tolerance-gated replica change.
//
// The loop is the single owner of all run state; it is driven from one
// goroutine and needs no locking. All anomalies degrade per-tick and are
// surfaced through the decision records — the loop always stays tickable.
type ControlLoop struct {
	cfg      Config
	behavior Behavior
	source   metric.Source

	state            RunState
	t                float64
	elapsedSinceSync float64
	carry            float64 // Advance remainder not yet a whole tick
	replicas         int
	history          DesiredHistory
	rec              *trace.RunTrace
}

// NewControlLoop builds an idle loop. The initial replica count is
// clamped into [MinReplicas, MaxReplicas].
func NewControlLoop(cfg Config, behavior Behavior, source metric.Source) (*ControlLoop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := behavior.Validate(); err != nil {
		return nil, fmt.Errorf("invalid behavior: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("metric source is required")
	}
	behavior.ApplyDefaults()
	return &ControlLoop{
		cfg:      cfg,
		behavior: behavior,
		source:   source,
		state:    StateIdle,
		replicas: clampInt(cfg.InitialReplicas, cfg.MinReplicas, cfg.MaxReplicas),
		rec:      trace.NewRunTrace(),
	}, nil
}

// State returns the current lifecycle state.
func (l *ControlLoop) State() RunState { return l.state }

// Now returns the current simulated time in seconds.
func (l *ControlLoop) Now() float64 { return l.t }

// Replicas returns the committed replica count.
func (l *ControlLoop) Replicas() int { return l.replicas }

// Trace returns the run's recorded samples and decisions.
func (l *ControlLoop) Trace() *trace.RunTrace { return l.rec }

// Behavior returns a copy of the active behavior configuration.
func (l *ControlLoop) Behavior() Behavior { return l.behavior }

// Start transitions Idle → Running.
func (l *ControlLoop) Start() error {
	if l.state != StateIdle {
		return fmt.Errorf("cannot start: loop is %s", l.state)
	}
	l.state = StateRunning
	logrus.Debugf("control loop started: replicas=%d target=%v sync=%vs step=%vs",
		l.replicas, l.cfg.Target, l.cfg.SyncPeriodSeconds, l.cfg.TimeStepSeconds)
	return nil
}

// Pause suspends tick processing, preserving all state.
func (l *ControlLoop) Pause() error {
	if l.state != StateRunning {
		return fmt.Errorf("cannot pause: loop is %s", l.state)
	}
	l.state = StatePaused
	return nil
}

// Resume continues a paused loop from the same simulated time.
func (l *ControlLoop) Resume() error {
	if l.state != StatePaused {
		return fmt.Errorf("cannot resume: loop is %s", l.state)
	}
	l.state = StateRunning
	return nil
}

// Reset discards state, history, and trace atomically and returns to
// Idle at t=0 with the configured initial replica count.
func (l *ControlLoop) Reset() {
	l.state = StateIdle
	l.t = 0
	l.elapsedSinceSync = 0
	l.carry = 0
	l.replicas = clampInt(l.cfg.InitialReplicas, l.cfg.MinReplicas, l.cfg.MaxReplicas)
	l.history.Reset()
	l.rec.Reset()
}

// SetBehavior replaces the behavior configuration; effective next tick.
func (l *ControlLoop) SetBehavior(b Behavior) error {
	if err := b.Validate(); err != nil {
		return fmt.Errorf("invalid behavior: %w", err)
	}
	b.ApplyDefaults()
	l.behavior = b
	return nil
}

// SetTarget replaces the target metric value; effective next tick.
func (l *ControlLoop) SetTarget(target float64) error {
	if target <= 0 {
		return fmt.Errorf("target must be positive, got %v", target)
	}
	l.cfg.Target = target
	return nil
}

// SetBounds replaces the replica bounds. The committed count is clamped
// into the new range immediately so the bounds invariant never lapses.
func (l *ControlLoop) SetBounds(minReplicas, maxReplicas int) error {
	if minReplicas < 0 || maxReplicas < minReplicas {
		return fmt.Errorf("invalid bounds [%d, %d]", minReplicas, maxReplicas)
	}
	l.cfg.MinReplicas = minReplicas
	l.cfg.MaxReplicas = maxReplicas
	l.replicas = clampInt(l.replicas, minReplicas, maxReplicas)
	return nil
}

// Advance consumes dt seconds of driver time, decomposed into fixed
// TimeStepSeconds ticks processed sequentially. Oversized dt (a suspended
// host, a slow driver) therefore produces the same tick sequence as many
// small calls; a fractional remainder carries over to the next call.
// Returns the number of ticks processed.
func (l *ControlLoop) Advance(dt float64) (int, error) {
	if l.state != StateRunning {
		return 0, fmt.Errorf("cannot advance: loop is %s", l.state)
	}
	if dt < 0 {
		return 0, fmt.Errorf("cannot advance by negative time %v", dt)
	}
	l.carry += dt
	ticks := 0
	for l.carry >= l.cfg.TimeStepSeconds-timeEpsilon {
		l.carry -= l.cfg.TimeStepSeconds
		if _, _, err := l.Tick(); err != nil {
			return ticks, err
		}
		ticks++
	}
	return ticks, nil
}

// Tick processes exactly one fixed time step and returns the recorded
// sample, plus the decision record when the tick landed on a sync
// boundary (nil otherwise).
func (l *ControlLoop) Tick() (trace.Sample, *trace.Decision, error) {
	if l.state != StateRunning {
		return trace.Sample{}, nil, fmt.Errorf("cannot tick: loop is %s", l.state)
	}

	l.t += l.cfg.TimeStepSeconds
	l.elapsedSinceSync += l.cfg.TimeStepSeconds

	m := l.source.Evaluate(l.t)
	reason := ""
	if math.IsNaN(m) || math.IsInf(m, 0) {
		reason = "metric evaluation returned non-finite value, using target"
		m = l.cfg.Target
	}
	if l.cfg.Target <= 0 {
		reason = "target must be positive, holding"
	}

	desiredRaw := DesiredReplicas(l.replicas, m, l.cfg.Target)
	dir := DirectionOf(l.replicas, desiredRaw)

	// The stabilization window must see the unfiltered signal, so the raw
	// value is recorded every tick regardless of gating.
	l.history.Append(l.t, desiredRaw)
	l.history.Prune(l.t - l.historyRetentionSeconds())

	stabilized := Stabilize(dir, desiredRaw, &l.history, l.windowFor(dir), l.t)

	sample := trace.Sample{
		T:                 l.t,
		Metric:            m,
		Replicas:          l.replicas,
		DesiredRaw:        desiredRaw,
		DesiredStabilized: stabilized,
	}
	l.rec.RecordSample(sample)

	if l.elapsedSinceSync < l.cfg.SyncPeriodSeconds-timeEpsilon {
		return sample, nil, nil
	}

	l.elapsedSinceSync = 0
	decision := l.commit(m, desiredRaw, stabilized, dir, reason)
	l.rec.RecordDecision(decision)
	return sample, l.rec.LastDecision(), nil
}

// commit applies the sync-boundary decision sequence: hold short-circuit,
// tolerance gate, then policy-limited, bounds-clamped replica change.
func (l *ControlLoop) commit(m float64, desiredRaw, stabilized int, dir Direction, reason string) trace.Decision {
	d := trace.Decision{
		T:                 l.t,
		Metric:            m,
		DesiredRaw:        desiredRaw,
		DesiredStabilized: stabilized,
		ReplicasAfter:     l.replicas,
		Reason:            reason,
	}
	if l.cfg.Target > 0 {
		d.Ratio = m / l.cfg.Target
	}

	if dir == DirectionHold {
		d.Direction = trace.DirectionHold
		return d
	}

	rules := l.rulesFor(dir)
	if !AllowedByTolerance(dir, m, l.cfg.Target, rules.ToleranceValue()) {
		d.Direction = trace.DirectionGated
		if d.Reason == "" {
			d.Reason = fmt.Sprintf("%s suppressed, ratio %.4f within tolerance %.4f", dir, d.Ratio, rules.ToleranceValue())
		}
		return d
	}

	allowed := rules.AllowedChange(l.replicas, l.cfg.SyncPeriodSeconds)
	rawDelta := stabilized - l.replicas
	magnitude := math.Min(math.Abs(float64(rawDelta)), allowed)
	applied := int(math.Round(magnitude))
	if rawDelta < 0 {
		applied = -applied
	}
	l.replicas = clampInt(l.replicas+applied, l.cfg.MinReplicas, l.cfg.MaxReplicas)

	d.Direction = string(dir)
	d.AllowedChange = allowed
	d.AppliedChange = applied
	d.ReplicasAfter = l.replicas
	logrus.Debugf("t=%.1f commit %s: desired=%d stabilized=%d allowed=%v applied=%d replicas=%d",
		l.t, d.Direction, desiredRaw, stabilized, allowed, applied, l.replicas)
	return d
}

// windowFor returns the stabilization window for the given direction.
func (l *ControlLoop) windowFor(dir Direction) int {
	switch dir {
	case DirectionUp:
		return l.behavior.ScaleUp.StabilizationWindowSeconds
	case DirectionDown:
		return l.behavior.ScaleDown.StabilizationWindowSeconds
	default:
		return 0
	}
}

// rulesFor returns the scaling rules for the given direction.
func (l *ControlLoop) rulesFor(dir Direction) ScalingRules {
	if dir == DirectionUp {
		return l.behavior.ScaleUp
	}
	return l.behavior.ScaleDown
}

// historyRetentionSeconds is the pruning horizon: the larger configured
// window plus one sync period of slack so exact-boundary entries survive.
func (l *ControlLoop) historyRetentionSeconds() float64 {
	w := l.behavior.ScaleUp.StabilizationWindowSeconds
	if l.behavior.ScaleDown.StabilizationWindowSeconds > w {
		w = l.behavior.ScaleDown.StabilizationWindowSeconds
	}
	return float64(w) + l.cfg.SyncPeriodSeconds
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
