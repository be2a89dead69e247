package metric

import (
	"math"
	"testing"
)

func TestConstant(t *testing.T) {
	src := Constant{Value: 100}
	for _, tt := range []float64{0, 1, 500, 1e6} {
		if got := src.Evaluate(tt); got != 100 {
			t.Errorf("Evaluate(%v) = %v, want 100", tt, got)
		}
	}
}

func TestSquare(t *testing.T) {
	src := Square{Low: 50, High: 150, PeriodSeconds: 60}
	cases := []struct {
		t    float64
		want float64
	}{
		{0, 50},
		{29, 50},
		{30, 150},
		{59, 150},
		{60, 50},
		{95, 150},
	}
	for _, c := range cases {
		if got := src.Evaluate(c.t); got != c.want {
			t.Errorf("Evaluate(%v) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestSquare_ZeroPeriod(t *testing.T) {
	src := Square{Low: 50, High: 150}
	if got := src.Evaluate(10); got != 50 {
		t.Errorf("Evaluate(10) = %v, want 50", got)
	}
}

func TestRamp(t *testing.T) {
	src := Ramp{Start: 100, Slope: 2}
	if got := src.Evaluate(0); got != 100 {
		t.Errorf("Evaluate(0) = %v, want 100", got)
	}
	if got := src.Evaluate(30); got != 160 {
		t.Errorf("Evaluate(30) = %v, want 160", got)
	}
}

func TestSine(t *testing.T) {
	src := Sine{Base: 100, Amplitude: 50, PeriodSeconds: 60}
	if got := src.Evaluate(0); math.Abs(got-100) > 1e-9 {
		t.Errorf("Evaluate(0) = %v, want 100", got)
	}
	if got := src.Evaluate(15); math.Abs(got-150) > 1e-9 {
		t.Errorf("Evaluate(15) = %v, want 150", got)
	}
	if got := src.Evaluate(45); math.Abs(got-50) > 1e-9 {
		t.Errorf("Evaluate(45) = %v, want 50", got)
	}
}

func TestSawTooth(t *testing.T) {
	src := SawTooth{Base: 100, Amplitude: 80, PeriodSeconds: 40}
	if got := src.Evaluate(0); got != 100 {
		t.Errorf("Evaluate(0) = %v, want 100", got)
	}
	if got := src.Evaluate(20); got != 140 {
		t.Errorf("Evaluate(20) = %v, want 140", got)
	}
	if got := src.Evaluate(40); got != 100 {
		t.Errorf("Evaluate(40) = %v, want 100", got)
	}
}

func TestSpike(t *testing.T) {
	src := Spike{Base: 100, Peak: 500, EverySeconds: 100, DurationSeconds: 10}
	cases := []struct {
		t    float64
		want float64
	}{
		{0, 500},
		{5, 500},
		{10, 100},
		{99, 100},
		{100, 500},
		{111, 100},
	}
	for _, c := range cases {
		if got := src.Evaluate(c.t); got != c.want {
			t.Errorf("Evaluate(%v) = %v, want %v", c.t, got, c.want)
		}
	}
}
