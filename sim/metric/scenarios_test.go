package metric

import (
	"reflect"
	"testing"
)

func TestScenarioNames(t *testing.T) {
	want := []string{"constant", "ramp", "sawtooth", "sine", "spike", "square"}
	if got := ScenarioNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("ScenarioNames() = %v, want %v", got, want)
	}
}

func TestNewScenario_Unknown(t *testing.T) {
	if _, err := NewScenario("triangle", ScenarioParams{}); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestNewScenario_Shapes(t *testing.T) {
	p := ScenarioParams{Base: 100, Amplitude: 50, PeriodSeconds: 60}

	cases := []struct {
		name string
		t    float64
		want float64
	}{
		{"constant", 17, 100},
		{"square", 0, 100},
		{"square", 45, 150},
		{"sawtooth", 30, 125},
		{"spike", 1, 150},
		{"spike", 30, 100},
	}
	for _, c := range cases {
		src, err := NewScenario(c.name, p)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if got := src.Evaluate(c.t); got != c.want {
			t.Errorf("%s.Evaluate(%v) = %v, want %v", c.name, c.t, got, c.want)
		}
	}
}

func TestNewScenario_DefaultPeriod(t *testing.T) {
	src, err := NewScenario("sine", ScenarioParams{Base: 100, Amplitude: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Period defaults to 60s: one full cycle returns to base.
	if got := src.Evaluate(60); got < 99.9 || got > 100.1 {
		t.Errorf("Evaluate(60) = %v, want ~100", got)
	}
}

func TestNewScenario_NoiseWrapping(t *testing.T) {
	plain, err := NewScenario("constant", ScenarioParams{Base: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	noisy, err := NewScenario("constant", ScenarioParams{Base: 100, NoiseStdDev: 10, Seed: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plain.Evaluate(3) != 100 {
		t.Error("plain scenario should not be wrapped in noise")
	}
	if _, ok := noisy.(Noisy); !ok {
		t.Errorf("expected Noisy wrapper, got %T", noisy)
	}
}
