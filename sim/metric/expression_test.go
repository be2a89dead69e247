package metric

import (
	"math"
	"testing"
)

func TestNewExpression_CompileErrors(t *testing.T) {
	cases := []string{
		"100 +",        // syntax error
		"workload * 2", // unknown identifier
		"'hello'",      // non-numeric result
	}
	for _, src := range cases {
		if _, err := NewExpression(src, 100); err == nil {
			t.Errorf("expected compile error for %q", src)
		}
	}
}

func TestExpression_Evaluate(t *testing.T) {
	e, err := NewExpression("100 + 50*sin(2*pi*t/60)", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Evaluate(0); math.Abs(got-100) > 1e-9 {
		t.Errorf("Evaluate(0) = %v, want 100", got)
	}
	if got := e.Evaluate(15); math.Abs(got-150) > 1e-9 {
		t.Errorf("Evaluate(15) = %v, want 150", got)
	}
}

func TestExpression_IntegerLiteralsCoerce(t *testing.T) {
	e, err := NewExpression("200", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Evaluate(5); got != 200 {
		t.Errorf("Evaluate(5) = %v, want 200", got)
	}
}

func TestExpression_Clamp(t *testing.T) {
	e, err := NewExpression("clamp(t, 10.0, 20.0)", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []struct{ t, want float64 }{{5, 10}, {15, 15}, {50, 20}}
	for _, c := range cases {
		if got := e.Evaluate(c.t); got != c.want {
			t.Errorf("Evaluate(%v) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestExpression_NonFiniteFallsBack(t *testing.T) {
	// 1/t is +Inf at t=0; the fallback covers that tick only.
	e, err := NewExpression("100/t", 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := e.Evaluate(0); got != 42 {
		t.Errorf("Evaluate(0) = %v, want fallback 42", got)
	}
	if got := e.Evaluate(2); got != 50 {
		t.Errorf("Evaluate(2) = %v, want 50", got)
	}
}

func TestExpression_String(t *testing.T) {
	e, err := NewExpression("t + 1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.String() != "t + 1" {
		t.Errorf("String() = %q", e.String())
	}
}
