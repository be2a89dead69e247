package metric

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Expression evaluates a user-supplied arithmetic formula of t as the
// metric source. The formula is compiled once against a fixed environment
// (the variable t plus a small math function set) — it can never reach
// host code. A runtime evaluation error or a non-finite result falls back
// to Fallback for that tick only.
type Expression struct {
	src      string
	program  *vm.Program
	Fallback float64
}

// exprEnv builds the evaluation environment for a given t. The expr
// builtins (abs, min, max, floor, ceil, round) are available on top of
// these.
func exprEnv(t float64) map[string]interface{} {
	return map[string]interface{}{
		"t":    t,
		"pi":   math.Pi,
		"sin":  math.Sin,
		"cos":  math.Cos,
		"exp":  math.Exp,
		"sqrt": math.Sqrt,
		"pow":  math.Pow,
		"clamp": func(x, lo, hi float64) float64 {
			return math.Min(math.Max(x, lo), hi)
		},
	}
}

// NewExpression compiles a metric formula. Compilation errors (syntax,
// unknown identifiers, non-numeric result type) are configuration errors
// and reported immediately.
func NewExpression(src string, fallback float64) (*Expression, error) {
	program, err := expr.Compile(src, expr.Env(exprEnv(0)), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("compiling metric expression %q: %w", src, err)
	}
	return &Expression{src: src, program: program, Fallback: fallback}, nil
}

// String returns the original formula text.
func (e *Expression) String() string { return e.src }

func (e *Expression) Evaluate(t float64) float64 {
	out, err := expr.Run(e.program, exprEnv(t))
	if err != nil {
		return e.Fallback
	}
	v, ok := out.(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return e.Fallback
	}
	return v
}
