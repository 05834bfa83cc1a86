package expr_test

import (
	"math"
	"testing"

	"github.com/LochieR/expr"
)

func TestNumber_DifferentiateIsZero(t *testing.T) {
	n := expr.Number{Value: 42}
	if got := n.Differentiate("x"); got.(expr.Number).Value != 0 {
		t.Errorf("d/dx(42) should be 0, got %v", got)
	}
}

func TestVariable_DifferentiateSelfIsOne(t *testing.T) {
	v := expr.Variable{Name: "x"}
	got := v.Differentiate("x")
	n, ok := got.(expr.Number)
	if !ok || n.Value != 1 {
		t.Errorf("d/dx(x) should be Number(1), got %#v", got)
	}
}

func TestVariable_EvaluateUnbound(t *testing.T) {
	v := expr.Variable{Name: "z"}
	if got := v.Evaluate(nil); !math.IsNaN(got) {
		t.Errorf("Evaluate of an unbound variable should be NaN, got %v", got)
	}
}

func TestConstant_ResolvesAtConstructionTime(t *testing.T) {
	node := expr.Parse("pi")
	c, ok := node.(expr.Constant)
	if !ok {
		t.Fatalf("pi did not parse to a Constant: %#v", node)
	}
	if math.Abs(c.Value-math.Pi) > 1e-15 {
		t.Errorf("Constant pi value = %v, want %v", c.Value, math.Pi)
	}
}

func TestDifferential_HigherOrder(t *testing.T) {
	d := expr.Differential{Variable: "y", RespectTo: "x", Order: 1}
	again := d.Differentiate("x")
	higher, ok := again.(expr.Differential)
	if !ok || higher.Order != 2 {
		t.Errorf("differentiating a first-order Differential again should raise the order, got %#v", again)
	}
	if got := higher.String(); got != "d^2y/dx^2" {
		t.Errorf("Differential.String() = %q, want %q", got, "d^2y/dx^2")
	}
}

func TestError_AbsorptionAcrossOperations(t *testing.T) {
	e := expr.Error{Message: "boom"}
	if got := e.Differentiate("x"); got != e {
		t.Errorf("Error.Differentiate should return itself unchanged, got %#v", got)
	}
	if got := e.Simplify(); got != e {
		t.Errorf("Error.Simplify should return itself unchanged, got %#v", got)
	}
	if got := e.Evaluate(nil); !math.IsNaN(got) {
		t.Errorf("Error.Evaluate should be NaN, got %v", got)
	}
}

func TestFunction_UnknownNamePoisonsArgument(t *testing.T) {
	// Tokenize's function alternation is built only from registered
	// names, so Parse can never itself produce a Function node for an
	// unregistered identifier like "frobnicate" — it lexes as a
	// Variable instead, and NewFunction is the construction path that
	// reaches the unknown-function poisoning quirk (spec §3.2).
	node := expr.NewFunction("frobnicate", expr.Variable{Name: "x"})
	f, ok := node.(expr.Function)
	if !ok {
		t.Fatalf("expected a Function node, got %#v", node)
	}
	if _, ok := f.Arg.(expr.Error); !ok {
		t.Errorf("unknown function should poison Arg with an Error, got %#v", f.Arg)
	}
}
