package expr_test

import (
	"testing"

	"github.com/LochieR/expr"
)

func TestParse_Precedence(t *testing.T) {
	node := expr.Parse("2+3*4")
	if got := node.Evaluate(nil); got != 14 {
		t.Errorf("2+3*4 = %v, want 14", got)
	}
}

func TestParse_LeftAssociativeExponentiation(t *testing.T) {
	// (2^3)^2 = 64, not the right-associative 2^(3^2) = 512 — the
	// grammar is left-associative at every level, including '^'.
	node := expr.Parse("2^3^2")
	if got := node.Evaluate(nil); got != 64 {
		t.Errorf("2^3^2 = %v, want 64", got)
	}
}

func TestParse_Parentheses(t *testing.T) {
	node := expr.Parse("(2+3)*4")
	if got := node.Evaluate(nil); got != 20 {
		t.Errorf("(2+3)*4 = %v, want 20", got)
	}
}

func TestParse_FunctionCall(t *testing.T) {
	node := expr.Parse("sqrt(16)")
	if got := node.Evaluate(nil); got != 4 {
		t.Errorf("sqrt(16) = %v, want 4", got)
	}
}

func TestParse_ModulusDelimiterIsAbs(t *testing.T) {
	node := expr.Parse("|-5|")
	if got := node.Evaluate(nil); got != 5 {
		t.Errorf("|-5| = %v, want 5", got)
	}
}

func TestParse_Equals(t *testing.T) {
	node := expr.Parse("y=2*x")
	eq, ok := node.(expr.Equals)
	if !ok {
		t.Fatalf("y=2*x did not parse to an Equals node: %#v", node)
	}
	if eq.Left.String() != "y" {
		t.Errorf("Left = %s, want y", eq.Left.String())
	}
}

func TestParse_UnterminatedParenthesisIsError(t *testing.T) {
	node := expr.Parse("(2+3")
	if _, ok := node.(expr.Error); !ok {
		t.Errorf("unterminated parenthesis should parse to an Error, got %#v", node)
	}
}

func TestParse_UnknownFunctionPoisonsArgument(t *testing.T) {
	// Parse can't reach this quirk on its own: Tokenize's function
	// alternation is built only from registered names, so "frobnicate"
	// in source text lexes as a Variable, not a TokenFunction — and
	// Parse("frobnicate(x)") evaluates to NaN merely because "frobnicate"
	// is an unbound Variable, not because of function-name poisoning.
	// NewFunction is the construction path the parser itself uses for a
	// TokenFunction token, so it's what genuinely exercises the quirk.
	node := expr.NewFunction("frobnicate", expr.Variable{Name: "x"})
	if node.String() != "Could not find function frobnicate" {
		t.Errorf("unknown function String() = %q, want the diagnostic message", node.String())
	}
	if got := node.Evaluate(map[string]float64{"x": 1}); !isNaN(got) {
		t.Errorf("unknown function should evaluate to NaN, got %v", got)
	}
}

func isNaN(f float64) bool { return f != f }
