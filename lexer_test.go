package expr_test

import (
	"testing"

	"github.com/LochieR/expr"
)

func tokenStrings(tokens []expr.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type.String() + ":" + t.Value
	}
	return out
}

func assertTokens(t *testing.T, input string, want []string) {
	t.Helper()
	got := tokenStrings(expr.Tokenize(input))
	if len(got) != len(want) {
		t.Fatalf("Tokenize(%q) = %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokenize(%q)[%d] = %s, want %s", input, i, got[i], want[i])
		}
	}
}

func TestTokenize_NegativeSignAtStart(t *testing.T) {
	assertTokens(t, "-3+x", []string{"Number:-3", "Operator:+", "Variable:x"})
}

func TestTokenize_MinusIsBinaryAfterVariable(t *testing.T) {
	assertTokens(t, "a-3", []string{"Variable:a", "Operator:-", "Number:3"})
}

func TestTokenize_NegativeSignAfterOpenParen(t *testing.T) {
	assertTokens(t, "(-3)", []string{"Parenthesis:(", "Number:-3", "Parenthesis:)"})
}

func TestTokenize_NegativeSignAfterOperator(t *testing.T) {
	assertTokens(t, "a*-3", []string{"Variable:a", "Operator:*", "Number:-3"})
}

func TestTokenize_ModulusDelimiters(t *testing.T) {
	assertTokens(t, "|-3|", []string{"ModulusDelimiter:|", "Number:-3", "ModulusDelimiter:|"})
}

func TestTokenize_FunctionVersusVariablePrefix(t *testing.T) {
	assertTokens(t, "sin(x)", []string{"Function:sin", "Parenthesis:(", "Variable:x", "Parenthesis:)"})
	assertTokens(t, "sinx", []string{"Variable:sinx"})
}

func TestTokenize_ConstantRecognition(t *testing.T) {
	assertTokens(t, "2*pi", []string{"Number:2", "Operator:*", "Constant:pi"})
}

func TestTokenize_Equals(t *testing.T) {
	assertTokens(t, "y=2*x", []string{"Variable:y", "Equals:=", "Number:2", "Operator:*", "Variable:x"})
}

func TestTokenize_DecimalNumber(t *testing.T) {
	assertTokens(t, "3.14*x", []string{"Number:3.14", "Operator:*", "Variable:x"})
}

func TestTokenize_WhitespaceIgnored(t *testing.T) {
	assertTokens(t, "  4 * x  ", []string{"Number:4", "Operator:*", "Variable:x"})
}
