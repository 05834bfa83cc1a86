package expr

import "math"

// Equals is a binary node representing an equation LHS = RHS. It is the
// parse result of the lowest-precedence '=' token; differentiating or
// simplifying it threads through to both sides with the same Error
// absorption every other operation uses.
type Equals struct {
	Left  Node
	Right Node
}

func (eq Equals) Differentiate(respectTo string) Node {
	dLeft := eq.Left.Differentiate(respectTo)
	if e, ok := asError(dLeft); ok {
		return e
	}
	dRight := eq.Right.Differentiate(respectTo)
	if e, ok := asError(dRight); ok {
		return e
	}
	return Equals{Left: dLeft, Right: dRight}
}

func (eq Equals) Evaluate(map[string]float64) float64 { return math.NaN() }

func (eq Equals) Simplify() Node {
	left := eq.Left.Simplify()
	if e, ok := asError(left); ok {
		return e
	}
	right := eq.Right.Simplify()
	if e, ok := asError(right); ok {
		return e
	}
	return Equals{Left: left, Right: right}
}

func (eq Equals) String() string {
	if e, ok := asError(eq.Left); ok {
		return e.Message
	}
	if e, ok := asError(eq.Right); ok {
		return e.Message
	}
	return eq.Left.String() + " = " + eq.Right.String()
}
