package expr

import (
	"fmt"
	"math"
)

// Node is the capability set every expression tree node exposes: it can
// differentiate itself with respect to a named variable, evaluate itself
// under a variable binding, simplify itself into a (possibly identical)
// tree, and render itself back to text. Every symbolic operation is a
// pure function of its receiver — none of them mutate the tree they are
// called on, so a subtree is always safe to share between two parent
// trees.
type Node interface {
	Differentiate(respectTo string) Node
	Evaluate(env map[string]float64) float64
	Simplify() Node
	String() string
}

// Number is a leaf holding a literal IEEE-754 double.
type Number struct {
	Value float64
}

func (n Number) Differentiate(string) Node               { return Number{Value: 0} }
func (n Number) Evaluate(map[string]float64) float64      { return n.Value }
func (n Number) Simplify() Node                           { return n }
func (n Number) String() string                           { return formatFloat(n.Value) }

// Variable is a leaf holding a free-variable name.
type Variable struct {
	Name string
}

func (v Variable) Differentiate(respectTo string) Node {
	if v.Name == respectTo {
		return Number{Value: 1}
	}
	return Differential{Variable: v.Name, RespectTo: respectTo, Order: 1}
}
func (v Variable) Evaluate(env map[string]float64) float64 {
	if value, ok := env[v.Name]; ok {
		return value
	}
	return math.NaN()
}
func (v Variable) Simplify() Node  { return v }
func (v Variable) String() string  { return v.Name }

// Constant is a leaf naming a Registry-resolved real value, fixed at
// construction: a Constant never re-resolves even if the Registry is
// later mutated or torn down.
type Constant struct {
	Name  string
	Value float64
}

// newConstant builds a Constant, resolving its value from the Registry
// at construction time (spec §3.2): an unknown name yields a quiet NaN,
// never a construction failure.
func newConstant(name string) Constant {
	return Constant{Name: name, Value: GetConstantValue(name)}
}

func (c Constant) Differentiate(string) Node          { return Number{Value: 0} }
func (c Constant) Evaluate(map[string]float64) float64 { return c.Value }
func (c Constant) Simplify() Node                      { return c }
func (c Constant) String() string                      { return c.Name }

// Differential stands in for d^order(Variable)/d(RespectTo)^order when a
// Variable is differentiated with respect to a different variable — an
// unresolved partial derivative, printed as dV/dW or d^nV/dW^n.
type Differential struct {
	Variable  string
	RespectTo string
	Order     int
}

// Differentiate raises the order when differentiating again with
// respect to the same variable; otherwise it appends a fresh
// first-order differential for the new respectTo via the chain rule,
// d/dt (dy/dx) = d^2y/dx^2 · dx/dt.
func (d Differential) Differentiate(respectTo string) Node {
	if respectTo == d.RespectTo {
		return Differential{Variable: d.Variable, RespectTo: d.RespectTo, Order: d.Order + 1}
	}
	return newOperator("*",
		Differential{Variable: d.Variable, RespectTo: d.RespectTo, Order: d.Order + 1},
		Differential{Variable: d.RespectTo, RespectTo: respectTo, Order: 1},
	)
}
func (d Differential) Evaluate(map[string]float64) float64 { return math.NaN() }
func (d Differential) Simplify() Node                       { return d }
func (d Differential) String() string {
	if d.Order == 1 {
		return "d" + d.Variable + "/d" + d.RespectTo
	}
	return fmt.Sprintf("d^%d%s/d%s^%d", d.Order, d.Variable, d.RespectTo, d.Order)
}

// Error carries a human-readable diagnostic. It propagates through every
// symbolic operation on its ancestors unchanged (error absorption,
// spec §7): Differentiate and Simplify return the same Error, and
// Evaluate reports NaN rather than raising anything.
type Error struct {
	Message string
}

func (e Error) Differentiate(string) Node          { return e }
func (e Error) Evaluate(map[string]float64) float64 { return math.NaN() }
func (e Error) Simplify() Node                      { return e }
func (e Error) String() string                      { return e.Message }

// asError reports whether n is an Error node, and returns it as such.
func asError(n Node) (Error, bool) {
	e, ok := n.(Error)
	return e, ok
}

// formatFloat renders a float64 the way the reference implementation's
// ostringstream with 15 digits of precision does: integral values print
// without a trailing ".0", and fractional values print with Go's
// shortest round-tripping representation.
func formatFloat(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
