package expr

// Differentiate returns d(Left Op Right)/d(respectTo) following the
// rules of spec §4.5: sum and difference distribute, product uses the
// product rule, quotient has numeric/constant-numerator and
// numeric/constant-denominator shortcuts before falling back to the
// full quotient rule, and power has a variable-base shortcut, a
// constant-or-number-base shortcut, and a general logarithmic-derivative
// form. An unrecognized operator symbol yields an Error rather than a
// panic, since Operator.Op is only ever validated by the parser that
// constructed it — a hand-built tree could carry anything.
func (o Operator) Differentiate(respectTo string) Node {
	dLeft := o.Left.Differentiate(respectTo)
	if e, ok := asError(dLeft); ok {
		return e
	}
	dRight := o.Right.Differentiate(respectTo)
	if e, ok := asError(dRight); ok {
		return e
	}

	switch o.Op {
	case "+", "-":
		return newOperator(o.Op, dLeft, dRight)

	case "*":
		return newOperator("+",
			newOperator("*", dLeft, o.Right),
			newOperator("*", o.Left, dRight))

	case "/":
		// a/f(x) with constant numerator a: -a·f'(x)/f(x)^2
		if isNumericOrConstant(o.Left) {
			return newOperator("*", Number{Value: -1},
				newOperator("*", o.Left,
					newOperator("/", dRight, newOperator("^", o.Right, Number{Value: 2}))))
		}
		// f(x)/a with constant denominator a: f'(x)/a
		if isNumericOrConstant(o.Right) {
			return newOperator("/", dLeft, o.Right)
		}
		// quotient rule: (R·L' - L·R') / R^2
		return newOperator("/",
			newOperator("-",
				newOperator("*", o.Right, dLeft),
				newOperator("*", o.Left, dRight)),
			newOperator("^", o.Right, Number{Value: 2}))

	case "^":
		if _, baseIsVar := o.Left.(Variable); baseIsVar {
			if exp, ok := o.Right.(Number); ok {
				if exp.Value == 1 {
					return Number{Value: 1}
				}
				if exp.Value == 0 {
					return Number{Value: 0}
				}
				// power rule: n·L^(n-1)
				return newOperator("*", Number{Value: exp.Value},
					newOperator("^", o.Left, Number{Value: exp.Value - 1}))
			}
			if exp, ok := o.Right.(Constant); ok {
				// d/dx x^c = c·x^(c-1)
				return newOperator("*", exp,
					newOperator("^", o.Left, newOperator("-", exp, Number{Value: 1})))
			}
		}

		if isNumericOrConstant(o.Left) {
			// d/dx a^f(x) = ln(a)·a^f(x)·f'(x)
			return newOperator("*", newFunction("ln", o.Left),
				newOperator("*", newOperator("^", o.Left, o.Right), dRight))
		}

		// general case: f^g · (g·f'/f + ln(f)·g')
		baseFraction := newOperator("/", dLeft, o.Left)
		lnBase := newFunction("ln", o.Left)
		firstTerm := newOperator("*", o.Right, baseFraction)
		secondTerm := newOperator("*", lnBase, dRight)
		return newOperator("*", o, newOperator("+", firstTerm, secondTerm))

	default:
		return Error{Message: "Unknown operator " + o.Op}
	}
}

// isNumericOrConstant reports whether n is a Number or Constant leaf —
// the shared test behind the quotient and power differentiation
// shortcuts of spec §4.5.
func isNumericOrConstant(n Node) bool {
	switch n.(type) {
	case Number, Constant:
		return true
	default:
		return false
	}
}
