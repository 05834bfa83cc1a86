package expr

// Simplify reduces an Operator node in a single bottom-up pass (spec
// §4.6): both children are simplified first, with Error absorption: then
// identity reductions, a squaring fold for syntactically-equal
// Variable/Constant factors, and a narrow distributive expansion under
// '*' are tried in that order; if nothing fires the operator is simply
// rebuilt over its simplified children. Running Simplify a second time
// on the result may reduce it further — this is not a fixed-point pass.
func (o Operator) Simplify() Node {
	left := o.Left.Simplify()
	if e, ok := asError(left); ok {
		return e
	}
	right := o.Right.Simplify()
	if e, ok := asError(right); ok {
		return e
	}

	switch o.Op {
	case "+":
		if ln, ok := left.(Number); ok {
			if ln.Value == 0 {
				return right
			}
			if rn, ok := right.(Number); ok {
				return Number{Value: ln.Value + rn.Value}
			}
		}
		if rn, ok := right.(Number); ok && rn.Value == 0 {
			return left
		}

	case "-":
		if ln, ok := left.(Number); ok {
			if ln.Value == 0 {
				return newOperator("*", Number{Value: -1}, right)
			}
			if rn, ok := right.(Number); ok {
				return Number{Value: ln.Value - rn.Value}
			}
		}
		if rn, ok := right.(Number); ok && rn.Value == 0 {
			return left
		}

	case "*":
		if ln, ok := left.(Number); ok {
			if ln.Value == 1 {
				return right
			}
			if ln.Value == 0 {
				return left
			}
		}
		if rn, ok := right.(Number); ok {
			if rn.Value == 1 {
				return left
			}
			if rn.Value == 0 {
				return right
			}
		}

		if lc, ok := left.(Constant); ok {
			if rc, ok := right.(Constant); ok && lc.Name == rc.Name {
				return newOperator("^", left, Number{Value: 2})
			}
		}
		if lv, ok := left.(Variable); ok {
			if rv, ok := right.(Variable); ok && lv.Name == rv.Name {
				return newOperator("^", left, Number{Value: 2})
			}
		}

		if rightOp, ok := right.(Operator); ok && (rightOp.Op == "+" || rightOp.Op == "-") {
			if leftOp, ok := left.(Operator); ok && (leftOp.Op == "+" || leftOp.Op == "-") {
				return expandProductOfSums(leftOp, rightOp)
			}
			if isScalarFactor(left) {
				return newOperator(rightOp.Op,
					newOperator("*", left, rightOp.Left),
					newOperator("*", left, rightOp.Right))
			}
		}
		if leftOp, ok := left.(Operator); ok && (leftOp.Op == "+" || leftOp.Op == "-") {
			if isScalarFactor(right) {
				return newOperator(leftOp.Op,
					newOperator("*", right, leftOp.Left),
					newOperator("*", right, leftOp.Right))
			}
		}

	case "/":
		if rn, ok := right.(Number); ok && rn.Value == 1 {
			return left
		}
		if ln, ok := left.(Number); ok && ln.Value == 0 {
			return left
		}

	case "^":
		if ln, ok := left.(Number); ok {
			if ln.Value == 0 {
				if rn, ok := right.(Number); !ok || rn.Value != 0 {
					return Number{Value: 0}
				}
			}
			if ln.Value == 1 {
				return Number{Value: 1}
			}
		}
		if rn, ok := right.(Number); ok {
			if rn.Value == 1 {
				return left
			}
			if rn.Value == 0 {
				return Number{Value: 1}
			}
		}
	}

	return newOperator(o.Op, left, right)
}

// isScalarFactor reports whether n is the kind of leaf the distributive
// shortcut treats as a scalar to multiply through a sum: a literal
// Number, a named Constant, or a Function application (spec §4.6 rule
// 3's "k is Number, Constant, or Function").
func isScalarFactor(n Node) bool {
	switch n.(type) {
	case Number, Constant, Function:
		return true
	default:
		return false
	}
}

// expandProductOfSums expands (A op1 B)·(C op2 D) into its four-term
// form per the sign table of spec §4.6 rule 3:
//
//	(A+B)(C+D) = AC + AD + BC + BD
//	(A+B)(C-D) = AC - AD + BC - BD
//	(A-B)(C+D) = AC - BC + AD - BD
//	(A-B)(C-D) = AC - AD + BD - BC
func expandProductOfSums(lhs, rhs Operator) Node {
	a, b := lhs.Left, lhs.Right
	c, d := rhs.Left, rhs.Right

	ac := newOperator("*", a, c)
	ad := newOperator("*", a, d)
	bc := newOperator("*", b, c)
	bd := newOperator("*", b, d)

	switch {
	case lhs.Op == "+" && rhs.Op == "+":
		return newOperator("+", newOperator("+", ac, ad), newOperator("+", bc, bd))
	case lhs.Op == "+" && rhs.Op == "-":
		return newOperator("+", newOperator("-", ac, ad), newOperator("-", bc, bd))
	case lhs.Op == "-" && rhs.Op == "+":
		return newOperator("+", newOperator("-", ac, bc), newOperator("-", ad, bd))
	default: // "-" && "-"
		return newOperator("+", newOperator("-", ac, ad), newOperator("-", bd, bc))
	}
}
