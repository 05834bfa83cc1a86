package expr

// String renders an Operator with the implicit-multiplication style of
// spec §4.7: a product of two sub-operators prints as "(L)(R)"; a
// product where exactly one side is an atom prints with the atom
// juxtaposed against a parenthesized composite, regardless of which
// side of the source expression it came from; a product of two atoms
// juxtaposes with no infix symbol at all. Division always parenthesizes,
// sum/difference never does, and exponentiation juxtaposes '^' with no
// surrounding space.
func (o Operator) String() string {
	if e, ok := asError(o.Left); ok {
		return e.Message
	}
	if e, ok := asError(o.Right); ok {
		return e.Message
	}

	switch o.Op {
	case "*":
		_, leftIsOp := o.Left.(Operator)
		_, rightIsOp := o.Right.(Operator)
		switch {
		case leftIsOp && rightIsOp:
			return "(" + o.Left.String() + ")(" + o.Right.String() + ")"
		case leftIsOp:
			return o.Right.String() + "(" + o.Left.String() + ")"
		case rightIsOp:
			return o.Left.String() + "(" + o.Right.String() + ")"
		default:
			return o.Left.String() + o.Right.String()
		}

	case "/":
		return "(" + o.Left.String() + " / " + o.Right.String() + ")"

	case "+", "-":
		return o.Left.String() + " " + o.Op + " " + o.Right.String()

	case "^":
		return o.Left.String() + "^" + o.Right.String()

	default:
		return "(" + o.Left.String() + " " + o.Op + " " + o.Right.String() + ")"
	}
}
