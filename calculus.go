package expr

// PartialDerivative differentiates n with respect to v. It is a named
// alias over Node.Differentiate for callers thinking in terms of a
// multi-variable expression rather than a single free variable.
func PartialDerivative(n Node, v string) Node {
	if n == nil {
		panic("expr: PartialDerivative of nil Node")
	}
	return n.Differentiate(v)
}

// Gradient differentiates n with respect to each name in vars, in
// order, returning one Node per variable. The result is not
// simplified — callers wanting reduced terms call Simplify on each
// entry themselves, consistent with every other operation in this
// package leaving that choice to the caller.
func Gradient(n Node, vars []string) []Node {
	if n == nil {
		panic("expr: Gradient of nil Node")
	}
	result := make([]Node, len(vars))
	for i, v := range vars {
		result[i] = n.Differentiate(v)
	}
	return result
}
