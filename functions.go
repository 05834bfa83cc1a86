package expr

import "math"

// standardFunctions builds the closed table of unary real functions
// described in spec §4.4. Each entry's Differentiate returns u'·f'(u) —
// the chain rule applied around whatever argument tree it was given —
// and each Simplify first simplifies its argument, then tries a narrow
// set of argument-pattern identities before falling back to
// reconstructing f(simplifiedArgument).
func standardFunctions() []FunctionEntry {
	return []FunctionEntry{
		sineFunction(),
		cosineFunction(),
		tangentFunction(),
		cotangentFunction(),
		secantFunction(),
		cosecantFunction(),
		hyperbolicSineFunction(),
		hyperbolicCosineFunction(),
		hyperbolicTangentFunction(),
		hyperbolicCotangentFunction(),
		hyperbolicSecantFunction(),
		hyperbolicCosecantFunction(),
		base10LogarithmFunction(),
		naturalLogarithmFunction(),
		exponentialFunction(),
		squareRootFunction(),
		modulusFunction(),
	}
}

func sineFunction() FunctionEntry {
	return FunctionEntry{
		id:   "sin",
		exec: math.Sin,
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", u.Differentiate(respectTo), newFunction("cos", u))
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok && n.Value == 0 {
				return Number{Value: 0}
			}
			return newFunction("sin", arg)
		},
	}
}

func cosineFunction() FunctionEntry {
	return FunctionEntry{
		id:   "cos",
		exec: math.Cos,
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", Number{Value: -1},
				newOperator("*", u.Differentiate(respectTo), newFunction("sin", u)))
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok && n.Value == 0 {
				return Number{Value: 1}
			}
			return newFunction("cos", arg)
		},
	}
}

func tangentFunction() FunctionEntry {
	return FunctionEntry{
		id:   "tan",
		exec: math.Tan,
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", u.Differentiate(respectTo),
				newOperator("^", newFunction("sec", u), Number{Value: 2}))
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok && n.Value == 0 {
				return Number{Value: 0}
			}
			return newFunction("tan", arg)
		},
	}
}

func cotangentFunction() FunctionEntry {
	return FunctionEntry{
		id:   "cot",
		exec: func(x float64) float64 { return math.Cos(x) / math.Sin(x) },
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", Number{Value: -1},
				newOperator("*", u.Differentiate(respectTo),
					newOperator("^", newFunction("csc", u), Number{Value: 2})))
		},
		simplify: func(u Node) Node {
			return newFunction("cot", u.Simplify())
		},
	}
}

func secantFunction() FunctionEntry {
	return FunctionEntry{
		id:   "sec",
		exec: func(x float64) float64 { return 1 / math.Cos(x) },
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", u.Differentiate(respectTo),
				newOperator("*", newFunction("tan", u), newFunction("sec", u)))
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok && n.Value == 0 {
				return Number{Value: 1}
			}
			return newFunction("sec", arg)
		},
	}
}

func cosecantFunction() FunctionEntry {
	return FunctionEntry{
		id:   "csc",
		exec: func(x float64) float64 { return 1 / math.Sin(x) },
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", Number{Value: -1},
				newOperator("*", u.Differentiate(respectTo),
					newOperator("*", newFunction("cot", u), newFunction("csc", u))))
		},
		simplify: func(u Node) Node {
			return newFunction("csc", u.Simplify())
		},
	}
}

func hyperbolicSineFunction() FunctionEntry {
	return FunctionEntry{
		id:   "sinh",
		exec: math.Sinh,
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", u.Differentiate(respectTo), newFunction("cosh", u))
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok && n.Value == 0 {
				return Number{Value: 0}
			}
			return newFunction("sinh", arg)
		},
	}
}

func hyperbolicCosineFunction() FunctionEntry {
	return FunctionEntry{
		id:   "cosh",
		exec: math.Cosh,
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", u.Differentiate(respectTo), newFunction("sinh", u))
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok && n.Value == 0 {
				return Number{Value: 1}
			}
			return newFunction("cosh", arg)
		},
	}
}

func hyperbolicTangentFunction() FunctionEntry {
	return FunctionEntry{
		id:   "tanh",
		exec: math.Tanh,
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", u.Differentiate(respectTo),
				newOperator("^", newFunction("sech", u), Number{Value: 2}))
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok && n.Value == 0 {
				return Number{Value: 0}
			}
			return newFunction("tanh", arg)
		},
	}
}

func hyperbolicCotangentFunction() FunctionEntry {
	return FunctionEntry{
		id:   "coth",
		exec: func(x float64) float64 { return math.Cosh(x) / math.Sinh(x) },
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", Number{Value: -1},
				newOperator("*", u.Differentiate(respectTo),
					newOperator("^", newFunction("csch", u), Number{Value: 2})))
		},
		simplify: func(u Node) Node {
			return newFunction("coth", u.Simplify())
		},
	}
}

func hyperbolicSecantFunction() FunctionEntry {
	return FunctionEntry{
		id:   "sech",
		exec: func(x float64) float64 { return 1 / math.Cosh(x) },
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", Number{Value: -1},
				newOperator("*", u.Differentiate(respectTo),
					newOperator("*", newFunction("tanh", u), newFunction("sech", u))))
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok && n.Value == 0 {
				return Number{Value: 1}
			}
			return newFunction("sech", arg)
		},
	}
}

func hyperbolicCosecantFunction() FunctionEntry {
	return FunctionEntry{
		id:   "csch",
		exec: func(x float64) float64 { return 1 / math.Sinh(x) },
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", Number{Value: -1},
				newOperator("*", u.Differentiate(respectTo),
					newOperator("*", newFunction("coth", u), newFunction("csch", u))))
		},
		simplify: func(u Node) Node {
			return newFunction("csch", u.Simplify())
		},
	}
}

func base10LogarithmFunction() FunctionEntry {
	return FunctionEntry{
		id:   "log",
		exec: math.Log10,
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("/", u.Differentiate(respectTo),
				newOperator("*", newFunction("ln", Number{Value: 10}), u))
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok {
				if n.Value == 1 {
					return Number{Value: 0}
				}
				if n.Value == 10 {
					return Number{Value: 1}
				}
			}
			return newFunction("log", arg)
		},
	}
}

func naturalLogarithmFunction() FunctionEntry {
	return FunctionEntry{
		id:   "ln",
		exec: math.Log,
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("/", u.Differentiate(respectTo), u)
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok {
				if n.Value == 1 {
					return Number{Value: 0}
				}
				if n.Value == math.E {
					return Number{Value: 1}
				}
			}
			if c, ok := arg.(Constant); ok && c.Name == "e" {
				return Number{Value: 1}
			}
			return newFunction("ln", arg)
		},
	}
}

func exponentialFunction() FunctionEntry {
	return FunctionEntry{
		id:   "exp",
		exec: math.Exp,
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("*", u.Differentiate(respectTo), newFunction("exp", u))
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok {
				if n.Value == 1 {
					return newConstant("e")
				}
				if n.Value == 0 {
					return Number{Value: 1}
				}
			}
			return newFunction("exp", arg)
		},
	}
}

func squareRootFunction() FunctionEntry {
	return FunctionEntry{
		id:   "sqrt",
		exec: math.Sqrt,
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("/", u.Differentiate(respectTo),
				newOperator("*", Number{Value: 2}, newFunction("sqrt", u)))
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok {
				root := math.Sqrt(n.Value)
				if root == math.Trunc(root) {
					return Number{Value: root}
				}
			}
			return newFunction("sqrt", arg)
		},
	}
}

func modulusFunction() FunctionEntry {
	return FunctionEntry{
		id:   "abs",
		exec: math.Abs,
		differentiate: func(respectTo string, u Node) Node {
			return newOperator("/",
				newOperator("*", u, u.Differentiate(respectTo)),
				newFunction("abs", u))
		},
		simplify: func(u Node) Node {
			arg := u.Simplify()
			if n, ok := arg.(Number); ok {
				if n.Value < 0 {
					return Number{Value: -n.Value}
				}
				return Number{Value: n.Value}
			}
			return newFunction("abs", arg)
		},
	}
}
