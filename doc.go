// Package expr implements a symbolic math kernel: a lexer and
// recursive-descent parser that turn a text expression into a tree, and
// three pure symbolic operations on that tree — differentiation,
// algebraic simplification, and numeric evaluation — plus a
// pretty-printer that recovers a human-readable form.
//
// All arithmetic is IEEE-754 double precision; there is no
// arbitrary-precision or complex-number support, no equation solving,
// and no closed-form integration. The simplifier reduces in a single
// bottom-up pass; it does not iterate to a fixed point and does not
// canonicalize.
package expr
