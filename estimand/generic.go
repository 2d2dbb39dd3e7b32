// File: generic.go
// Role: Generic — an Estimand wrapping an arbitrary pre-built algebra.Expr,
// for callers who already have an expression (e.g. built by hand, or the
// result of algebra.ParseJSON) and just need it addressed as an Estimand.
package estimand

import "github.com/leoware/pqp-go/algebra"

var genericLiteral = algebra.NewLiteralFactory("CausalEstimand", 1, "", "\\text{CausalEstimand}", "")

// Generic wraps an arbitrary expression as an Estimand.
type Generic struct {
	Exp algebra.Expr
}

// NewGeneric wraps exp as a Generic Estimand.
func NewGeneric(exp algebra.Expr) *Generic {
	return &Generic{Exp: exp}
}

// Expression implements Estimand: returns the wrapped expression unchanged.
func (g *Generic) Expression() (algebra.Expr, error) {
	return g.Exp, nil
}

// Literal implements Estimand: CausalEstimand(exp).
func (g *Generic) Literal() (algebra.Expr, error) {
	lit, err := genericLiteral.New(g.Exp)
	if err != nil {
		return nil, err
	}
	return lit, nil
}
