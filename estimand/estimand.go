// File: estimand.go
// Role: the Estimand contract every causal query in this package satisfies.
package estimand

import "github.com/leoware/pqp-go/algebra"

// Estimand is a causal query that knows its own defining formula
// (Expression, fed to identify.Identify) and a short display form
// (Literal, e.g. "ATE(y | x)").
type Estimand interface {
	// Expression returns the estimand's defining formula.
	Expression() (algebra.Expr, error)
	// Literal returns a short, named display form of the estimand.
	Literal() (algebra.Expr, error)
}
