// File: canon.go
// Role: canonical form and structural equality. Canonicalization sorts the
// children of every commutative node (Product's children, P's vars/given,
// Marginal's bound variables) lexicographically by their ASCII string form;
// it never rewrites an algebraic identity.
package algebra

import (
	"reflect"
	"sort"

	"github.com/leoware/pqp-go/symbols"
)

// Canonical returns a canonicalized copy of e: commutative children are
// sorted into a deterministic order, recursively. The result is
// value-equal to e, never a simplification.
func Canonical(e Expr) Expr {
	switch x := e.(type) {
	case P:
		return canonicalP(x)
	case Product:
		children := make([]Expr, len(x.Children))
		for i, c := range x.Children {
			children[i] = Canonical(c)
		}
		sort.Slice(children, func(i, j int) bool {
			return ASCII(children[i]) < ASCII(children[j])
		})
		return Product{Children: children}
	case Quotient:
		return Quotient{Numer: Canonical(x.Numer), Denom: Canonical(x.Denom)}
	case Marginal:
		bound := append([]symbols.Variable(nil), x.Bound...)
		sort.Slice(bound, func(i, j int) bool { return bound[i].Name < bound[j].Name })
		return Marginal{Bound: bound, Body: Canonical(x.Body)}
	case Expectation:
		return Expectation{Bound: x.Bound, Body: Canonical(x.Body)}
	case Difference:
		return Difference{A: Canonical(x.A), B: Canonical(x.B)}
	case Literal:
		args := make([]Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = Canonical(a)
		}
		return Literal{Factory: x.Factory, Args: args}
	case Hedge:
		return x
	case varSet:
		return x
	default:
		return e
	}
}

func canonicalP(p P) P {
	vars := append([]interface{}(nil), p.Vars...)
	given := append([]interface{}(nil), p.Given...)
	sort.SliceStable(vars, func(i, j int) bool { return itemASCII(vars[i]) < itemASCII(vars[j]) })
	sort.SliceStable(given, func(i, j int) bool { return itemASCII(given[i]) < itemASCII(given[j]) })
	return P{Vars: vars, Given: given}
}

// Equal reports whether a and b are structurally equal up to the
// commutative reorderings Canonical performs.
func Equal(a, b Expr) bool {
	return reflect.DeepEqual(Canonical(a), Canonical(b))
}
