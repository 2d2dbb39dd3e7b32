// File: idc.go
// Role: the conditional extension IDC, which reduces the conditioning set Z
// into the intervention set X one variable at a time whenever doing so
// leaves the query's d-separation structure unchanged, then falls back to
// ID once no further reduction applies.
package identify

import (
	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/cgraph"
	"github.com/leoware/pqp-go/symbols"
)

// IDC computes the expression for P(y | do(x), z) in graph g, or
// algebra.Hedge if not identifiable.
func IDC(y, x, z []symbols.Variable, g *cgraph.Graph) (algebra.Expr, error) {
	zz := append([]symbols.Variable(nil), z...)
	xx := append([]symbols.Variable(nil), x...)

	for {
		reducible := -1
		for i := range zz {
			rest := removeAt(zz, i)
			mutilated := g.RemoveIncoming(namesOf(xx)).RemoveOutgoing([]string{zz[i].Name})
			cond := setUnion(namesOf(xx), namesOf(rest))
			if dSeparated(mutilated, namesOf(y), []string{zz[i].Name}, cond) {
				reducible = i
				break
			}
		}
		if reducible == -1 {
			break
		}
		xx = append(xx, zz[reducible])
		zz = removeAt(zz, reducible)
	}

	if len(zz) == 0 {
		return ID(y, xx, g)
	}

	numerator, err := ID(setUnionVars(y, zz), xx, g)
	if err != nil {
		return nil, err
	}
	if algebra.ContainsHedge(numerator) {
		return numerator, nil
	}

	denominator := algebra.NewMarginal(y, numerator)
	return algebra.NewQuotient(numerator, denominator), nil
}

func removeAt(vars []symbols.Variable, i int) []symbols.Variable {
	out := make([]symbols.Variable, 0, len(vars)-1)
	out = append(out, vars[:i]...)
	out = append(out, vars[i+1:]...)
	return out
}

func setUnionVars(a, b []symbols.Variable) []symbols.Variable {
	return varsOf(setUnion(namesOf(a), namesOf(b)))
}
