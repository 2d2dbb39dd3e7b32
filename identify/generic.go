// File: generic.go
// Role: the generic identification entry point. Walks an arbitrary
// expression bottom-up; every P leaf carrying an InterventionEvent is
// replaced by its IDC(Y, X, Z) result, with the leaf's original value
// bindings (both conditioned and intervened) reapplied afterward. IDC
// results are memoized by (sorted Y, sorted X, sorted Z) so a repeated
// sub-query across a large expression is only solved once.
package identify

import (
	"strings"

	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/cgraph"
	"github.com/leoware/pqp-go/symbols"
)

// Identify walks e and resolves every interventional P leaf against g.
func Identify(e algebra.Expr, g *cgraph.Graph) (algebra.Expr, error) {
	memo := make(map[string]algebra.Expr)
	return identifyWalk(e, g, memo)
}

func memoKey(y, x, z []string) string {
	return strings.Join(y, ",") + "|" + strings.Join(x, ",") + "|" + strings.Join(z, ",")
}

func identifyWalk(e algebra.Expr, g *cgraph.Graph, memo map[string]algebra.Expr) (algebra.Expr, error) {
	switch x := e.(type) {
	case algebra.P:
		if !x.HasIntervention() {
			return x, nil
		}
		return identifyLeaf(x, g, memo)
	case algebra.Product:
		children := make([]algebra.Expr, len(x.Children))
		for i, c := range x.Children {
			r, err := identifyWalk(c, g, memo)
			if err != nil {
				return nil, err
			}
			children[i] = r
		}
		return algebra.NewProduct(children...), nil
	case algebra.Quotient:
		n, err := identifyWalk(x.Numer, g, memo)
		if err != nil {
			return nil, err
		}
		d, err := identifyWalk(x.Denom, g, memo)
		if err != nil {
			return nil, err
		}
		return algebra.NewQuotient(n, d), nil
	case algebra.Marginal:
		body, err := identifyWalk(x.Body, g, memo)
		if err != nil {
			return nil, err
		}
		return algebra.NewMarginal(x.Bound, body), nil
	case algebra.Expectation:
		body, err := identifyWalk(x.Body, g, memo)
		if err != nil {
			return nil, err
		}
		return algebra.NewExpectation(x.Bound, body), nil
	case algebra.Difference:
		a, err := identifyWalk(x.A, g, memo)
		if err != nil {
			return nil, err
		}
		b, err := identifyWalk(x.B, g, memo)
		if err != nil {
			return nil, err
		}
		return algebra.NewDifference(a, b), nil
	case algebra.Literal:
		args := make([]algebra.Expr, len(x.Args))
		for i, a := range x.Args {
			r, err := identifyWalk(a, g, memo)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
		newLit, err := x.Factory.New(args...)
		if err != nil {
			return nil, err
		}
		return newLit, nil
	case algebra.Hedge:
		return x, nil
	default:
		return nil, algebra.ErrUnknownExpressionKind
	}
}

func identifyLeaf(p algebra.P, g *cgraph.Graph, memo map[string]algebra.Expr) (algebra.Expr, error) {
	y := make([]symbols.Variable, 0, len(p.Vars))
	for _, item := range p.Vars {
		v, err := algebra.VarOf(item)
		if err != nil {
			return nil, err
		}
		y = append(y, v)
	}

	xVars := intervenedVars(p)
	zVars := conditionedVars(p)

	key := memoKey(namesOf(y), namesOf(xVars), namesOf(zVars))
	result, ok := memo[key]
	if !ok {
		computed, err := IDC(y, xVars, zVars, g)
		if err != nil {
			return nil, err
		}
		memo[key] = computed
		result = computed
	}

	return reapplyBindings(result, p)
}

func intervenedVars(p algebra.P) []symbols.Variable {
	bound := p.GetIntervenedVars()
	names := make([]string, 0, len(bound))
	for name := range bound {
		names = append(names, name)
	}
	return varsOf(names)
}

func conditionedVars(p algebra.P) []symbols.Variable {
	bound := p.GetConditionedVars()
	names := make([]string, 0, len(bound))
	for name := range bound {
		names = append(names, name)
	}
	return varsOf(names)
}

// reapplyBindings rebinds onto result every concrete value the original
// leaf carried, whether as a conditioned EqualityEvent or a bound
// InterventionEvent; unbound occurrences (bare Variable, bare do(Variable))
// stay free.
func reapplyBindings(result algebra.Expr, leaf algebra.P) (algebra.Expr, error) {
	out := result

	apply := func(v symbols.Variable, value interface{}) error {
		assigned, err := algebra.Assign(out, v, value)
		if err != nil {
			return err
		}
		out = assigned
		return nil
	}

	for _, item := range leaf.Vars {
		if ev, ok := item.(symbols.EqualityEvent); ok {
			if err := apply(ev.Var, ev.Value); err != nil {
				return nil, err
			}
		}
	}
	for _, item := range leaf.Given {
		switch x := item.(type) {
		case symbols.EqualityEvent:
			if err := apply(x.Var, x.Value); err != nil {
				return nil, err
			}
		case symbols.InterventionEvent:
			if value, bound := x.Value(); bound {
				if err := apply(x.GetVar(), value); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}
