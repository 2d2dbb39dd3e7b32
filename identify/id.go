// File: id.go
// Role: the unconditional Shpitser–Pearl ID algorithm, steps 1–5.
//
// AI-Hints (file):
//   - The recursion manipulates a dist value, not a raw expression: the
//     distribution starts as the observational joint over the whole node
//     set (rendered as a bare P leaf) and becomes an explicit chain-rule
//     product once step 5 substitutes one in for a strict c-component.
//     Keeping the "still observational" case symbolic is what lets a
//     marginal of the joint render as the smaller P leaf (P(z), P(x,z))
//     instead of a Σ-wrapped P(x,y,z).
package identify

import (
	"github.com/leoware/pqp-go/algebra"
	"github.com/leoware/pqp-go/cgraph"
	"github.com/leoware/pqp-go/symbols"
)

// ID computes the expression for P(y | do(x)) in graph g, or algebra.Hedge
// if the query is not identifiable. y and x are variable sets over g's
// nodes; the result's free variables are always a subset of g's nodes.
// Returns cgraph.ErrCycleDetected if g's directed subgraph is cyclic.
func ID(y, x []symbols.Variable, g *cgraph.Graph) (algebra.Expr, error) {
	if _, err := g.TopologicalSort(); err != nil {
		return nil, err
	}
	return id(namesOf(y), namesOf(x), g, observationalDist(g))
}

// dist is the distribution a recursion level manipulates: the set of
// variables it ranges over, plus an explicit expression for it. A nil expr
// means the distribution is still the untouched observational joint over
// vars, which marginalizes by shrinking the P leaf rather than wrapping a
// Marginal around it.
type dist struct {
	vars []string
	expr algebra.Expr
}

func observationalDist(g *cgraph.Graph) dist {
	return dist{vars: g.Nodes()}
}

// render returns the expression for d's full joint.
func (d dist) render() algebra.Expr {
	if d.expr != nil {
		return d.expr
	}
	p, _ := algebra.NewP(toItems(varsOf(d.vars)), nil)
	return p
}

// marginalTo sums d down to the variables in keep. An observational dist
// stays observational over the smaller set; an explicit one is wrapped in
// a Marginal over the dropped variables.
func (d dist) marginalTo(keep []string) dist {
	kept := setIntersect(d.vars, keep)
	dropped := setDiff(d.vars, keep)
	if len(dropped) == 0 {
		return d
	}
	if d.expr == nil {
		return dist{vars: kept}
	}
	return dist{vars: kept, expr: algebra.NewMarginal(varsOf(dropped), d.expr)}
}

// conditional returns the expression for d's conditional of v given pred,
// as a quotient of the two marginals (or the bare marginal when pred is
// empty).
func (d dist) conditional(v string, pred []string) algebra.Expr {
	numer := d.marginalTo(setUnion(pred, []string{v})).render()
	if len(pred) == 0 {
		return numer
	}
	denom := d.marginalTo(pred).render()
	return algebra.NewQuotient(numer, denom)
}

func toItems(vars []symbols.Variable) []interface{} {
	out := make([]interface{}, len(vars))
	for i, v := range vars {
		out[i] = v
	}
	return out
}

// id is the recursive core of the identification procedure.
func id(y, x []string, g *cgraph.Graph, d dist) (algebra.Expr, error) {
	v := g.Nodes()

	// 1. No intervention left: sum out everything but Y.
	if len(x) == 0 {
		return d.marginalTo(y).render(), nil
	}

	// 2. Restrict to the ancestors of Y if they don't already cover V.
	ancY := g.Ancestors(y)
	if !setEqual(v, ancY) {
		return id(y, setIntersect(x, ancY), g.Subgraph(ancY), d.marginalTo(ancY))
	}

	// 3. Absorb any node whose intervention is irrelevant given Y.
	mutilated := g.RemoveIncoming(x)
	w := setDiff(setDiff(v, x), mutilated.Ancestors(y))
	if len(w) > 0 {
		return id(y, setUnion(x, w), g, d)
	}

	// 4. Split into the c-components of G[V∖X] and recurse per component.
	vMinusX := setDiff(v, x)
	comps := g.Subgraph(vMinusX).CComponents()
	if len(comps) > 1 {
		factors := make([]algebra.Expr, len(comps))
		for i, s := range comps {
			factor, err := id(s, setDiff(v, s), g, d)
			if err != nil {
				return nil, err
			}
			factors[i] = factor
		}
		return sumOver(setDiff(v, setUnion(y, x)), productOf(factors)), nil
	}

	// 5. A single c-component S = V∖X; T is the c-component of G holding it.
	s := vMinusX
	t := cComponentContaining(g.CComponents(), s[0])

	// The whole graph is one confounded component: S and the intervention
	// set are tangled in a hedge, so the query is not identifiable.
	if setEqual(t, v) {
		return algebra.NewHedge(), nil
	}

	order, err := g.TopologicalSort()
	if err != nil {
		return nil, err
	}

	// S is itself a c-component of G: its factorization is the chain-rule
	// product over S, each factor conditioned on every topological
	// predecessor, summed down to Y.
	if setEqual(s, t) {
		return sumOver(setDiff(s, y), productOf(chainFactors(d, order, toSet(s)))), nil
	}

	// S ⊊ T: recurse into G[T] carrying the chain-rule factorization of T
	// as the new distribution.
	qt := dist{
		vars: intersectPreservingOrder(order, t),
		expr: productOf(chainFactors(d, order, toSet(t))),
	}
	return id(y, setIntersect(x, t), g.Subgraph(t), qt)
}

// chainFactors builds the chain-rule factors of d restricted to the
// variables in include: for each included v, its conditional given every
// variable preceding it in order (both inside and outside include).
func chainFactors(d dist, order []string, include map[string]struct{}) []algebra.Expr {
	var factors []algebra.Expr
	for i, v := range order {
		if _, ok := include[v]; !ok {
			continue
		}
		factors = append(factors, d.conditional(v, order[:i]))
	}
	return factors
}

// intersectPreservingOrder keeps the members of keep in the order they
// appear in ordered.
func intersectPreservingOrder(ordered, keep []string) []string {
	ks := toSet(keep)
	out := make([]string, 0, len(keep))
	for _, v := range ordered {
		if _, ok := ks[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

func productOf(factors []algebra.Expr) algebra.Expr {
	if len(factors) == 1 {
		return factors[0]
	}
	return algebra.NewProduct(factors...)
}

// sumOver wraps body in a Marginal over bound, collapsing the empty sum.
func sumOver(bound []string, body algebra.Expr) algebra.Expr {
	if len(bound) == 0 {
		return body
	}
	return algebra.NewMarginal(varsOf(bound), body)
}
