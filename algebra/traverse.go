// File: traverse.go
// Role: the two recursive-map primitives (RMap, RAdaptMap) and the
// substitution operations (Assign, Intervene, FreeVariables) built on top
// of them.
//
// AI-Hints (file):
//   - RAdaptMap here is an explicit-accumulator rendering of the "adaptive"
//     traversal: instead of threading a pair of (post-transform, next-level
//     function) closures through every node as the original decorator-based
//     design does, the set of currently-shadowed variable names is carried
//     down as a plain argument and f is consulted at every rebuilt node. The
//     two are behaviourally equivalent for capture-avoiding substitution;
//     the explicit accumulator is the more direct Go idiom.
package algebra

import (
	"github.com/leoware/pqp-go/symbols"
)

// RMap applies f bottom-up to every node of e: children are mapped first,
// the node is rebuilt from the mapped children, and f is applied to the
// rebuilt node. Leaves (P, Hedge) are passed to f directly.
func RMap(e Expr, f func(Expr) Expr) Expr {
	switch x := e.(type) {
	case P:
		return f(x)
	case Product:
		children := make([]Expr, len(x.Children))
		for i, c := range x.Children {
			children[i] = RMap(c, f)
		}
		return f(Product{Children: children})
	case Quotient:
		return f(Quotient{Numer: RMap(x.Numer, f), Denom: RMap(x.Denom, f)})
	case Marginal:
		return f(Marginal{Bound: x.Bound, Body: RMap(x.Body, f)})
	case Expectation:
		return f(Expectation{Bound: x.Bound, Body: RMap(x.Body, f)})
	case Difference:
		return f(Difference{A: RMap(x.A, f), B: RMap(x.B, f)})
	case Literal:
		args := make([]Expr, len(x.Args))
		for i, a := range x.Args {
			args[i] = RMap(a, f)
		}
		return f(Literal{Factory: x.Factory, Args: args})
	case Hedge:
		return f(x)
	case varSet:
		return f(x)
	default:
		return e
	}
}

// blocked is the set of variable names shadowed by an enclosing Marginal or
// Expectation on the current path.
type blocked map[string]struct{}

func (b blocked) with(names ...string) blocked {
	out := make(blocked, len(b)+len(names))
	for k := range b {
		out[k] = struct{}{}
	}
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}

func (b blocked) has(name string) bool {
	_, ok := b[name]
	return ok
}

// AdaptFn is consulted at every rebuilt node during RAdaptMap, together with
// the set of variable names currently shadowed by an enclosing namespace
// modifier on the path from the root.
type AdaptFn func(node Expr, shadowed map[string]struct{}) (Expr, error)

// RAdaptMap recurses through e bottom-up like RMap, but additionally tracks
// the set of variables shadowed by any enclosing Marginal/Expectation and
// lets f veto or rewrite a node given that set. This is the mechanism behind
// Assign and Intervene: at a namespace modifier binding the variable being
// substituted, f refuses to rewrite Body's occurrences and the modifier
// node is returned as a structural copy of itself instead.
func RAdaptMap(e Expr, f AdaptFn) (Expr, error) {
	return radaptMap(e, blocked{}, f)
}

func radaptMap(e Expr, b blocked, f AdaptFn) (Expr, error) {
	switch x := e.(type) {
	case P:
		return f(x, b)
	case Product:
		children := make([]Expr, len(x.Children))
		for i, c := range x.Children {
			rc, err := radaptMap(c, b, f)
			if err != nil {
				return nil, err
			}
			children[i] = rc
		}
		return f(Product{Children: children}, b)
	case Quotient:
		n, err := radaptMap(x.Numer, b, f)
		if err != nil {
			return nil, err
		}
		d, err := radaptMap(x.Denom, b, f)
		if err != nil {
			return nil, err
		}
		return f(Quotient{Numer: n, Denom: d}, b)
	case Marginal:
		names := make([]string, len(x.Bound))
		for i, v := range x.Bound {
			names[i] = v.Name
		}
		body, err := radaptMap(x.Body, b.with(names...), f)
		if err != nil {
			return nil, err
		}
		return f(Marginal{Bound: x.Bound, Body: body}, b)
	case Expectation:
		body, err := radaptMap(x.Body, b.with(x.Bound.Name), f)
		if err != nil {
			return nil, err
		}
		return f(Expectation{Bound: x.Bound, Body: body}, b)
	case Difference:
		a, err := radaptMap(x.A, b, f)
		if err != nil {
			return nil, err
		}
		bb, err := radaptMap(x.B, b, f)
		if err != nil {
			return nil, err
		}
		return f(Difference{A: a, B: bb}, b)
	case Literal:
		args := make([]Expr, len(x.Args))
		for i, a := range x.Args {
			ra, err := radaptMap(a, b, f)
			if err != nil {
				return nil, err
			}
			args[i] = ra
		}
		return f(Literal{Factory: x.Factory, Args: args}, b)
	case Hedge:
		return f(x, b)
	case varSet:
		return f(x, b)
	default:
		return nil, ErrUnknownExpressionKind
	}
}

// Assign substitutes value for var throughout e: every bare Variable(var)
// occurrence at a P leaf becomes EqualityEvent(var, value), and every
// InterventionEvent(Variable(var)) becomes InterventionEvent(EqualityEvent
// (var, value)). Assignment does not descend through a Marginal or
// Expectation that binds var. Returns ErrValueIsVariable if value is itself
// a Variable, and ErrContradiction if var is already conditioned under a
// different constraint at some leaf.
func Assign(e Expr, v symbols.Variable, value interface{}) (Expr, error) {
	if _, isVar := value.(symbols.Variable); isVar {
		return nil, ErrValueIsVariable
	}

	return RAdaptMap(e, func(node Expr, shadowed map[string]struct{}) (Expr, error) {
		p, isP := node.(P)
		if !isP {
			return node, nil
		}
		if _, ok := shadowed[v.Name]; ok {
			return p, nil
		}
		return assignInP(p, v, value)
	})
}

func assignInP(p P, v symbols.Variable, value interface{}) (P, error) {
	vars := make([]interface{}, len(p.Vars))
	for i, item := range p.Vars {
		if x, ok := item.(symbols.Variable); ok && x.Name == v.Name {
			ev, err := symbols.NewEqualityEvent(x, value)
			if err != nil {
				return P{}, err
			}
			vars[i] = ev
			continue
		}
		vars[i] = item
	}

	given := make([]interface{}, len(p.Given))
	for i, item := range p.Given {
		switch x := item.(type) {
		case symbols.Variable:
			if x.Name == v.Name {
				ev, err := symbols.NewEqualityEvent(x, value)
				if err != nil {
					return P{}, err
				}
				given[i] = ev
				continue
			}
			given[i] = x
		case symbols.EqualityEvent:
			if x.Var.Name == v.Name && x.Value != value {
				return P{}, ErrContradiction
			}
			given[i] = x
		case symbols.InterventionEvent:
			if x.GetVar().Name == v.Name {
				if cur, isBound := x.Value(); isBound && cur == value {
					given[i] = x
					continue
				}
				bound, err := x.Assign(value)
				if err != nil {
					return P{}, ErrContradiction
				}
				given[i] = bound
				continue
			}
			given[i] = x
		default:
			given[i] = item
		}
	}

	return P{Vars: vars, Given: given}, nil
}

// Intervene applies do(var) throughout e: every bare Variable(var) or
// EqualityEvent(var, ...) occurrence in a P's Given becomes wrapped in an
// InterventionEvent, leaving Vars and already-intervened occurrences
// untouched. Intervention does not descend through a Marginal or
// Expectation that binds var.
func Intervene(e Expr, v symbols.Variable) (Expr, error) {
	out, err := RAdaptMap(e, func(node Expr, shadowed map[string]struct{}) (Expr, error) {
		p, isP := node.(P)
		if !isP {
			return node, nil
		}
		if _, ok := shadowed[v.Name]; ok {
			return p, nil
		}
		return intervenePIn(p, v)
	})

	return out, err
}

func intervenePIn(p P, v symbols.Variable) (P, error) {
	given := make([]interface{}, len(p.Given))
	for i, item := range p.Given {
		var name string
		matches := false
		switch x := item.(type) {
		case symbols.Variable:
			name, matches = x.Name, true
		case symbols.EqualityEvent:
			name, matches = x.Var.Name, true
		case symbols.InterventionEvent:
			matches = false
		default:
			matches = false
		}

		if matches && name == v.Name {
			ie, err := symbols.NewInterventionEvent(item)
			if err != nil {
				return P{}, err
			}
			given[i] = ie
			continue
		}
		given[i] = item
	}

	return P{Vars: append([]interface{}(nil), p.Vars...), Given: given}, nil
}

// FreeVariables returns every variable appearing unbound (as a bare
// Variable, whether plain or under an InterventionEvent) at a P leaf of e,
// excluding any shadowed by an enclosing Marginal/Expectation.
func FreeVariables(e Expr) []symbols.Variable {
	out := make(map[string]symbols.Variable)
	freeVarsRec(e, blocked{}, out)

	names := make([]string, 0, len(out))
	for name := range out {
		names = append(names, name)
	}
	sortStrings(names)

	result := make([]symbols.Variable, len(names))
	for i, name := range names {
		result[i] = out[name]
	}
	return result
}

func freeVarsRec(e Expr, b blocked, out map[string]symbols.Variable) {
	switch x := e.(type) {
	case P:
		collectFreeItems(x.Vars, b, out)
		collectFreeItems(x.Given, b, out)
	case Product:
		for _, c := range x.Children {
			freeVarsRec(c, b, out)
		}
	case Quotient:
		freeVarsRec(x.Numer, b, out)
		freeVarsRec(x.Denom, b, out)
	case Marginal:
		names := make([]string, len(x.Bound))
		for i, v := range x.Bound {
			names[i] = v.Name
		}
		freeVarsRec(x.Body, b.with(names...), out)
	case Expectation:
		freeVarsRec(x.Body, b.with(x.Bound.Name), out)
	case Difference:
		freeVarsRec(x.A, b, out)
		freeVarsRec(x.B, b, out)
	case Literal:
		for _, a := range x.Args {
			freeVarsRec(a, b, out)
		}
	case Hedge:
		return
	}
}

func collectFreeItems(items []interface{}, b blocked, out map[string]symbols.Variable) {
	for _, item := range items {
		switch x := item.(type) {
		case symbols.Variable:
			if !b.has(x.Name) {
				out[x.Name] = x
			}
		case symbols.InterventionEvent:
			if inner, ok := x.Inner.(symbols.Variable); ok && !b.has(inner.Name) {
				out[inner.Name] = inner
			}
		}
	}
}
