// File: types.go
// Role: the Expr tagged interface and its variant constructors: P, Product,
// Quotient, Marginal, Expectation, Difference, Hedge. Literal lives in
// literal.go since it is parameterized by a runtime factory.
//
// AI-Hints (file):
//   - Expr is a sealed interface (private isExpr marker) so every variant
//     must be declared in this package; exhaustive switches elsewhere are
//     therefore safe against silently-added cases from outside the package.
//   - Constructors validate; the zero value of every variant struct is not
//     guaranteed to satisfy the data-model invariants (e.g. P{} has empty
//     Vars/Given, which is a valid "P()" but NewP is still preferred so
//     duplicate-detection runs uniformly).
package algebra

import (
	"sort"

	"github.com/leoware/pqp-go/symbols"
)

// Expr is the tagged interface implemented by every node in the expression
// tree. The isExpr marker is unexported, sealing the interface to this
// package.
type Expr interface {
	isExpr()
}

// P represents a probability or conditional probability P(vars | given).
// Vars is an ordered sequence of Variable/EqualityEvent; Given is an ordered
// sequence of Variable/EqualityEvent/InterventionEvent. Order is preserved
// for pretty-printing but irrelevant to structural equality (see Canonical).
type P struct {
	Vars  []interface{}
	Given []interface{}
}

func (P) isExpr() {}

// VarOf extracts the underlying Variable from an item legal inside P's Vars
// or Given slices (Variable, EqualityEvent, or InterventionEvent). Returns
// ErrTypeMismatch for anything else.
func VarOf(item interface{}) (symbols.Variable, error) {
	return varOf(item)
}

// varOf extracts the underlying Variable from an item legal inside P's Vars
// or Given slices. Returns ErrTypeMismatch for anything else.
func varOf(item interface{}) (symbols.Variable, error) {
	switch v := item.(type) {
	case symbols.Variable:
		return v, nil
	case symbols.EqualityEvent:
		return v.Var, nil
	case symbols.InterventionEvent:
		return v.GetVar(), nil
	default:
		return symbols.Variable{}, ErrTypeMismatch
	}
}

// NewP constructs a P expression, validating item kinds and rejecting
// duplicate variables across vars ∪ given (Variable(x) and any event bound
// to x count as the same variable).
//
// Returns ErrTypeMismatch if a vars item is an InterventionEvent, or if any
// item is not a Variable/EqualityEvent(/InterventionEvent for given).
// Returns ErrDuplicateVariable if the same variable appears more than once.
func NewP(vars, given []interface{}) (P, error) {
	seen := make(map[string]struct{}, len(vars)+len(given))

	for _, v := range vars {
		if _, isIntervention := v.(symbols.InterventionEvent); isIntervention {
			return P{}, ErrTypeMismatch
		}
		variable, err := varOf(v)
		if err != nil {
			return P{}, err
		}
		if _, dup := seen[variable.Name]; dup {
			return P{}, ErrDuplicateVariable
		}
		seen[variable.Name] = struct{}{}
	}

	for _, g := range given {
		variable, err := varOf(g)
		if err != nil {
			return P{}, err
		}
		if _, dup := seen[variable.Name]; dup {
			return P{}, ErrDuplicateVariable
		}
		seen[variable.Name] = struct{}{}
	}

	// Copy slices defensively; Expressions are immutable once constructed.
	varsCopy := append([]interface{}(nil), vars...)
	givenCopy := append([]interface{}(nil), given...)

	return P{Vars: varsCopy, Given: givenCopy}, nil
}

// GetVars returns the variables appearing in P.Vars together with any value
// bound by an EqualityEvent (nil if unbound).
func (p P) GetVars() map[string]interface{} {
	out := make(map[string]interface{}, len(p.Vars))
	for _, v := range p.Vars {
		switch x := v.(type) {
		case symbols.Variable:
			out[x.Name] = nil
		case symbols.EqualityEvent:
			out[x.Var.Name] = x.Value
		}
	}

	return out
}

// GetIntervenedVars returns the variables intervened upon in P.Given
// (wrapped in an InterventionEvent), together with any bound value.
func (p P) GetIntervenedVars() map[string]interface{} {
	out := make(map[string]interface{})
	for _, g := range p.Given {
		ie, ok := g.(symbols.InterventionEvent)
		if !ok {
			continue
		}
		val, bound := ie.Value()
		if bound {
			out[ie.GetVar().Name] = val
		} else {
			out[ie.GetVar().Name] = nil
		}
	}

	return out
}

// GetConditionedVars returns the variables conditioned upon in P.Given,
// excluding any under an InterventionEvent, together with any bound value.
func (p P) GetConditionedVars() map[string]interface{} {
	out := make(map[string]interface{})
	for _, g := range p.Given {
		if _, isIntervention := g.(symbols.InterventionEvent); isIntervention {
			continue
		}
		switch x := g.(type) {
		case symbols.Variable:
			out[x.Name] = nil
		case symbols.EqualityEvent:
			out[x.Var.Name] = x.Value
		}
	}

	return out
}

// HasIntervention reports whether any item in Given is an InterventionEvent.
func (p P) HasIntervention() bool {
	for _, g := range p.Given {
		if _, ok := g.(symbols.InterventionEvent); ok {
			return true
		}
	}

	return false
}

// Product represents the product of its children. Order is irrelevant to
// semantics and is preserved only for pretty-printing; it is not flattened.
type Product struct {
	Children []Expr
}

func (Product) isExpr() {}

// NewProduct constructs a Product from the given children (copied
// defensively). Nested products are not flattened.
func NewProduct(children ...Expr) Product {
	out := append([]Expr(nil), children...)
	return Product{Children: out}
}

// Quotient represents Numer / Denom.
type Quotient struct {
	Numer, Denom Expr
}

func (Quotient) isExpr() {}

// NewQuotient constructs Numer / Denom.
func NewQuotient(numer, denom Expr) Quotient {
	return Quotient{Numer: numer, Denom: denom}
}

// Marginal represents Σ_{Bound} Body: a namespace modifier that shadows its
// bound variables — substitutions for them do not descend into Body.
type Marginal struct {
	Bound []symbols.Variable
	Body  Expr
}

func (Marginal) isExpr() {}

// NewMarginal constructs a Marginal summing over bound, shadowing those
// variables inside body.
func NewMarginal(bound []symbols.Variable, body Expr) Marginal {
	out := append([]symbols.Variable(nil), bound...)
	return Marginal{Bound: out, Body: body}
}

// Expectation represents E_{Bound}[Body]: also a namespace modifier,
// semantically equal to Σ_{v ∈ domain(Bound)} v · Body[Bound := v].
type Expectation struct {
	Bound symbols.Variable
	Body  Expr
}

func (Expectation) isExpr() {}

// NewExpectation constructs E_{bound}[body].
func NewExpectation(bound symbols.Variable, body Expr) Expectation {
	return Expectation{Bound: bound, Body: body}
}

// Difference represents A - B.
type Difference struct {
	A, B Expr
}

func (Difference) isExpr() {}

// NewDifference constructs A - B.
func NewDifference(a, b Expr) Difference {
	return Difference{A: a, B: b}
}

// Hedge is the sentinel meaning "identification failed". Any expression
// containing a Hedge anywhere in its tree is itself un-estimatable.
type Hedge struct{}

func (Hedge) isExpr() {}

// NewHedge returns the Hedge sentinel value.
func NewHedge() Hedge { return Hedge{} }

// ContainsHedge reports whether e or any of its descendants is a Hedge.
func ContainsHedge(e Expr) bool {
	found := false
	visit := func(n Expr) Expr {
		if _, ok := n.(Hedge); ok {
			found = true
		}
		return n
	}
	RMap(e, visit)

	return found
}

// sortStrings is a tiny local alias kept for readability at call sites that
// canonicalize string-keyed slices; FreeVariables in traverse.go uses it to
// order its result by name.
func sortStrings(ss []string) {
	sort.Strings(ss)
}
