// Package algebra implements the expression tree used to represent causal
// queries and their identification results: probabilities, products,
// quotients, marginal sums, expectations, differences, named literals, and
// the Hedge failure sentinel.
//
// Expressions are immutable once constructed; every transformation (Assign,
// Intervene, RMap, RAdaptMap) returns a freshly built tree. Structural
// equality is defined over a canonical form (children of commutative nodes
// sorted lexicographically by their ASCII string); canonicalization is
// value-preserving, it never rewrites algebraic identities.
//
// What:
//   - Expr: the tagged interface implemented by P, Product, Quotient,
//     Marginal, Expectation, Difference, Hedge, and generated Literal types.
//   - Canonical(e) / Equal(a, b): structural equality up to commutative
//     reordering.
//   - RMap(e, f) / RAdaptMap(e, f): bottom-up recursive traversal, the
//     latter with namespace-modifier-aware shadowing for capture-avoiding
//     substitution.
//   - Assign(e, var, val) / Intervene(e, var): the two substitution
//     primitives built on top of RAdaptMap.
//   - FreeVariables(e): variables appearing at P leaves, minus those
//     shadowed by an enclosing Marginal/Expectation.
//   - ASCII(e) / Latex(e): pretty printers.
//   - MarshalJSON/ParseJSON: the stable wire format for {P, Product,
//     Quotient, Marginal, Hedge} (Difference/Expectation/Literal are
//     in-process only, per spec's Open Question).
//
// Errors:
//
//	ErrDuplicateVariable   - a variable appears twice across P's vars+given.
//	ErrTypeMismatch        - a constructor received the wrong kind of argument.
//	ErrContradiction       - Assign attempted to rebind a var already bound
//	                         to a different value via an event.
//	ErrUnsupportedJSONKind - JSON codec encountered Difference/Expectation/Literal.
//	ErrUnknownExpressionKind - ParseJSON or a traversal saw an unrecognized tag.
package algebra
