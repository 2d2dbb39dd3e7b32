// Package symbols defines the atomic values of the causal-inference engine:
// Variable, Domain, and the Event hierarchy (EqualityEvent, InterventionEvent).
//
// Variables and Domains are immutable once constructed and are shared by
// reference across the expression algebra and the graph. Two Variables are
// equal iff their names are equal; a Domain carries no identity of its own,
// it is metadata attached to a Variable.
//
// Errors:
//
//	ErrEmptyName       - a Variable was constructed with an empty name.
//	ErrDoubleIntervene - InterventionEvent wrapped another InterventionEvent.
//	ErrValueIsVariable - an event or assignment tried to bind a Variable to
//	                     another Variable as its value.
//	ErrEmptyDomain     - a Categorical domain was constructed with no values, or
//	                     an Integer/Real domain with min > max.
//	ErrDomainValidation - a value fell outside a Variable's declared Domain.
package symbols
