// Package estimand represents causal queries — ATE, CATE, and arbitrary
// Generic expressions — as Estimand values: each knows how to render itself
// both as an algebra.Expr (its defining formula, passed to identify.Identify)
// and as a short algebra.Expr literal (ATE(y | x), for display).
//
// Errors:
//
//	ErrOutcomeNotVariable  - outcome argument was not a symbols.Variable.
//	ErrControlMustBeOmitted - bare-Variable treatment shorthand combined
//	                          with an explicit control condition.
//	ErrTreatmentMustBeBinary - bare-Variable treatment shorthand used on a
//	                          non-binary Variable.
//	ErrConditionType       - a condition argument was neither a
//	                          map[symbols.Variable]interface{} nor a
//	                          []symbols.EqualityEvent.
package estimand
