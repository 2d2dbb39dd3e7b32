package estimate

import "errors"

// Sentinel errors for the estimate package.
var (
	// ErrNotDiscreteDomain indicates an observed variable has a non-discrete
	// (real) Domain and coerce is disabled, so it cannot be counted over.
	ErrNotDiscreteDomain = errors.New("estimate: variable has a non-discrete domain; pass WithCoerce(true) or quantize it first")

	// ErrObservedNotSubset indicates WithObserved named a column not present
	// in the estimator's View.
	ErrObservedNotSubset = errors.New("estimate: observed variables must be a subset of the view's columns")

	// ErrFreeVariable indicates an expression still contains an unbound
	// Variable (either outside the observed set, or never assigned a value)
	// at the point estimation was attempted.
	ErrFreeVariable = errors.New("estimate: expression contains an unbound free variable")

	// ErrUnidentifiedIntervention indicates a P's given still contains an
	// InterventionEvent; the expression must be identified before it can be
	// estimated.
	ErrUnidentifiedIntervention = errors.New("estimate: expression still contains an intervention; identify it first")

	// ErrHedge indicates the expression contains a Hedge (identification
	// failure sentinel) and therefore cannot be estimated.
	ErrHedge = errors.New("estimate: expression contains a Hedge and cannot be estimated")

	// ErrUnsupportedExpr indicates the expression contains a node kind the
	// estimator does not evaluate (e.g. a Literal).
	ErrUnsupportedExpr = errors.New("estimate: expression contains a node kind the estimator cannot evaluate")

	// ErrPositivity indicates a zero denominator was encountered: either a
	// P's conditioning set had zero observations and zero prior, or a
	// Quotient's denominator evaluated to zero.
	ErrPositivity = errors.New("estimate: zero denominator (positivity violated)")

	// ErrNumerical indicates an Expectation's probabilities did not sum to
	// ~1 within tolerance, signaling a likely domain or identification bug.
	ErrNumerical = errors.New("estimate: probabilities did not sum to 1 within tolerance")

	// ErrMissingValue indicates an EstimationResult has no "value" entry,
	// which should be unreachable given how Estimate constructs results.
	ErrMissingValue = errors.New("estimate: result has no recorded value")
)
