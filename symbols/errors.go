package symbols

import "errors"

// Sentinel errors for the symbols package. Callers MUST use errors.Is to
// branch on semantics; messages are not part of the contract.
var (
	// ErrEmptyName indicates a Variable was constructed with an empty identifier.
	ErrEmptyName = errors.New("symbols: variable name is empty")

	// ErrDoubleIntervene indicates do(do(.)) was attempted; nesting interventions
	// is forbidden by the data model.
	ErrDoubleIntervene = errors.New("symbols: cannot intervene on an intervention")

	// ErrValueIsVariable indicates an EqualityEvent or assignment attempted to
	// bind a Variable to another Variable; values must be concrete.
	ErrValueIsVariable = errors.New("symbols: value must not be a variable")

	// ErrEmptyDomain indicates a Categorical domain was constructed with zero
	// values, or an Integer or Real domain with min > max.
	ErrEmptyDomain = errors.New("symbols: domain has no values")

	// ErrDomainValidation indicates a value is not a member of a Variable's
	// declared Domain.
	ErrDomainValidation = errors.New("symbols: value not in domain")

	// ErrNotDiscrete indicates EnumerateValues was requested on a Real
	// (continuous) domain, which has no finite enumeration.
	ErrNotDiscrete = errors.New("symbols: domain is not discrete")

	// ErrInvalidEventInner indicates an InterventionEvent was constructed
	// from something other than a Variable or an EqualityEvent.
	ErrInvalidEventInner = errors.New("symbols: intervention must wrap a variable or an equality event")
)
