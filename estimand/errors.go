package estimand

import "errors"

// Sentinel errors for the estimand package.
var (
	// ErrOutcomeNotVariable indicates the outcome argument was not a Variable.
	ErrOutcomeNotVariable = errors.New("estimand: outcome must be a Variable")

	// ErrControlMustBeOmitted indicates a bare binary Variable was passed as
	// treatment while control was also supplied; the spec forbids this
	// shorthand from being combined with an explicit control condition.
	ErrControlMustBeOmitted = errors.New("estimand: control must be omitted when treatment is a bare Variable")

	// ErrTreatmentMustBeBinary indicates the bare-Variable treatment
	// shorthand was used on a Variable whose declared Domain is not binary.
	ErrTreatmentMustBeBinary = errors.New("estimand: bare-Variable treatment shorthand requires a binary domain")

	// ErrConditionType indicates a treatment/control/subpopulation condition
	// argument was neither a map[symbols.Variable]interface{} nor a
	// []symbols.EqualityEvent.
	ErrConditionType = errors.New("estimand: condition must be a map[symbols.Variable]interface{} or []symbols.EqualityEvent")
)
