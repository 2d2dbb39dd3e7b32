package algebra

import "errors"

// Sentinel errors for the algebra package. As with the rest of the engine,
// callers branch with errors.Is; messages are not part of the contract.
var (
	// ErrDuplicateVariable indicates a variable appeared twice across a P's
	// combined vars ∪ given (Variable(x) and any event bound to x count as
	// the same variable for this check).
	ErrDuplicateVariable = errors.New("algebra: duplicate variable in P")

	// ErrTypeMismatch indicates a constructor received an argument of the
	// wrong kind (e.g. an InterventionEvent inside P.Vars).
	ErrTypeMismatch = errors.New("algebra: argument has the wrong type")

	// ErrContradiction indicates Assign attempted to bind a variable that is
	// already constrained to a different value.
	ErrContradiction = errors.New("algebra: conflicting assignment to variable")

	// ErrUnsupportedJSONKind indicates the JSON codec was asked to encode a
	// Difference, Expectation, or Literal node (none of which are part of the
	// stable wire format), or a P holding an event rather than a bare
	// Variable. The decoder reports any tag outside the wire format as
	// ErrUnknownExpressionKind instead.
	ErrUnsupportedJSONKind = errors.New("algebra: expression kind has no JSON form")

	// ErrUnknownExpressionKind indicates a traversal or the JSON decoder
	// encountered a tag it does not recognize.
	ErrUnknownExpressionKind = errors.New("algebra: unknown expression kind")

	// ErrValueIsVariable indicates Assign was asked to bind a variable to
	// another Variable as its value, which is never permitted.
	ErrValueIsVariable = errors.New("algebra: assigned value must not be a variable")
)
