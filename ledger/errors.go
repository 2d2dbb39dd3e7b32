package ledger

import "errors"

// Sentinel errors for the ledger package.
var (
	// ErrReservedKey indicates a Step tried to record a derived result
	// under the reserved key "operation" or "step".
	ErrReservedKey = errors.New("ledger: \"operation\" and \"step\" are reserved result keys")

	// ErrUnexpectedKey indicates a Result received a derived key that is not
	// in the allowedKeys whitelist passed to NewResult.
	ErrUnexpectedKey = errors.New("ledger: result key not in whitelist")

	// ErrCyclicResults indicates NestedDependencies found a cycle in the
	// Result dependency graph.
	ErrCyclicResults = errors.New("ledger: cyclic result dependency graph")
)
