// Package ledger is the provenance/assumption bookkeeping layer shared by
// identification and estimation: Step records what happened during a single
// entrypoint call (log entries, assumptions, derived values), Operation
// captures how a Result was produced (a stable function identifier plus its
// arguments), and Result pairs a Step with an Operation and with whatever
// other Results it consumed, forming a dependency DAG that can be
// toposorted and explained.
//
// Errors:
//
//	ErrReservedKey   - a Step tried to record a derived key named
//	                   "operation" or "step".
//	ErrUnexpectedKey - a Result received a derived key outside the
//	                   allowedKeys whitelist passed to NewResult/Entrypoint.
//	ErrCyclicResults - NestedDependencies found a cycle in the Result DAG.
package ledger
