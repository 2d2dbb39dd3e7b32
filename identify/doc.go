// Package identify implements the Shpitser–Pearl ID algorithm for
// unconditional interventional queries and its conditional extension IDC,
// plus a generic entry point that walks an arbitrary expression tree and
// identifies every InterventionEvent-bearing P leaf it finds.
//
// There is no prior-art reference implementation to port here: the
// upstream project's identifier is a compiled extension with no portable
// source, so ID/IDC are built directly off the algorithm's published
// recursive structure, in the style of this module's graph package (plain
// recursive functions over sorted node-ID slices, no hidden global state).
//
// What:
//   - ID(y, x, g): the unconditional identification algorithm.
//   - IDC(y, x, z, g): the conditional extension (reduces Z into X via
//     repeated d-separation tests, then falls back to ID).
//   - Identify(expr, g): walks expr bottom-up, replacing every P leaf that
//     carries an InterventionEvent with its IDC result, memoized by
//     (sorted Y, sorted X, sorted Z).
//
// Errors:
//
//	cgraph.ErrCycleDetected - the directed subgraph is not acyclic.
package identify
