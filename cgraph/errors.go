package cgraph

import "errors"

// Sentinel errors for the cgraph package; callers branch with errors.Is.
var (
	// ErrEmptyNodeID indicates an edge endpoint was the empty string.
	ErrEmptyNodeID = errors.New("cgraph: node ID is empty")

	// ErrLoopNotAllowed indicates an edge's two endpoints were identical.
	ErrLoopNotAllowed = errors.New("cgraph: self-loop not allowed")

	// ErrUnknownEdgeKind indicates AddEdge(s) received a value that is
	// neither an Edge nor a (possibly nested) slice of edges.
	ErrUnknownEdgeKind = errors.New("cgraph: value is not an edge")

	// ErrCycleDetected indicates the directed subgraph contains a cycle.
	ErrCycleDetected = errors.New("cgraph: cycle detected in directed subgraph")

	// ErrNodeNotFound indicates an operation referenced an absent node.
	ErrNodeNotFound = errors.New("cgraph: node not found")
)
