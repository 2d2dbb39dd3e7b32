// Package cgraph defines the causal graph: a set of variable nodes plus two
// edge multisets, directed (causal influence) and bidirected (latent
// common cause). It is the structural substrate the identification
// algorithm manipulates: ancestor/descendant closures, c-components,
// mutilated-graph construction (removing incoming or outgoing edges at a
// node set), subgraph restriction, and topological ordering.
//
// Graph is mutable only during construction (AddEdge/AddEdges); every
// identification operation treats it as read-only and returns a new Graph
// rather than mutating its receiver. Two separate locks guard vertices and
// edges respectively, mirroring how a graph under concurrent construction
// from multiple goroutines would be made safe, even though identification
// itself never mutates concurrently.
//
// Errors:
//
//	ErrEmptyNodeID   - a node/edge endpoint is the empty string.
//	ErrLoopNotAllowed - an edge's endpoints are identical.
//	ErrUnknownEdgeKind - AddEdge(s) received something that is not an Edge.
//	ErrCycleDetected  - TopologicalSort found a cycle in the directed subgraph.
//	ErrNodeNotFound   - an operation referenced a node absent from the graph.
package cgraph
