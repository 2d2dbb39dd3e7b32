package cgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoware/pqp-go/cgraph"
)

func backdoorGraph(t *testing.T) *cgraph.Graph {
	t.Helper()
	g := cgraph.NewGraph()
	require.NoError(t, g.AddEdges(
		cgraph.Chain("z", "x", "y"),
		cgraph.Bidirected("x", "y"),
	))
	return g
}

func TestAddEdges_FlattensNestedSlices(t *testing.T) {
	g := cgraph.NewGraph()
	err := g.AddEdges([]interface{}{
		cgraph.Directed("a", "b"),
		[]cgraph.DirectedEdge{cgraph.Directed("b", "c")},
		cgraph.Bidirected("a", "c"),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "b", "c"}, g.Nodes())
	assert.Equal(t, []string{"b"}, g.DirectedChildren("a"))
	assert.Equal(t, []string{"a"}, g.DirectedParents("b"))
}

func TestAddEdge_RejectsSelfLoop(t *testing.T) {
	g := cgraph.NewGraph()
	err := g.AddEdge(cgraph.Directed("a", "a"))
	assert.ErrorIs(t, err, cgraph.ErrLoopNotAllowed)
}

func TestAncestorsAndDescendants_ReflexiveClosure(t *testing.T) {
	g := backdoorGraph(t)

	assert.ElementsMatch(t, []string{"z", "x"}, g.Ancestors([]string{"x"}))
	assert.ElementsMatch(t, []string{"x", "y"}, g.Descendants([]string{"x"}))
}

func TestCComponents_BidirectedOnly(t *testing.T) {
	g := backdoorGraph(t)

	comps := g.CComponents()

	var xy, z []string
	for _, c := range comps {
		if len(c) == 2 {
			xy = c
		} else {
			z = c
		}
	}
	assert.ElementsMatch(t, []string{"x", "y"}, xy)
	assert.Equal(t, []string{"z"}, z)
}

func TestRemoveIncoming_DeletesEdgesIntoX(t *testing.T) {
	g := backdoorGraph(t)

	mutilated := g.RemoveIncoming([]string{"x"})

	assert.Empty(t, mutilated.DirectedParents("x"))
	assert.Equal(t, []string{"y"}, mutilated.DirectedChildren("x"))
	// bidirected edges survive mutilation
	assert.Equal(t, []string{"y"}, mutilated.BidirectedNeighbors("x"))
}

func TestRemoveOutgoing_DeletesEdgesOutOfX(t *testing.T) {
	g := backdoorGraph(t)

	mutilated := g.RemoveOutgoing([]string{"x"})

	assert.Empty(t, mutilated.DirectedChildren("x"))
	assert.Empty(t, mutilated.DirectedParents("y"))
}

func TestSubgraph_RestrictsNodesAndEdges(t *testing.T) {
	g := backdoorGraph(t)

	sub := g.Subgraph([]string{"x", "y"})

	assert.ElementsMatch(t, []string{"x", "y"}, sub.Nodes())
	assert.Equal(t, []string{"y"}, sub.DirectedChildren("x"))
	assert.Empty(t, sub.DirectedParents("x"))
}

func TestTopologicalSort_OrdersByDependency(t *testing.T) {
	g := backdoorGraph(t)

	order, err := g.TopologicalSort()
	require.NoError(t, err)

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	assert.Less(t, pos["z"], pos["x"])
	assert.Less(t, pos["x"], pos["y"])
}

func TestTopologicalSort_DetectsCycle(t *testing.T) {
	g := cgraph.NewGraph()
	require.NoError(t, g.AddEdges(cgraph.Directed("a", "b"), cgraph.Directed("b", "a")))

	_, err := g.TopologicalSort()
	assert.ErrorIs(t, err, cgraph.ErrCycleDetected)
}

func TestDFS_EnumeratesAllSimplePaths(t *testing.T) {
	g := cgraph.NewGraph()
	require.NoError(t, g.AddEdges(
		cgraph.Directed("a", "b"),
		cgraph.Directed("a", "c"),
		cgraph.Directed("b", "d"),
		cgraph.Directed("c", "d"),
	))

	paths, err := g.DFS("a", "d")
	require.NoError(t, err)

	assert.ElementsMatch(t, [][]string{{"a", "b", "d"}, {"a", "c", "d"}}, paths)
}

func TestDFS_UnknownNodeErrors(t *testing.T) {
	g := cgraph.NewGraph()
	require.NoError(t, g.AddEdge(cgraph.Directed("a", "b")))

	_, err := g.DFS("a", "z")
	assert.ErrorIs(t, err, cgraph.ErrNodeNotFound)
}

func TestDFS_TrivialPathWhenStartEqualsEnd(t *testing.T) {
	g := cgraph.NewGraph()
	require.NoError(t, g.AddEdge(cgraph.Directed("a", "b")))

	paths, err := g.DFS("a", "a")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a"}}, paths)
}

func TestDFS_NoPathAgainstEdgeDirection(t *testing.T) {
	g := cgraph.NewGraph()
	require.NoError(t, g.AddEdges(cgraph.Chain("a", "b", "c")))

	paths, err := g.DFS("c", "a")
	require.NoError(t, err)
	assert.Empty(t, paths)
}
