// File: dsep.go
// Role: d-separation test for a mixed directed/bidirected graph, used by
// IDC to decide whether a conditioned variable can be moved into the
// intervention set. Implemented via the standard augmented-DAG
// construction: every bidirected edge A↔B becomes a fresh latent node with
// edges latent→A and latent→B, after which ordinary moralization-based
// d-separation applies (ancestral subgraph of the query nodes, marry
// parents, drop edge direction, delete the conditioning nodes, test
// connectivity).
package identify

import (
	"fmt"

	"github.com/leoware/pqp-go/cgraph"
)

func augmentedDAG(g *cgraph.Graph) *cgraph.Graph {
	out := cgraph.NewGraph()
	nodes := g.Nodes()
	for _, n := range nodes {
		_ = out.AddNode(n)
	}
	for _, from := range nodes {
		for _, to := range g.DirectedChildren(from) {
			_ = out.AddEdge(cgraph.Directed(from, to))
		}
	}

	latentIdx := 0
	seen := make(map[string]bool)
	for _, a := range nodes {
		for _, b := range g.BidirectedNeighbors(a) {
			if seen[b+"\x00"+a] {
				continue
			}
			seen[a+"\x00"+b] = true
			latent := fmt.Sprintf("\x00latent:%d", latentIdx)
			latentIdx++
			_ = out.AddNode(latent)
			_ = out.AddEdge(cgraph.Directed(latent, a))
			_ = out.AddEdge(cgraph.Directed(latent, b))
		}
	}

	return out
}

// dSeparated reports whether a and b are d-separated given c in g.
func dSeparated(g *cgraph.Graph, a, b, c []string) bool {
	aug := augmentedDAG(g)

	query := setUnion(setUnion(a, b), c)
	anc := aug.Ancestors(query)
	ancSet := toSet(anc)

	adj := make(map[string]map[string]struct{}, len(anc))
	for _, n := range anc {
		adj[n] = make(map[string]struct{})
	}
	connect := func(u, v string) {
		if u == v {
			return
		}
		if _, ok := ancSet[u]; !ok {
			return
		}
		if _, ok := ancSet[v]; !ok {
			return
		}
		adj[u][v] = struct{}{}
		adj[v][u] = struct{}{}
	}

	for _, n := range anc {
		parents := aug.DirectedParents(n)
		for _, p := range parents {
			connect(p, n)
		}
		for i := 0; i < len(parents); i++ {
			for j := i + 1; j < len(parents); j++ {
				connect(parents[i], parents[j])
			}
		}
	}

	cSet := toSet(c)
	for n := range cSet {
		delete(adj, n)
		for _, nbrs := range adj {
			delete(nbrs, n)
		}
	}

	visited := make(map[string]struct{})
	var stack []string
	for _, start := range a {
		if _, blocked := cSet[start]; blocked {
			continue
		}
		if _, ok := adj[start]; ok {
			stack = append(stack, start)
			visited[start] = struct{}{}
		}
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, bNode := range b {
			if n == bNode {
				return false
			}
		}
		for next := range adj[n] {
			if _, ok := visited[next]; !ok {
				visited[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}

	return true
}
