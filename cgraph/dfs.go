// File: dfs.go
// Role: DFS(start, end) — an explicit enumeration of every simple directed
// path from start to end, over the directed subgraph only.
package cgraph

// DFS returns every simple directed path from start to end (inclusive of
// both endpoints), as a sequence of node-ID slices. Returns ErrNodeNotFound
// if either endpoint is absent from g. A start equal to end yields the
// single trivial path [start].
func (g *Graph) DFS(start, end string) ([][]string, error) {
	if !g.HasNode(start) || !g.HasNode(end) {
		return nil, ErrNodeNotFound
	}

	var paths [][]string
	visited := make(map[string]bool)
	path := []string{start}
	visited[start] = true

	var walk func(node string)
	walk = func(node string) {
		if node == end {
			found := make([]string, len(path))
			copy(found, path)
			paths = append(paths, found)
			return
		}
		for _, next := range g.DirectedChildren(node) {
			if visited[next] {
				continue
			}
			visited[next] = true
			path = append(path, next)
			walk(next)
			path = path[:len(path)-1]
			visited[next] = false
		}
	}
	walk(start)

	return paths, nil
}
