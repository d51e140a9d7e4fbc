// Package core provides the AdjacencyView representation for Graph.
// It snapshots, per vertex, the sorted list of neighbor identifiers so that
// algorithms can run merge-intersections without re-sorting.
package core

// AdjacencyView is an immutable per-vertex neighbor listing.
//
// Lists exclude self-loops and keep one entry per parallel edge, sorted
// ascending. The view never observes later mutations of its Graph.
type AdjacencyView struct {
	lists [][]int
}

// Adjacency snapshots the graph into an AdjacencyView.
// Sorting happens once here, so every later lookup is O(1).
// Complexity: O(V + E·log Δ).
func (g *Graph) Adjacency() *AdjacencyView {
	g.mu.RLock()
	defer g.mu.RUnlock()

	view := &AdjacencyView{lists: make([][]int, g.vertexCount)}
	for v := 0; v < g.vertexCount; v++ {
		view.lists[v] = g.sortedNeighbors(v)
	}

	return view
}

// Neighbors returns the sorted neighbor list of v, or nil if v is out of range.
// The slice is shared with the view and MUST NOT be modified.
func (a *AdjacencyView) Neighbors(v int) []int {
	if v < 0 || v >= len(a.lists) {
		return nil
	}

	return a.lists[v]
}

// VertexCount returns the number of vertices captured by the view.
func (a *AdjacencyView) VertexCount() int {
	return len(a.lists)
}
