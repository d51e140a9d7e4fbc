// File: methods_adjacent.go
// Role: Neighborhood queries: Neighbors/IncidentEdges.
// Determinism:
//   - Neighbors(v) is sorted ascending; parallel edges repeat the neighbor.
//   - IncidentEdges(v) is sorted by edge ID.
// Concurrency:
//   - Read lock on mu; returned slices are fresh copies.

package core

import "sort"

// Neighbors returns the sorted neighbor identifiers of v. Self-loops are
// skipped; a neighbor joined by k parallel edges appears k times.
//
// Returns ErrVertexOutOfRange for an unknown vertex.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasVertex(v) {
		return nil, g.rangeError(v)
	}

	return g.sortedNeighbors(v), nil
}

// IncidentEdges returns the IDs of all edges touching v, ascending.
// A self-loop is listed once.
//
// Returns ErrVertexOutOfRange for an unknown vertex.
// Complexity: O(d).
func (g *Graph) IncidentEdges(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasVertex(v) {
		return nil, g.rangeError(v)
	}
	out := make([]int, len(g.incident[v]))
	copy(out, g.incident[v]) // insertion order is already ascending by ID

	return out, nil
}

// sortedNeighbors builds the loop-free sorted neighbor list of v; callers hold mu.
func (g *Graph) sortedNeighbors(v int) []int {
	out := make([]int, 0, len(g.incident[v]))
	var eid int
	for _, eid = range g.incident[v] {
		e := g.edges[eid]
		if e.From == e.To {
			continue
		}
		out = append(out, e.Other(v))
	}
	sort.Ints(out)

	return out
}
