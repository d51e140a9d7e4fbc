// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/Edges/EdgeCount/HasEdge,
//       plus pair lookups EdgeID/EdgeIDs/Multiplicity.
// Determinism:
//   - Edge IDs are dense and assigned in insertion order (0,1,2,...).
//   - EdgeID(u,v) always resolves to the lowest ID joining u and v.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "fmt"

// AddEdge appends an undirected edge {from,to} and returns its identifier,
// which equals EdgeCount() before the call.
//
// Steps:
//  1. Validate both endpoints are in range.
//  2. Reject loops unless WithLoops was given.
//  3. Reject parallel edges unless WithMultiEdges was given.
//  4. Store the edge, index its pair, record incidence.
//
// Returns ErrVertexOutOfRange, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Input validation
	if !g.hasVertex(from) {
		return 0, g.rangeError(from)
	}
	if !g.hasVertex(to) {
		return 0, g.rangeError(to)
	}
	if from == to && !g.allowLoops { // loop constraint
		return 0, fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, from)
	}

	key := keyOf(from, to)
	if !g.allowMulti && len(g.pairs[key]) > 0 { // multi-edge existence check
		return 0, fmt.Errorf("%w: {%d,%d}", ErrMultiEdgeNotAllowed, from, to)
	}

	// 2) Store and link
	eid := len(g.edges)
	g.edges = append(g.edges, Edge{ID: eid, From: from, To: to})
	g.pairs[key] = append(g.pairs[key], eid)
	g.incident[from] = append(g.incident[from], eid)
	if from != to {
		g.incident[to] = append(g.incident[to], eid)
	}

	return eid, nil
}

// Edge returns the edge with identifier eid.
//
// Returns ErrEdgeNotFound if eid is outside [0, EdgeCount()).
// Complexity: O(1).
func (g *Graph) Edge(eid int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if eid < 0 || eid >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: id %d", ErrEdgeNotFound, eid)
	}

	return g.edges[eid], nil
}

// Edges returns a copy of the edge list ordered by ID.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// HasEdge reports whether at least one edge joins u and v.
// Out-of-range vertices simply yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.pairs[keyOf(u, v)]) > 0
}

// EdgeID resolves the unordered pair {u,v} to an edge identifier. When
// parallel edges exist the lowest identifier is returned, so the same pair
// always maps to the same representative.
//
// Returns ErrVertexOutOfRange or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) EdgeID(u, v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids, err := g.pairIDs(u, v)
	if err != nil {
		return 0, err
	}

	return ids[0], nil
}

// EdgeIDs returns every edge identifier joining u and v in ascending order.
//
// Returns ErrVertexOutOfRange or ErrEdgeNotFound.
// Complexity: O(m) where m is the pair multiplicity.
func (g *Graph) EdgeIDs(u, v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids, err := g.pairIDs(u, v)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(ids))
	copy(out, ids)

	return out, nil
}

// Multiplicity returns how many edges join u and v (0 when none).
// Complexity: O(1).
func (g *Graph) Multiplicity(u, v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.pairs[keyOf(u, v)])
}

// pairIDs is the lock-free lookup shared by EdgeID and EdgeIDs; callers hold mu.
func (g *Graph) pairIDs(u, v int) ([]int, error) {
	if !g.hasVertex(u) {
		return nil, g.rangeError(u)
	}
	if !g.hasVertex(v) {
		return nil, g.rangeError(v)
	}
	ids := g.pairs[keyOf(u, v)]
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: {%d,%d}", ErrEdgeNotFound, u, v)
	}

	return ids, nil
}
