// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool // parallel edges permitted
	AllowsLoops bool // self-loops permitted

	VertexCount int // |V|
	EdgeCount   int // |E| including loops and parallel edges
	LoopCount   int // edges with From == To
	// ParallelCount counts edges that share their vertex pair with a lower edge ID.
	ParallelCount int
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v) rejects the operation with ErrLoopNotAllowed.
//
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// If false, a second AddEdge(from,to) rejects the duplicate with ErrMultiEdgeNotAllowed.
//
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic, read-only snapshot of configuration flags and
// catalog sizes.
//
// Complexity:
//   - Time O(E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: g.vertexCount,
		EdgeCount:   len(g.edges),
	}
	var e Edge
	for _, e = range g.edges { // single pass over all edges
		if e.From == e.To {
			stats.LoopCount++
		}
		if ids := g.pairs[keyOf(e.From, e.To)]; ids[0] != e.ID {
			stats.ParallelCount++
		}
	}

	return &stats
}
