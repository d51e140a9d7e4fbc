// File: view.go
// Role: Non-mutating graph views (copying topology with a subset of edges).
// Determinism:
//   - Kept edges preserve relative order; new IDs are dense 0..k-1.
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

// EdgeSubgraph returns a new Graph with the same vertex count and flags as g,
// containing only the edges for which keep returns true. The second result
// maps every new edge ID to its ID in g. The input graph is not mutated.
//
// Complexity: O(V + E).
func EdgeSubgraph(g *Graph, keep func(Edge) bool) (*Graph, []int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	opts := []GraphOption{WithVertexCount(g.vertexCount)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	origin := make([]int, 0, len(g.edges))
	var e Edge
	for _, e = range g.edges {
		if !keep(e) {
			continue
		}
		// Endpoints and flags match the source, so the insert cannot fail.
		eid := len(out.edges)
		out.edges = append(out.edges, Edge{ID: eid, From: e.From, To: e.To})
		key := keyOf(e.From, e.To)
		out.pairs[key] = append(out.pairs[key], eid)
		out.incident[e.From] = append(out.incident[e.From], eid)
		if e.From != e.To {
			out.incident[e.To] = append(out.incident[e.To], eid)
		}
		origin = append(origin, e.ID)
	}

	return out, origin
}
