// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertices/HasVertex/VertexCount/Degree.
// Determinism:
//   - Vertex identifiers are dense: 0..VertexCount()-1, allocated in order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import "fmt"

// AddVertices appends n new vertices and returns the identifier of the first one.
// With n == 0 the call is a no-op returning VertexCount().
//
// Returns ErrNegativeCount if n < 0.
// Complexity: O(n) amortized.
func (g *Graph) AddVertices(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	first := g.vertexCount
	for i := 0; i < n; i++ {
		g.incident = append(g.incident, nil)
	}
	g.vertexCount += n

	return first, nil
}

// HasVertex reports whether v is a valid vertex identifier.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasVertex(v)
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertexCount
}

// Degree returns the number of edge endpoints at v; a self-loop counts twice.
//
// Returns ErrVertexOutOfRange for an unknown vertex.
// Complexity: O(deg(v)).
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.hasVertex(v) {
		return 0, g.rangeError(v)
	}

	deg := 0
	var eid int
	for _, eid = range g.incident[v] {
		if e := g.edges[eid]; e.From == e.To {
			deg += 2 // loop touches v twice
		} else {
			deg++
		}
	}

	return deg, nil
}

// hasVertex is the lock-free range check; callers hold mu.
func (g *Graph) hasVertex(v int) bool {
	return v >= 0 && v < g.vertexCount
}

// rangeError wraps ErrVertexOutOfRange with the offending identifier.
func (g *Graph) rangeError(v int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.vertexCount)
}
