// Package core provides a compact, thread-safe in-memory undirected Graph
// with dense integer identifiers, tailored to edge-centric algorithms such as
// triangle listing and truss decomposition.
//
// The Graph G = (V,E) supports:
//
//   - Vertices 0..n-1 (WithVertexCount, AddVertices)
//   - An ordered edge list: the k-th added edge has ID k
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time pair lookup: EdgeID(u,v) returns the lowest ID joining u and v
//   - A single sync.RWMutex guarding all state
//
// Why use core.Graph?
//
//   - Edge IDs double as slice indices: per-edge results are plain []int.
//   - Deterministic everywhere: Edges() in ID order, Neighbors() sorted.
//   - AdjacencyView snapshots sorted neighbor lists once for merge-intersections.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertices(n int) (first int, err error)  // O(n)
//	HasVertex(v int) bool                      // O(1)
//	VertexCount() int                          // O(1)
//	Degree(v int) (int, error)                 // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to int) (eid int, err error) // O(1) amortized
//	Edge(eid int) (Edge, error)                // O(1)
//	Edges() []Edge                             // O(E)
//	EdgeCount() int                            // O(1)
//	HasEdge(u, v int) bool                     // O(1)
//	EdgeID(u, v int) (int, error)              // O(1), lowest parallel ID
//	EdgeIDs(u, v int) ([]int, error)           // O(m)
//	Multiplicity(u, v int) int                 // O(1)
//
//	// Neighborhoods
//	Neighbors(v int) ([]int, error)            // O(d·log d), loops skipped
//	IncidentEdges(v int) ([]int, error)        // O(d)
//	Adjacency() *AdjacencyView                 // O(V + E·log Δ)
//
//	// Views
//	EdgeSubgraph(g, keep) (*Graph, []int)      // O(V + E)
//
// Errors:
//
//	ErrVertexOutOfRange    – vertex identifier outside [0, VertexCount)
//	ErrNegativeCount       – AddVertices(n) with n < 0
//	ErrEdgeNotFound        – missing edge or pair
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
