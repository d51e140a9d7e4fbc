// Package core defines the central Graph and Edge types used by every
// lvtruss algorithm, and provides thread-safe primitives for building and
// querying undirected graphs with dense integer identifiers.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrVertexOutOfRange    - vertex identifier outside [0, VertexCount).
//	ErrNegativeCount       - negative vertex count requested.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add parallel edge when multi-edges disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an operation referenced a vertex outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeCount indicates a negative number of vertices was requested.
	ErrNegativeCount = errors.New("core: negative vertex count")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two vertices.
//
// ID is the edge's position in the graph's edge list; it never changes once
// the edge is added. From and To keep the order given to AddEdge.
type Edge struct {
	// ID is the dense, 0-based edge identifier.
	ID int

	// From is the first endpoint as passed to AddEdge.
	From int

	// To is the second endpoint as passed to AddEdge.
	To int
}

// Other returns the endpoint of e opposite to v.
// If v is not an endpoint, From is returned.
func (e Edge) Other(v int) int {
	if e.From == v {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithVertexCount pre-allocates n vertices numbered 0..n-1.
// Negative values are ignored; use AddVertices to surface ErrNegativeCount.
func WithVertexCount(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertexCount = n
		}
	}
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// pairKey is the canonical (min,max) form of an unordered vertex pair.
type pairKey struct {
	lo, hi int
}

// keyOf returns the canonical key for the unordered pair {u, v}.
func keyOf(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{lo: u, hi: v}
}

// Graph is an undirected graph over vertices 0..VertexCount()-1 with an
// ordered edge list.
//
// It supports parallel edges (multi-edges) and self-loops when enabled.
// mu guards every field; the graph is safe for concurrent readers once
// construction has finished.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	vertexCount int
	edges       []Edge

	// pairs[{lo,hi}] lists the IDs of every edge joining lo and hi, ascending.
	pairs map[pairKey][]int

	// incident[v] lists the IDs of edges touching v in insertion order.
	incident [][]int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is simple: no loops, no multi-edges, no vertices.
// Complexity: O(V) for the vertex pre-allocation.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		pairs: make(map[pairKey][]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}
	g.incident = make([][]int, g.vertexCount)

	return g
}
