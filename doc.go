// Package lvtruss is an in-memory toolkit for truss decomposition of
// undirected graphs: it finds, for every edge, the densest k-truss the edge
// belongs to.
//
// 🚀 What is lvtruss?
//
//	A small, thread-safe library plus a CLI that brings together:
//		• Core primitives: dense integer vertices & edges, multigraph aware
//		• Builders: complete, bipartite, path, cycle, star, wheel, random graphs
//		• Triangles: sorted enumeration and counting
//		• Truss: per-edge support, bottom-up peeling, verification
//		• Traversal: BFS and connected components
//
// ✨ Why choose lvtruss?
//
//   - Deterministic – the same graph always yields the same trussness
//   - Observable – hooks and a pluggable charmbracelet/log logger
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      — Graph, Edge, AdjacencyView & thread-safe primitives
//	builder/   — composable Constructor blocks for test and demo graphs
//	triangle/  — triangle listing via forward merge-intersection
//	truss/     — ComputeSupport, Decompose, Trussness, Verify
//	bfs/       — breadth-first search and component partitioning
//	cmd/trusscsv — CLI printing fromNode,toNode,truss CSV rows
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Complete(4))
//	values, _ := truss.Trussness(g) // [4 4 4 4 4 4]
package lvtruss
