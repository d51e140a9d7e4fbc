// Package bfs partitions a core.Graph into connected components by
// breadth-first search.
//
// What
//
//   - Components returns every connected component as a vertex list in
//     visit order; Count returns only how many there are.
//   - WithKeepVertex restricts the search to a vertex subset, e.g. the
//     non-isolated vertices.
//   - WithKeepEdge restricts the edges followed, e.g. to the edges of a
//     k-truss, without building a subgraph.
//   - WithContext makes long walks cancellable.
//
// Determinism
//
//	Seeds are taken in ascending vertex order and core.Graph.Neighbors
//	returns neighbors ascending, so the partition and each visit sequence
//	are fully reproducible. Parallel edges repeat a neighbor; it is
//	enqueued once. Self-loops are not reported as neighbors, so a vertex
//	whose only edge is a loop is a component on its own.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for the queue and the visited set)
//
// Usage
//
//	comps, err := bfs.Components(g,
//	    bfs.WithContext(ctx),
//	    bfs.WithKeepEdge(func(u, v int) bool { return inTruss(u, v) }),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrOptionViolation  if an Option is given a nil value.
//   - ErrNeighbors        if core.Neighbors fails for any vertex.
//   - The context error when Ctx is cancelled mid-walk.
package bfs
