// Package triangle lists the triangles (3-cycles) of an undirected core.Graph.
//
// What
//
//   - Each visits every distinct triangle with its instance count.
//   - List returns every triangle instance as an ascending vertex triple {A<B<C}.
//   - Count returns the instance total without materializing the triples.
//   - Unpack turns triangles into their three vertex pairs (A,B),(B,C),(A,C),
//     the form consumed by per-edge support counting.
//
// Multigraphs
//
//	A vertex triple joined by parallel edges is reported once per
//	combination of edge instances, i.e. mult(A,B)·mult(B,C)·mult(A,C)
//	times. Self-loops never take part in a triangle. Each reports the
//	triple once with that product as its weight; List repeats it, so its
//	output grows with the cube of pair multiplicity.
//
// Determinism
//
//	Triangles come out sorted by (A, B, C); repeated instances are adjacent.
//
// Complexity (E = |Edges|)
//
//   - Time:   O(E^1.5) via forward merge-intersection of sorted neighbor
//     lists for Each and Count; List adds one step per instance
//   - Memory: O(E) for the adjacency snapshot, plus List's output
//
// Errors
//
//   - ErrGraphNil if the graph pointer is nil.
package triangle
