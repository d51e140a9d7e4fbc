// Package truss computes edge trussness on an undirected core.Graph.
//
// What
//
//   - A k-truss is a subgraph in which every edge lies on at least k−2
//     triangles made of subgraph edges. The trussness of an edge is the
//     largest k for which some k-truss contains it; every edge has
//     trussness ≥ 2.
//   - Trussness(g) runs the whole pipeline and returns one value per edge,
//     indexed by edge ID.
//   - The pipeline stages are exported on their own:
//     triangle.List → ComputeSupport → Decompose. Trussness itself counts
//     support with triangle.Each and never materializes the triangle list.
//   - Verify checks a result against the k-truss definition.
//
// How
//
//	Decompose peels edges in ascending order of support (Wang & Cheng,
//	"Truss decomposition in massive networks", VLDB 2012, Algorithm 2):
//
//	  1. Bucket every edge by its support; level-0 edges get trussness 2.
//	  2. For level = 1..max, pop edges of that level one at a time.
//	  3. For each common neighbor n of the popped edge (from,to), look at
//	     e1=(from,n) and e2=(to,n). Unless one of them is already finalized,
//	     each of e1, e2 whose support is above the level loses one unit per
//	     triangle instance, never dropping below the level, and moves bucket.
//	  4. The popped edge is finalized with trussness level+2.
//
//	Common neighbors come from merge-intersecting the sorted lists of an
//	AdjacencyView, walking the shorter list into the longer one.
//
// Multigraphs
//
//	Each vertex pair is represented by its lowest edge ID (core.Graph.EdgeID).
//	Triangles are counted per edge instance, so the representative carries
//	the support of the whole pair and parallel duplicates finish at 2.
//	Instances are weights, not copies: a triple closed by parallel edges is
//	visited once and its mult(u,v)·mult(v,w)·mult(u,w) instances are applied
//	in a single clamped step.
//
// Determinism
//
//	The result does not depend on which edge of a bucket is popped first.
//	WithRand randomizes the pop order; the values stay the same.
//
// Complexity (E = |Edges|, S = largest support)
//
//   - Time:   O(E^1.5 + S)
//   - Memory: O(E + S)
//
//	S ≤ E on simple graphs. On multigraphs S grows with pair multiplicity;
//	WithMaxTriangles bounds it.
//
// Errors
//
//   - ErrGraphNil           nil graph pointer.
//   - ErrMalformedGraph     support inconsistent with the graph.
//   - ErrResourceExhausted  graph larger than WithMaxEdges or
//     WithMaxTriangles allows.
//   - ErrOptionViolation    invalid Option value.
//   - ErrInvalidTrussness   returned by Verify.
package truss
