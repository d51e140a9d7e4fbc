// Package builder provides deterministic, composable constructors for
// core.Graph fixtures: classic topologies (complete, path, cycle, star,
// wheel, complete bipartite), seeded random graphs, and explicit edge lists.
//
// Composition model:
//
//   - BuildGraph(gopts, bopts, cons...) creates one graph and applies each
//     Constructor in order.
//   - Every topology constructor appends a fresh block of vertices starting at
//     the current VertexCount(), so blocks never overlap. Edges(...) is the one
//     exception: it connects vertices that already exist.
//   - Joining blocks is done with Edges(...) after the blocks are built.
//
// Options (BuilderOption):
//
//   - WithSeed(seed):  seeded *rand.Rand for stochastic constructors.
//   - WithRand(r):     explicit RNG; panics on nil.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical
//     vertex numbering and edge IDs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return wrapped sentinel errors
//     (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//     ErrConstructFailed) checked with errors.Is.
package builder
