package truss

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvtruss/core"
)

// MaxTruss returns the largest value in trussness, or 0 for an empty slice.
func MaxTruss(trussness []int) int {
	best := 0
	for _, k := range trussness {
		if k > best {
			best = k
		}
	}

	return best
}

// Levels returns a histogram k → number of edges with trussness exactly k.
func Levels(trussness []int) map[int]int {
	out := make(map[int]int)
	for _, k := range trussness {
		out[k]++
	}

	return out
}

// LevelKeys returns the distinct trussness values ascending.
func LevelKeys(levels map[int]int) []int {
	keys := make([]int, 0, len(levels))
	for k := range levels {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

// kTruss keeps every edge whose pair representative has trussness ≥ k.
// Parallel duplicates follow their representative; ids maps back to g.
func kTruss(g *core.Graph, trussness, reps []int, k int) (*core.Graph, []int) {
	return core.EdgeSubgraph(g, func(e core.Edge) bool {
		return trussness[reps[e.ID]] >= k
	})
}

// Verify checks trussness against the k-truss definition: every value is at
// least 2, and for each k ≥ 3 every edge with trussness ≥ k lies on at least
// k−2 triangle instances formed by such edges. Parallel duplicates count
// with their representative.
//
// Returns ErrInvalidTrussness describing the first offending edge.
// Complexity: O(K · E^1.5) for K distinct levels, multigraphs included.
func Verify(g *core.Graph, trussness []int) error {
	if g == nil {
		return ErrGraphNil
	}
	reps, err := representatives(g, trussness)
	if err != nil {
		return err
	}
	for eid, k := range trussness {
		if k < 2 {
			return fmt.Errorf("%w: edge %d has trussness %d < 2", ErrInvalidTrussness, eid, k)
		}
	}

	for _, k := range LevelKeys(Levels(trussness)) {
		if k < 3 {
			continue
		}
		sub, ids := kTruss(g, trussness, reps, k)
		support, _, err := countSupport(sub)
		if err != nil {
			return err
		}
		for sid, old := range ids {
			if trussness[old] < k {
				continue // parallel duplicate riding on its representative
			}
			if support[sid] < k-2 {
				return fmt.Errorf("%w: edge %d (trussness %d) lies on %d triangles of the %d-truss",
					ErrInvalidTrussness, old, trussness[old], support[sid], k)
			}
		}
	}

	return nil
}

// representatives maps every edge ID to the lowest ID joining the same pair.
func representatives(g *core.Graph, trussness []int) ([]int, error) {
	edges := g.Edges()
	if len(trussness) != len(edges) {
		return nil, fmt.Errorf("%w: %d values for %d edges", ErrMalformedGraph, len(trussness), len(edges))
	}
	reps := make([]int, len(edges))
	for _, e := range edges {
		rep, err := g.EdgeID(e.From, e.To)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrMalformedGraph, e.ID, err)
		}
		reps[e.ID] = rep
	}

	return reps, nil
}
