package truss

import (
	"fmt"

	"github.com/katalvlaran/lvtruss/core"
	"github.com/katalvlaran/lvtruss/triangle"
)

// ComputeSupport counts, for every edge of g, the triangles in tris that use it.
//
// Each triangle is unpacked into its three vertex pairs and every pair is
// resolved with g.EdgeID, so parallel edges always charge the same
// representative. Edges on no triangle get 0.
//
// Returns ErrGraphNil, or ErrMalformedGraph when a pair is not an edge of g.
// Complexity: O(E + len(tris)). On multigraphs tris holds one entry per
// instance; Trussness avoids that list altogether.
func ComputeSupport(g *core.Graph, tris []triangle.Triangle) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	support := make([]int, g.EdgeCount())

	for _, p := range triangle.Unpack(tris) {
		eid, err := g.EdgeID(p[0], p[1])
		if err != nil {
			return nil, fmt.Errorf("%w: triangle pair {%d,%d}: %v", ErrMalformedGraph, p[0], p[1], err)
		}
		support[eid]++
	}

	return support, nil
}

// countSupport derives the same vector as ComputeSupport straight from g,
// adding each distinct triangle's instance count to its three pairs, and
// returns it with the total number of instances. Sums saturate at
// math.MaxInt.
func countSupport(g *core.Graph) ([]int, int, error) {
	support := make([]int, g.EdgeCount())
	total := 0

	var err error
	eachErr := triangle.Each(g, func(t triangle.Triangle, n int) {
		if err != nil {
			return
		}
		total = addSat(total, n)
		for _, p := range t.Pairs() {
			eid, perr := g.EdgeID(p[0], p[1])
			if perr != nil {
				err = fmt.Errorf("%w: triangle pair {%d,%d}: %v", ErrMalformedGraph, p[0], p[1], perr)
				return
			}
			support[eid] = addSat(support[eid], n)
		}
	})
	if eachErr != nil {
		return nil, 0, eachErr
	}
	if err != nil {
		return nil, 0, err
	}

	return support, total, nil
}
