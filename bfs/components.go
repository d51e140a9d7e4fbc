package bfs

import (
	"github.com/katalvlaran/lvtruss/core"
)

// Components partitions the kept vertices of g into connected components.
//
// Components are discovered from the lowest unvisited vertex upward and each
// lists its vertices in BFS order, so the result is deterministic.
//
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	w := newWalker(g, o)
	var out [][]int
	for v := range w.visited {
		if w.visited[v] || !o.KeepVertex(v) {
			continue
		}
		comp, err := w.run(v)
		if err != nil {
			return nil, err
		}
		out = append(out, comp)
	}

	return out, nil
}

// Count returns the number of connected components Components would report.
func Count(g *core.Graph, opts ...Option) (int, error) {
	comps, err := Components(g, opts...)
	if err != nil {
		return 0, err
	}

	return len(comps), nil
}
