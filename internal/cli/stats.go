package cli

import (
	"context"

	"github.com/katalvlaran/lvtruss/bfs"
	"github.com/katalvlaran/lvtruss/core"
	"github.com/katalvlaran/lvtruss/truss"
)

// describe returns log key-values summarizing the shape of g: sizes,
// multigraph counters and the number of connected components among
// non-isolated vertices.
func describe(g *core.Graph) []any {
	st := g.Stats()
	kv := []any{
		"vertices", st.VertexCount,
		"edges", st.EdgeCount,
		"loops", st.LoopCount,
		"parallel", st.ParallelCount,
	}

	n, err := bfs.Count(g, bfs.WithKeepVertex(func(v int) bool {
		d, derr := g.Degree(v)
		return derr == nil && d > 0
	}))
	if err == nil {
		kv = append(kv, "components", n)
	}

	return kv
}

// levelComponents counts, for every trussness value k present, the
// connected components of the k-truss: the edges with trussness ≥ k and
// the vertices they touch. Parallel edges follow their representative.
func levelComponents(ctx context.Context, g *core.Graph, trussness []int) (map[int]int, error) {
	// reach[v] is the highest trussness on an edge incident to v.
	reach := make([]int, g.VertexCount())
	for _, e := range g.Edges() {
		k := trussness[e.ID]
		reach[e.From] = max(reach[e.From], k)
		reach[e.To] = max(reach[e.To], k)
	}

	out := make(map[int]int)
	for _, k := range truss.LevelKeys(truss.Levels(trussness)) {
		n, err := bfs.Count(g,
			bfs.WithContext(ctx),
			bfs.WithKeepVertex(func(v int) bool { return reach[v] >= k }),
			bfs.WithKeepEdge(func(u, v int) bool {
				eid, err := g.EdgeID(u, v)
				return err == nil && trussness[eid] >= k
			}),
		)
		if err != nil {
			return nil, err
		}
		out[k] = n
	}

	return out, nil
}
