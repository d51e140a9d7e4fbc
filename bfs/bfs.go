package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvtruss/core"
)

// walker holds the state shared by every breadth-first walk of one
// Components call. visited spans all walks, so each vertex is seen once.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []int
	visited []bool
}

// newWalker prepares a walker over g with a fresh visited set.
func newWalker(g *core.Graph, o Options) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		visited: make([]bool, g.VertexCount()),
	}
}

// run explores everything reachable from start that is not yet visited and
// returns the vertices in visit order.
func (w *walker) run(start int) ([]int, error) {
	w.queue = append(w.queue[:0], start)
	w.visited[start] = true

	var order []int
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		curr := w.queue[0]
		w.queue = w.queue[1:]
		order = append(order, curr)
		if err := w.enqueueNeighbors(curr); err != nil {
			return nil, err
		}
	}

	return order, nil
}

// enqueueNeighbors enqueues every unseen neighbor of curr that passes both
// filters. Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(curr int) error {
	neighbors, err := w.graph.Neighbors(curr)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, curr, err)
	}
	for _, nbr := range neighbors {
		// parallel edges repeat a neighbor; the visited check skips them
		if w.visited[nbr] || !w.opts.KeepVertex(nbr) || !w.opts.KeepEdge(curr, nbr) {
			continue
		}
		w.visited[nbr] = true
		w.queue = append(w.queue, nbr)
	}

	return nil
}
