package truss

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvtruss/core"
)

// Trussness returns the trussness of every edge of g, indexed by edge ID.
//
// It counts per-edge support with triangle.Each and peels; see Decompose
// for the peeling contract. An empty graph yields an empty, non-nil slice.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrResourceExhausted.
func Trussness(g *core.Graph, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = checkLimit(g, o); err != nil {
		return nil, err
	}

	support, total, err := countSupport(g)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("support counted", "vertices", g.VertexCount(), "edges", g.EdgeCount(), "triangles", total)
	if o.MaxTriangles > 0 && total > o.MaxTriangles {
		return nil, fmt.Errorf("%w: %d triangles, limit %d", ErrResourceExhausted, total, o.MaxTriangles)
	}

	return decompose(g, support, o)
}

// Decompose peels g bottom-up and returns per-edge trussness.
//
// support[e] must hold the number of triangle instances through edge e as
// produced by ComputeSupport. Decompose takes ownership of support and
// overwrites it while peeling; callers that need it afterwards must pass a copy.
//
// Contract:
//   - len(support) == g.EdgeCount() and every value is ≥ 0.
//   - Self-loops and non-representative parallel edges carry support 0.
//   - No value exceeds what the edge's endpoints can close.
//
// Violations return ErrMalformedGraph. A support value above
// WithMaxTriangles returns ErrResourceExhausted before any bucket is
// allocated. Every edge ends with trussness in [2, support+2]; see Verify
// for the structural check.
func Decompose(g *core.Graph, support []int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = checkLimit(g, o); err != nil {
		return nil, err
	}

	return decompose(g, support, o)
}

// checkLimit enforces Options.MaxEdges.
func checkLimit(g *core.Graph, o Options) error {
	if o.MaxEdges > 0 && g.EdgeCount() > o.MaxEdges {
		return fmt.Errorf("%w: %d edges, limit %d", ErrResourceExhausted, g.EdgeCount(), o.MaxEdges)
	}

	return nil
}

// peeler carries the state of one decomposition run.
type peeler struct {
	g         *core.Graph
	adj       *core.AdjacencyView
	edges     []core.Edge
	support   []int
	completed []bool
	buckets   *levelBuckets
	trussness []int
	opts      Options
}

// decompose is Decompose after option resolution.
func decompose(g *core.Graph, support []int, o Options) ([]int, error) {
	edges := g.Edges()
	m := len(edges)
	if len(support) != m {
		return nil, fmt.Errorf("%w: support has %d entries for %d edges", ErrMalformedGraph, len(support), m)
	}
	trussness := make([]int, m)
	if m == 0 {
		return trussness, nil
	}

	p := &peeler{
		g:         g,
		adj:       g.Adjacency(),
		edges:     edges,
		support:   support,
		completed: make([]bool, m),
		trussness: trussness,
		opts:      o,
	}
	maxLevel, err := p.validate()
	if err != nil {
		return nil, err
	}
	if o.MaxTriangles > 0 && maxLevel > o.MaxTriangles {
		return nil, fmt.Errorf("%w: support %d exceeds triangle limit %d", ErrResourceExhausted, maxLevel, o.MaxTriangles)
	}
	o.Logger.Debug("peeling", "edges", m, "maxSupport", maxLevel)

	p.buckets = newLevelBuckets(maxLevel, m)
	zero := 0
	for eid, s := range support {
		if s == 0 {
			p.finalize(eid, 2)
			zero++
			continue
		}
		p.buckets.insert(s, eid)
	}
	o.Logger.Debug("level done", "level", 0, "k", 2, "finalized", zero)

	for level := 1; level <= maxLevel; level++ {
		finalized := 0
		for {
			eid, ok := p.buckets.pop(level, o.Rand)
			if !ok {
				break
			}
			if err = p.peel(eid, level); err != nil {
				return nil, err
			}
			p.finalize(eid, level+2)
			finalized++
		}
		if finalized > 0 {
			o.Logger.Debug("level done", "level", level, "k", level+2, "finalized", finalized)
		}
	}

	return trussness, nil
}

// validate checks support against the graph and returns its maximum.
func (p *peeler) validate() (int, error) {
	maxLevel := 0
	for eid, s := range p.support {
		e := p.edges[eid]
		if s < 0 {
			return 0, fmt.Errorf("%w: edge %d has negative support %d", ErrMalformedGraph, eid, s)
		}
		if s == 0 {
			continue
		}
		if e.From == e.To {
			return 0, fmt.Errorf("%w: self-loop %d has support %d", ErrMalformedGraph, eid, s)
		}
		rep, err := p.g.EdgeID(e.From, e.To)
		if err != nil {
			return 0, fmt.Errorf("%w: edge %d: %v", ErrMalformedGraph, eid, err)
		}
		if rep != eid {
			return 0, fmt.Errorf("%w: parallel edge %d has support %d, representative is %d", ErrMalformedGraph, eid, s, rep)
		}
		bound := mulSat(mulSat(p.g.Multiplicity(e.From, e.To), len(p.adj.Neighbors(e.From))), len(p.adj.Neighbors(e.To)))
		if s > bound {
			return 0, fmt.Errorf("%w: edge %d support %d exceeds bound %d", ErrMalformedGraph, eid, s, bound)
		}
		if s > maxLevel {
			maxLevel = s
		}
	}

	return maxLevel, nil
}

// peel releases the triangles closed by eid at the given level.
//
// For each distinct triangle eid-e1-e2 with n instances: when neither e1 nor
// e2 is finalized, each of them whose support is above level drops by n,
// clamped at level, and moves bucket once.
func (p *peeler) peel(eid, level int) error {
	e := p.edges[eid]
	from, to := e.From, e.To
	mult := p.g.Multiplicity(from, to)

	var err error
	commonNeighbors(p.adj.Neighbors(from), p.adj.Neighbors(to), func(n, ra, rb int) bool {
		var e1, e2 int
		if e1, err = p.g.EdgeID(from, n); err != nil {
			err = fmt.Errorf("%w: edge {%d,%d}: %v", ErrMalformedGraph, from, n, err)
			return false
		}
		if e2, err = p.g.EdgeID(to, n); err != nil {
			err = fmt.Errorf("%w: edge {%d,%d}: %v", ErrMalformedGraph, to, n, err)
			return false
		}
		if p.completed[e1] || p.completed[e2] {
			return true
		}
		instances := mulSat(mulSat(mult, ra), rb)
		p.decrement(e1, level, instances)
		p.decrement(e2, level, instances)

		return true
	})

	return err
}

// decrement lowers the support of e by n without going below level.
// Edges already at level stay put.
func (p *peeler) decrement(e, level, n int) {
	s := p.support[e]
	if s <= level {
		return
	}
	next := level
	if s-level > n {
		next = s - n
	}
	p.support[e] = next
	p.buckets.move(s, next, e)
}

// finalize fixes the trussness of eid.
func (p *peeler) finalize(eid, k int) {
	p.completed[eid] = true
	p.trussness[eid] = k
	p.opts.OnFinalize(eid, k)
}

// commonNeighbors intersects two sorted neighbor lists and calls visit once
// per distinct shared vertex w with its run lengths ra (in a) and rb (in b).
// The shorter list is walked and each of its values is located in the longer
// one by binary search over the unread tail. Iteration stops when visit
// returns false.
func commonNeighbors(a, b []int, visit func(w, ra, rb int) bool) {
	swapped := false
	if len(a) > len(b) {
		a, b = b, a
		swapped = true
	}

	for i := 0; i < len(a) && len(b) > 0; {
		w := a[i]
		ra := run(a[i:])
		i += ra

		j := sort.SearchInts(b, w)
		b = b[j:]
		if len(b) == 0 || b[0] != w {
			continue
		}
		rb := run(b)
		b = b[rb:]

		var keep bool
		if swapped {
			keep = visit(w, rb, ra)
		} else {
			keep = visit(w, ra, rb)
		}
		if !keep {
			return
		}
	}
}

// run returns the length of the leading run of equal values in s (len(s) > 0).
func run(s []int) int {
	n := 1
	for n < len(s) && s[n] == s[0] {
		n++
	}

	return n
}

// mulSat multiplies non-negative a and b, saturating at math.MaxInt.
func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}

	return a * b
}

// addSat adds non-negative a and b, saturating at math.MaxInt.
func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}

	return a + b
}
