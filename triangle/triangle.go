package triangle

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvtruss/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("triangle: graph is nil")

// Triangle is an unordered vertex triple stored ascending: A < B < C.
type Triangle struct {
	A, B, C int
}

// Pairs returns the three vertex pairs of t in the order (A,B), (B,C), (A,C).
func (t Triangle) Pairs() [3][2]int {
	return [3][2]int{{t.A, t.B}, {t.B, t.C}, {t.A, t.C}}
}

// neighbor is one distinct entry of a compressed adjacency list.
type neighbor struct {
	id   int // neighbor vertex
	mult int // number of parallel edges to it
}

// Each calls visit once per distinct triangle of g, ascending by (A, B, C),
// with n = mult(A,B)·mult(B,C)·mult(A,C) instances (1 in a simple graph).
// n saturates at math.MaxInt. Nothing is materialized, so multigraphs cost
// the same as their simple skeleton.
func Each(g *core.Graph, visit func(t Triangle, n int)) error {
	if g == nil {
		return ErrGraphNil
	}
	forEach(g, visit)

	return nil
}

// List enumerates every triangle of g, ascending by (A, B, C).
// Each instance of a multigraph triple is a separate entry; prefer Each when
// multiplicities are high.
func List(g *core.Graph) ([]Triangle, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var out []Triangle
	forEach(g, func(t Triangle, n int) {
		for ; n > 0; n-- {
			out = append(out, t)
		}
	})

	return out, nil
}

// Count returns the number of triangle instances List would produce,
// saturating at math.MaxInt.
func Count(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	total := 0
	forEach(g, func(_ Triangle, n int) { total = addSat(total, n) })

	return total, nil
}

// Unpack flattens triangles into their constituent vertex pairs, three per
// triangle, in Triangle.Pairs order. The same pair appears once for every
// triangle it belongs to.
func Unpack(tris []Triangle) [][2]int {
	out := make([][2]int, 0, 3*len(tris))
	for _, t := range tris {
		p := t.Pairs()
		out = append(out, p[0], p[1], p[2])
	}

	return out
}

// forEach visits each distinct vertex triple once, passing its instance count.
//
// For every u and every distinct neighbor v > u, the forward lists of u and v
// (neighbors greater than v) are merge-intersected; each hit w closes u-v-w.
func forEach(g *core.Graph, visit func(t Triangle, n int)) {
	adj := compress(g.Adjacency())

	for u := range adj {
		nu := adj[u]
		for i, v := range nu {
			if v.id <= u {
				continue
			}
			nv := adj[v.id]
			// tails strictly above v on both sides
			a := nu[i+1:]
			b := nv[above(nv, v.id):]
			for len(a) > 0 && len(b) > 0 {
				switch {
				case a[0].id < b[0].id:
					a = a[1:]
				case a[0].id > b[0].id:
					b = b[1:]
				default:
					visit(Triangle{A: u, B: v.id, C: a[0].id}, mulSat(mulSat(v.mult, a[0].mult), b[0].mult))
					a, b = a[1:], b[1:]
				}
			}
		}
	}
}

// compress collapses runs of equal neighbors into (id, multiplicity) entries.
func compress(view *core.AdjacencyView) [][]neighbor {
	out := make([][]neighbor, view.VertexCount())
	for v := range out {
		list := view.Neighbors(v)
		row := make([]neighbor, 0, len(list))
		for _, w := range list {
			if n := len(row); n > 0 && row[n-1].id == w {
				row[n-1].mult++
				continue
			}
			row = append(row, neighbor{id: w, mult: 1})
		}
		out[v] = row
	}

	return out
}

// above returns the index of the first entry in row with id > v.
func above(row []neighbor, v int) int {
	lo, hi := 0, len(row)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if row[mid].id <= v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
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
