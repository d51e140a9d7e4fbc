package triangle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtruss/builder"
	"github.com/katalvlaran/lvtruss/core"
	"github.com/katalvlaran/lvtruss/triangle"
)

// twoCommunities is a K5 on 0..4 bridged through 6 to a denser block on 5..9,
// with pendant-ish vertices 10 and 11.
var twoCommunities = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4},
	{3, 6}, {3, 11}, {4, 5}, {4, 6}, {5, 6}, {5, 7}, {5, 8}, {5, 9}, {6, 7},
	{6, 10}, {6, 11}, {7, 8}, {7, 9}, {8, 9}, {8, 10},
}

func mustBuild(t *testing.T, gopts []core.GraphOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, nil, cons...)
	require.NoError(t, err)

	return g
}

// bruteCount counts triangle instances over all vertex triples.
func bruteCount(g *core.Graph) int {
	n, total := g.VertexCount(), 0
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			for c := b + 1; c < n; c++ {
				total += g.Multiplicity(a, b) * g.Multiplicity(b, c) * g.Multiplicity(a, c)
			}
		}
	}

	return total
}

func TestList_TwoCommunities(t *testing.T) {
	g := mustBuild(t, nil, builder.Vertices(12), builder.Edges(twoCommunities...))

	tris, err := triangle.List(g)
	require.NoError(t, err)
	want := []triangle.Triangle{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4}, {0, 2, 3}, {0, 2, 4}, {0, 3, 4},
		{1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4},
		{3, 4, 6}, {3, 6, 11}, {4, 5, 6}, {5, 6, 7},
		{5, 7, 8}, {5, 7, 9}, {5, 8, 9}, {7, 8, 9},
	}
	assert.Equal(t, want, tris)

	n, err := triangle.Count(g)
	require.NoError(t, err)
	assert.Equal(t, len(want), n)
}

func TestCount_Families(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want int
	}{
		{"K3", builder.Complete(3), 1},
		{"K4", builder.Complete(4), 4},
		{"K6", builder.Complete(6), 20},
		{"Path5", builder.Path(5), 0},
		{"Cycle4", builder.Cycle(4), 0},
		{"Star6", builder.Star(6), 0},
		{"K3,3", builder.CompleteBipartite(3, 3), 0},
		{"Wheel6", builder.Wheel(6), 5},
		{"Isolated", builder.Vertices(4), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustBuild(t, nil, tc.con)
			n, err := triangle.Count(g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)

			tris, err := triangle.List(g)
			require.NoError(t, err)
			assert.Len(t, tris, tc.want)
		})
	}
}

func TestList_Multigraph(t *testing.T) {
	g := mustBuild(t,
		[]core.GraphOption{core.WithMultiEdges(), core.WithLoops()},
		builder.Vertices(4),
		builder.Edges([2]int{0, 1}, [2]int{1, 2}, [2]int{1, 0}, [2]int{0, 3}, [2]int{0, 2}, [2]int{2, 2}),
	)

	tris, err := triangle.List(g)
	require.NoError(t, err)
	assert.Equal(t, []triangle.Triangle{{0, 1, 2}, {0, 1, 2}}, tris, "one instance per parallel edge")

	n, err := triangle.Count(g)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// parallelTriangle joins 0, 1 and 2 with m parallel edges per side.
func parallelTriangle(t *testing.T, m int) *core.Graph {
	t.Helper()
	pairs := make([][2]int, 0, 3*m)
	for i := 0; i < m; i++ {
		pairs = append(pairs, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2})
	}

	return mustBuild(t, []core.GraphOption{core.WithMultiEdges()}, builder.Vertices(3), builder.Edges(pairs...))
}

func TestEach_WeighsParallelEdges(t *testing.T) {
	g := parallelTriangle(t, 200)

	var got []triangle.Triangle
	var weights []int
	require.NoError(t, triangle.Each(g, func(tr triangle.Triangle, n int) {
		got = append(got, tr)
		weights = append(weights, n)
	}))
	assert.Equal(t, []triangle.Triangle{{0, 1, 2}}, got, "one visit per distinct triple")
	assert.Equal(t, []int{8_000_000}, weights)

	n, err := triangle.Count(g)
	require.NoError(t, err)
	assert.Equal(t, 8_000_000, n)
}

func TestEach_MatchesList(t *testing.T) {
	g := mustBuild(t, nil, builder.Vertices(12), builder.Edges(twoCommunities...))

	tris, err := triangle.List(g)
	require.NoError(t, err)
	var got []triangle.Triangle
	require.NoError(t, triangle.Each(g, func(tr triangle.Triangle, n int) {
		assert.Equal(t, 1, n)
		got = append(got, tr)
	}))
	assert.Equal(t, tris, got)
}

func TestCount_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(24, 0.3))
		require.NoError(t, err)
		n, err := triangle.Count(g)
		require.NoError(t, err)
		assert.Equal(t, bruteCount(g), n)
	}
}

func TestList_Sorted(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(30, 0.35))
	require.NoError(t, err)

	tris, err := triangle.List(g)
	require.NoError(t, err)
	require.NotEmpty(t, tris)
	for i, tr := range tris {
		require.Less(t, tr.A, tr.B)
		require.Less(t, tr.B, tr.C)
		require.True(t, g.HasEdge(tr.A, tr.B) && g.HasEdge(tr.B, tr.C) && g.HasEdge(tr.A, tr.C))
		if i > 0 {
			p := tris[i-1]
			require.True(t, p.A < tr.A || (p.A == tr.A && (p.B < tr.B || (p.B == tr.B && p.C < tr.C))),
				"triangles out of order at %d", i)
		}
	}
}

func TestUnpack(t *testing.T) {
	pairs := triangle.Unpack([]triangle.Triangle{{0, 1, 2}, {3, 6, 11}})
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 6}, {6, 11}, {3, 11}}, pairs)
	assert.Empty(t, triangle.Unpack(nil))
}

func TestNilGraph(t *testing.T) {
	_, err := triangle.List(nil)
	assert.ErrorIs(t, err, triangle.ErrGraphNil)
	_, err = triangle.Count(nil)
	assert.ErrorIs(t, err, triangle.ErrGraphNil)
	assert.ErrorIs(t, triangle.Each(nil, func(triangle.Triangle, int) {}), triangle.ErrGraphNil)
}
