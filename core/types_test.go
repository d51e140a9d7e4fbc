// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph configuration and edge lifecycle contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtruss/core"
)

// TestGraph_Options asserts GraphOption flags are applied correctly.
func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.Looped(), "loops are disabled by default")
	assert.False(t, g.Multigraph(), "multi-edges are disabled by default")
	assert.Equal(t, 0, g.VertexCount())

	g = core.NewGraph(core.WithVertexCount(4), core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())
	assert.Equal(t, 4, g.VertexCount())

	// negative pre-allocation is ignored
	g = core.NewGraph(core.WithVertexCount(-3))
	assert.Equal(t, 0, g.VertexCount())
}

// TestGraph_AddVertices checks dense vertex allocation.
func TestGraph_AddVertices(t *testing.T) {
	g := core.NewGraph(core.WithVertexCount(2))

	first, err := g.AddVertices(3)
	require.NoError(t, err)
	assert.Equal(t, 2, first)
	assert.Equal(t, 5, g.VertexCount())
	assert.True(t, g.HasVertex(4))
	assert.False(t, g.HasVertex(5))
	assert.False(t, g.HasVertex(-1))

	first, err = g.AddVertices(0)
	require.NoError(t, err)
	assert.Equal(t, 5, first)

	_, err = g.AddVertices(-1)
	require.ErrorIs(t, err, core.ErrNegativeCount)
}

// TestGraph_AddEdgeErrors table-tests the sentinel errors of AddEdge.
func TestGraph_AddEdgeErrors(t *testing.T) {
	cases := []struct {
		name     string
		opts     []core.GraphOption
		from, to int
		want     error
	}{
		{"from out of range", nil, 3, 0, core.ErrVertexOutOfRange},
		{"to out of range", nil, 0, 3, core.ErrVertexOutOfRange},
		{"negative vertex", nil, -1, 0, core.ErrVertexOutOfRange},
		{"loop rejected", nil, 1, 1, core.ErrLoopNotAllowed},
		{"parallel rejected", nil, 1, 0, core.ErrMultiEdgeNotAllowed},
		{"loop allowed", []core.GraphOption{core.WithLoops()}, 1, 1, nil},
		{"parallel allowed", []core.GraphOption{core.WithMultiEdges()}, 1, 0, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(append([]core.GraphOption{core.WithVertexCount(3)}, tc.opts...)...)
			_, err := g.AddEdge(0, 1)
			require.NoError(t, err)

			_, err = g.AddEdge(tc.from, tc.to)
			if tc.want == nil {
				require.NoError(t, err)
				assert.Equal(t, 2, g.EdgeCount())
				return
			}
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, 1, g.EdgeCount(), "failed insert must not change the edge list")
		})
	}
}

// TestGraph_EdgeIDsAreDense locks in insertion-ordered identifiers.
func TestGraph_EdgeIDsAreDense(t *testing.T) {
	g := core.NewGraph(core.WithVertexCount(4))
	pairs := [][2]int{{0, 1}, {2, 1}, {3, 0}}
	for i, p := range pairs {
		eid, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
		assert.Equal(t, i, eid)
	}

	edges := g.Edges()
	require.Len(t, edges, 3)
	for i, e := range edges {
		assert.Equal(t, i, e.ID)
		assert.Equal(t, pairs[i][0], e.From, "From keeps the AddEdge order")
		assert.Equal(t, pairs[i][1], e.To)
	}

	e, err := g.Edge(1)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{ID: 1, From: 2, To: 1}, e)
	assert.Equal(t, 2, e.Other(1))
	assert.Equal(t, 1, e.Other(2))

	_, err = g.Edge(3)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.Edge(-1)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestGraph_Stats checks the snapshot counters.
func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph(core.WithVertexCount(3), core.WithLoops(), core.WithMultiEdges())
	for _, p := range [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 2}, {0, 1}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}

	s := g.Stats()
	assert.Equal(t, core.GraphStats{
		AllowsMulti:   true,
		AllowsLoops:   true,
		VertexCount:   3,
		EdgeCount:     5,
		LoopCount:     1,
		ParallelCount: 2,
	}, *s)
}
