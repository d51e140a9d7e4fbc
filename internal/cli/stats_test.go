package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtruss/truss"
)

func TestDescribe(t *testing.T) {
	g, err := readEdgeList(strings.NewReader("0 1\n2 3\n3 3\n2 3\n"), defaultMaxVertices)
	require.NoError(t, err)

	assert.Equal(t, []any{
		"vertices", 4,
		"edges", 4,
		"loops", 1,
		"parallel", 1,
		"components", 2,
	}, describe(g))
}

func TestDescribe_SkipsIsolated(t *testing.T) {
	g, err := readEdgeList(strings.NewReader("0 1\n5 6\n"), defaultMaxVertices)
	require.NoError(t, err)

	kv := describe(g)
	assert.Equal(t, 7, kv[1])
	assert.Equal(t, 2, kv[len(kv)-1], "vertices 2..4 have no edges")
}

func TestLevelComponents_Demo(t *testing.T) {
	g, err := demoGraph()
	require.NoError(t, err)
	values, err := truss.Trussness(g)
	require.NoError(t, err)

	comps, err := levelComponents(context.Background(), g, values)
	require.NoError(t, err)
	// The 4-truss is the 5-clique and the {5,7,8,9} clique, joined only by
	// 3-truss edges.
	assert.Equal(t, map[int]int{2: 1, 3: 1, 4: 2, 5: 1}, comps)
}

func TestLevelComponents_Multigraph(t *testing.T) {
	// triangle 0-1-2 with {0,1} doubled, pendant 2-3, separate loop on 4
	g, err := readEdgeList(strings.NewReader("0 1\n1 2\n0 2\n1 0\n2 3\n4 4\n"), defaultMaxVertices)
	require.NoError(t, err)
	values, err := truss.Trussness(g)
	require.NoError(t, err)
	require.Equal(t, []int{4, 4, 4, 2, 2, 2}, values)

	comps, err := levelComponents(context.Background(), g, values)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2: 2, 4: 1}, comps, "the loop vertex stands alone at k=2")
}

func TestLevelComponents_Cancelled(t *testing.T) {
	g, err := demoGraph()
	require.NoError(t, err)
	values, err := truss.Trussness(g)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = levelComponents(ctx, g, values)
	assert.ErrorIs(t, err, context.Canceled)
}
