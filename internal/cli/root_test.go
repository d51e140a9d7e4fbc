package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtruss/truss"
)

const demoCSV = `fromNode,toNode,truss
0,1,5
0,2,5
0,3,5
0,4,5
1,2,5
1,3,5
1,4,5
2,3,5
2,4,5
3,4,5
3,6,3
3,11,3
4,5,3
4,6,3
5,6,3
5,7,4
5,8,4
5,9,4
6,7,3
6,10,2
6,11,3
7,8,4
7,9,4
8,9,4
8,10,2
`

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))

	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "", "demo")
	require.NoError(t, err)
	assert.Equal(t, demoCSV, out)
}

func TestDemo_SeedDoesNotChangeOutput(t *testing.T) {
	for _, seed := range []string{"1", "7", "12345"} {
		out, _, err := execute(t, "", "demo", "--seed", seed)
		require.NoError(t, err)
		assert.Equal(t, demoCSV, out, "seed %s", seed)
	}
}

func TestDemo_Summary(t *testing.T) {
	_, errOut, err := execute(t, "", "demo", "--summary")
	require.NoError(t, err)
	assert.Contains(t, errOut, "edges")
	assert.Contains(t, errOut, "40.0%", "10 of 25 edges sit in the 5-truss")
	assert.Contains(t, errOut, "components")
}

func TestDemo_VerboseLogsLevels(t *testing.T) {
	_, errOut, err := execute(t, "", "demo", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "level done")
	assert.Contains(t, errOut, "Decomposed graph")
	assert.Contains(t, errOut, "components=1")
}

func TestRun_Stdin(t *testing.T) {
	in := "# triangle with a tail\n0 1\n1 2\n2 0\n2 3\n"
	out, _, err := execute(t, in, "run", "-")
	require.NoError(t, err)
	assert.Equal(t, "fromNode,toNode,truss\n0,1,3\n1,2,3\n2,0,3\n2,3,2\n", out)
}

func TestRun_FileMatchesDemo(t *testing.T) {
	var sb strings.Builder
	for _, e := range demoEdges {
		fmt.Fprintf(&sb, "%d\t%d\n", e[0], e[1])
	}
	path := writeFile(t, "demo.txt", sb.String())

	out, _, err := execute(t, "", "run", path)
	require.NoError(t, err)
	assert.Equal(t, demoCSV, out)
}

func TestRun_ConfigOverridesOutput(t *testing.T) {
	cfg := writeFile(t, "trusscsv.toml", "[output]\nheader = false\ndelimiter = \";\"\n")

	out, _, err := execute(t, "0 1\n1 2\n0 2\n", "--config", cfg, "run", "-")
	require.NoError(t, err)
	assert.Equal(t, "0;1;3\n1;2;3\n0;2;3\n", out)
}

func TestRun_Limits(t *testing.T) {
	cfg := writeFile(t, "limits.toml", "[limits]\nmax_edges = 2\n")

	_, _, err := execute(t, "0 1\n1 2\n0 2\n", "--config", cfg, "run", "-")
	require.ErrorIs(t, err, truss.ErrResourceExhausted)

	_, _, err = execute(t, "0 1\n1 2\n0 2\n", "--config", cfg, "run", "--max-edges", "0", "-")
	require.NoError(t, err, "flag overrides config")
}

func TestRun_TriangleLimit(t *testing.T) {
	// 1000 copies of each side of one triangle: 10⁹ instances.
	var sb strings.Builder
	for i := 0; i < 1000; i++ {
		sb.WriteString("0 1\n1 2\n2 0\n")
	}

	_, _, err := execute(t, sb.String(), "run", "-")
	require.ErrorIs(t, err, truss.ErrResourceExhausted, "default limit")

	cfg := writeFile(t, "limits.toml", "[limits]\nmax_triangles = 0\n")
	_, _, err = execute(t, "0 1\n1 2\n0 2\n0 1\n", "--config", cfg, "run", "--max-triangles", "1", "-")
	require.ErrorIs(t, err, truss.ErrResourceExhausted, "flag overrides config")

	out, _, err := execute(t, "0 1\n1 2\n0 2\n0 1\n", "run", "--max-triangles", "2", "-")
	require.NoError(t, err)
	assert.Equal(t, "fromNode,toNode,truss\n0,1,4\n1,2,4\n0,2,4\n0,1,2\n", out)
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "0 1 2\n", "run", "-")
	assert.ErrorIs(t, err, ErrEdgeList)

	_, _, err = execute(t, "", "run", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "", "run")
	assert.Error(t, err, "run needs exactly one argument")

	bad := writeFile(t, "bad.toml", "[log]\nlevel = \"chatty\"\n")
	_, _, err = execute(t, "", "--config", bad, "demo")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSetVersion(t *testing.T) {
	defer SetVersion("dev", "", "")
	SetVersion("1.0.0", "abc123", "2026-01-01")

	out, _, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "trusscsv 1.0.0")
	assert.Contains(t, out, "commit: abc123")
}
