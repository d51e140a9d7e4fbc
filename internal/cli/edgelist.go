package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtruss/builder"
	"github.com/katalvlaran/lvtruss/core"
)

// ErrEdgeList is returned for malformed edge-list input.
var ErrEdgeList = errors.New("malformed edge list")

// readEdgeList parses one "u v" pair per line into a graph.
//
// Fields are separated by whitespace or commas; '#' starts a comment and
// blank lines are skipped. Vertex IDs are non-negative integers and the
// vertex count is the largest ID plus one. Repeated pairs become parallel
// edges and "v v" becomes a self-loop; edge IDs follow line order.
func readEdgeList(r io.Reader, maxVertices int) (*core.Graph, error) {
	var pairs [][2]int
	top := -1

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", ErrEdgeList, line, len(fields))
		}

		var p [2]int
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: line %d: vertex %q is not a non-negative integer", ErrEdgeList, line, f)
			}
			if v >= maxVertices {
				return nil, fmt.Errorf("%w: line %d: vertex %d exceeds limit %d", ErrEdgeList, line, v, maxVertices)
			}
			p[i] = v
			top = max(top, v)
		}
		pairs = append(pairs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return builder.BuildGraph(
		[]core.GraphOption{core.WithMultiEdges(), core.WithLoops()}, nil,
		builder.Vertices(top+1),
		builder.Edges(pairs...),
	)
}
