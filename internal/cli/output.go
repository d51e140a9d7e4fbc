package cli

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/katalvlaran/lvtruss/core"
)

var csvHeader = []string{"fromNode", "toNode", "truss"}

// writeCSV writes one row per edge of g in edge-ID order.
func writeCSV(w io.Writer, g *core.Graph, trussness []int, out Output) error {
	cw := csv.NewWriter(w)
	cw.Comma = []rune(out.Delimiter)[0]

	if out.Header {
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		row := []string{strconv.Itoa(e.From), strconv.Itoa(e.To), strconv.Itoa(trussness[e.ID])}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
