package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/lvtruss/truss"
)

var (
	colorCyan = lipgloss.Color("36")  // Teal - numbers
	colorGray = lipgloss.Color("245") // Gray - headers
	colorDim  = lipgloss.Color("240") // Dim gray - borders
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleCell   = lipgloss.NewStyle().PaddingRight(1)
)

// renderLevels draws the trussness histogram as a table, one row per k,
// with the number of connected components of each k-truss.
func renderLevels(trussness []int, components map[int]int) string {
	levels := truss.Levels(trussness)
	total := len(trussness)

	rows := make([][]string, 0, len(levels))
	for _, k := range truss.LevelKeys(levels) {
		n := levels[k]
		rows = append(rows, []string{
			strconv.Itoa(k),
			strconv.Itoa(n),
			fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total)),
			strconv.Itoa(components[k]),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("k", "edges", "share", "components").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 || col == 3 {
				return styleNumber.Inherit(styleCell)
			}
			return styleCell
		})

	return t.Render()
}
