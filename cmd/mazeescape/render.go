package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/automoto/mazeescape/shared/leveldata"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	cellStyles = map[leveldata.TileCode]lipgloss.Style{
		leveldata.TileEmpty:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		leveldata.TileDirt:   lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		leveldata.TileGrass:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		leveldata.TilePatrol: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		leveldata.TileLava:   lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
		leveldata.TileCoin:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		leveldata.TileExit:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		leveldata.TileSpawn:  lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true),
	}

	cellGlyphs = map[leveldata.TileCode]string{
		leveldata.TileEmpty:  "·",
		leveldata.TileDirt:   "█",
		leveldata.TileGrass:  "▓",
		leveldata.TilePatrol: "P",
		leveldata.TileLava:   "~",
		leveldata.TileCoin:   "o",
		leveldata.TileExit:   "E",
		leveldata.TileSpawn:  "S",
	}
)

// renderGrid draws grid as coloured glyphs inside a border. Cells in
// highlight are drawn reversed.
func renderGrid(grid leveldata.Grid, highlight []leveldata.Cell) string {
	marked := make(map[leveldata.Cell]bool, len(highlight))
	for _, c := range highlight {
		marked[c] = true
	}

	var b strings.Builder
	for r, row := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, v := range row {
			code := leveldata.TileCode(v)
			glyph, ok := cellGlyphs[code]
			if !ok {
				glyph = "?"
			}
			style := cellStyles[code]
			if marked[leveldata.Cell{Row: r, Col: c}] {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(glyph))
		}
	}
	return gridStyle.Render(b.String())
}

func legend() string {
	parts := []string{
		cellStyles[leveldata.TileSpawn].Render("S") + " spawn",
		cellStyles[leveldata.TileExit].Render("E") + " exit",
		cellStyles[leveldata.TileCoin].Render("o") + " coin",
		cellStyles[leveldata.TileLava].Render("~") + " lava",
		cellStyles[leveldata.TilePatrol].Render("P") + " patrol",
	}
	return dimStyle.Render(strings.Join(parts, "  "))
}
