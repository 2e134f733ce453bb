package leveldata

import (
	"fmt"
	"strings"
)

// Grid is a row-major matrix of tile codes.
type Grid [][]int

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the width of the first row.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Code returns the tile code at (row, col). Out of range cells are empty.
func (g Grid) Code(row, col int) TileCode {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return TileEmpty
	}
	return TileCode(g[row][col])
}

// Validate checks that the grid is non-empty and rectangular.
func (g Grid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmptyGrid
	}
	width := len(g[0])
	for r, row := range g {
		if len(row) != width {
			return fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), width, ErrRaggedGrid)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Find returns the first cell holding code in row-major order.
func (g Grid) Find(code TileCode) (Cell, bool) {
	for r, row := range g {
		for c, v := range row {
			if TileCode(v) == code {
				return Cell{Row: r, Col: c}, true
			}
		}
	}
	return Cell{}, false
}

// Count returns how many cells hold code.
func (g Grid) Count(code TileCode) int {
	n := 0
	for _, row := range g {
		for _, v := range row {
			if TileCode(v) == code {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both grids hold the same codes.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(o[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// ParseRows decodes the compact text form used by the level table: one
// string per row, one digit per cell, '.' for empty.
func ParseRows(rows []string) (Grid, error) {
	g := make(Grid, len(rows))
	for r, line := range rows {
		g[r] = make([]int, 0, len(line))
		for c, ch := range line {
			switch {
			case ch == '.':
				g[r] = append(g[r], int(TileEmpty))
			case ch >= '0' && ch <= '9':
				g[r] = append(g[r], int(ch-'0'))
			default:
				return nil, fmt.Errorf("row %d col %d: invalid tile %q", r, c, ch)
			}
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// String renders the grid in the same compact form ParseRows accepts.
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			switch {
			case v == int(TileEmpty):
				sb.WriteByte('.')
			case v >= 0 && v <= 9:
				sb.WriteByte(byte('0' + v))
			default:
				sb.WriteByte('?')
			}
		}
	}
	return sb.String()
}
