// Package placement chooses where patrol hazards go before a level is built.
package placement

import (
	"math/rand"
	"time"

	"github.com/automoto/mazeescape/shared/gamemath"
	"github.com/automoto/mazeescape/shared/leveldata"
)

// Rules are the constraints a patrol origin cell must satisfy.
type Rules struct {
	TileSize  int
	MoveRange int // patrol travel in pixels; MoveRange/TileSize extra cells are checked

	FirstRow         int // topmost candidate row
	Headroom         int // empty rows required above the path
	MinSpawnDistance int // Manhattan, in tiles
	MinExitDistance  int // Manhattan, in tiles
	MinRowGap        int // same-row picks closer than or equal to this are rejected
}

// DefaultRules matches config.Placement.
func DefaultRules() Rules {
	return Rules{
		TileSize:         50,
		MoveRange:        100,
		FirstRow:         2,
		Headroom:         2,
		MinSpawnDistance: 3,
		MinExitDistance:  2,
		MinRowGap:        2,
	}
}

// Span is the number of extra cells a patrol path covers to the right of its origin.
func (r Rules) Span() int {
	if r.TileSize <= 0 {
		return 0
	}
	return r.MoveRange / r.TileSize
}

// Candidates returns every valid patrol origin in row-major order.
func Candidates(grid leveldata.Grid, rules Rules) []leveldata.Cell {
	spawn, hasSpawn := grid.Find(leveldata.TileSpawn)
	exit, hasExit := grid.Find(leveldata.TileExit)
	span := rules.Span()

	var out []leveldata.Cell
	for r := rules.FirstRow; r <= grid.Rows()-2; r++ {
		for c := 0; c <= grid.Cols()-1-span; c++ {
			if !pathClear(grid, r, c, span, rules.Headroom) {
				continue
			}
			if hasSpawn && gamemath.Manhattan(r, c, spawn.Row, spawn.Col) < rules.MinSpawnDistance {
				continue
			}
			if hasExit && gamemath.Manhattan(r, c, exit.Row, exit.Col) < rules.MinExitDistance {
				continue
			}
			out = append(out, leveldata.Cell{Row: r, Col: c})
		}
	}
	return out
}

// pathClear checks the row-open, support and headroom tests for the cells
// (r, c) through (r, c+span).
func pathClear(grid leveldata.Grid, r, c, span, headroom int) bool {
	for k := 0; k <= span; k++ {
		if grid.Code(r, c+k) != leveldata.TileEmpty {
			return false
		}
		if !grid.Code(r+1, c+k).Solid() {
			return false
		}
		for h := 1; h <= headroom; h++ {
			if r-h < 0 || grid.Code(r-h, c+k) != leveldata.TileEmpty {
				return false
			}
		}
	}
	return true
}

// Plan returns a copy of grid with up to count patrol markers added. Valid
// cells are shuffled with rng and accepted greedily, skipping any that sit
// too close to an earlier pick on the same row. The input grid is not
// modified; the chosen cells are returned in pick order. A nil rng is seeded
// from the clock.
func Plan(grid leveldata.Grid, count int, rng *rand.Rand, rules Rules) (leveldata.Grid, []leveldata.Cell) {
	out := grid.Clone()
	if count <= 0 {
		return out, nil
	}

	candidates := Candidates(grid, rules)
	if len(candidates) == 0 {
		return out, nil
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	chosen := make([]leveldata.Cell, 0, count)
	for _, cand := range candidates {
		if len(chosen) == count {
			break
		}
		if tooClose(cand, chosen, rules.MinRowGap) {
			continue
		}
		chosen = append(chosen, cand)
	}

	for _, cell := range chosen {
		out[cell.Row][cell.Col] = int(leveldata.TilePatrol)
	}
	return out, chosen
}

func tooClose(cand leveldata.Cell, chosen []leveldata.Cell, gap int) bool {
	for _, c := range chosen {
		if c.Row == cand.Row && gamemath.Abs(c.Col-cand.Col) <= gap {
			return true
		}
	}
	return false
}
