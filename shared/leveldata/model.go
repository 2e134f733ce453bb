package leveldata

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/automoto/mazeescape/shared/actors"
	"github.com/automoto/mazeescape/shared/gamemath"
)

// Options tunes how a grid becomes a Model.
type Options struct {
	Patrol actors.PatrolConfig
	// Pixels trimmed from each side of the exit cell to form the trigger.
	ExitInset int
	// Side of the square coin hitbox centred in its cell. Zero means half a tile.
	CollectibleSize int
}

// DefaultOptions matches config.Level.
func DefaultOptions() Options {
	return Options{
		Patrol:    actors.DefaultPatrolConfig(),
		ExitInset: 10,
	}
}

// Tile is a static, drawable cell: a solid or a lava tile.
type Tile struct {
	Code TileCode
	Cell Cell
	Rect gamemath.Rect
}

// Collectible is a coin placed in the level.
type Collectible struct {
	Cell Cell
	Rect gamemath.Rect
}

// Model is a level ready to be played. Tiles, Solids and Hazards never change
// after Build; Patrols are live actors, so a retry needs a fresh Model.
type Model struct {
	Grid     Grid
	OriginX  int
	OriginY  int
	TileSize int

	// Tiles, then Collectibles, then Patrols is the draw order.
	Tiles        []Tile
	Collectibles []Collectible
	Patrols      []*actors.Patrol

	Solids  []gamemath.Rect
	Hazards []gamemath.Rect

	Spawn       Cell
	Exit        Cell
	HasExit     bool
	ExitTrigger gamemath.Rect

	collisionSolids []gamemath.Rect
}

// Build decodes grid into a Model placed at (originX, originY). It fails when
// the grid is empty, ragged or has no spawn cell.
func Build(grid Grid, originX, originY, tileSize int, opts Options) (*Model, error) {
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("build level: invalid tile size %d", tileSize)
	}

	m := &Model{
		Grid:     grid.Clone(),
		OriginX:  originX,
		OriginY:  originY,
		TileSize: tileSize,
	}

	coinSize := opts.CollectibleSize
	if coinSize <= 0 {
		coinSize = tileSize / 2
	}
	coinInset := (tileSize - coinSize) / 2

	hasSpawn := false
	for r, row := range grid {
		for c, v := range row {
			code := TileCode(v)
			cell := Cell{Row: r, Col: c}
			rect := m.CellRect(cell)

			switch code.Category() {
			case CategorySolid:
				m.Solids = append(m.Solids, rect)
				m.Tiles = append(m.Tiles, Tile{Code: code, Cell: cell, Rect: rect})
			case CategoryHazard:
				m.Hazards = append(m.Hazards, rect)
				m.Tiles = append(m.Tiles, Tile{Code: code, Cell: cell, Rect: rect})
			case CategoryPatrolMarker:
				// The patrol only ever sees solids scanned before it.
				n := len(m.Solids)
				m.Patrols = append(m.Patrols, actors.NewPatrol(rect, opts.Patrol, m.Solids[:n:n]))
			case CategoryCollectible:
				m.Collectibles = append(m.Collectibles, Collectible{
					Cell: cell,
					Rect: rect.Inset(coinInset, coinInset),
				})
			case CategoryExit:
				if m.HasExit {
					log.Warn("duplicate exit cell, keeping the last one", "previous", m.Exit, "row", r, "col", c)
				}
				m.Exit = cell
				m.HasExit = true
				m.ExitTrigger = rect.Inset(opts.ExitInset, opts.ExitInset)
			case CategorySpawn:
				if hasSpawn {
					log.Warn("duplicate spawn cell, keeping the last one", "previous", m.Spawn, "row", r, "col", c)
				}
				m.Spawn = cell
				hasSpawn = true
			}
		}
	}

	if !hasSpawn {
		return nil, fmt.Errorf("build level: %w", ErrMissingSpawn)
	}

	m.collisionSolids = m.Solids
	if m.HasExit {
		m.collisionSolids = make([]gamemath.Rect, 0, len(m.Solids))
		for _, s := range m.Solids {
			if !s.Intersects(m.ExitTrigger) {
				m.collisionSolids = append(m.collisionSolids, s)
			}
		}
	}

	return m, nil
}

// CellRect returns the world rectangle covered by cell.
func (m *Model) CellRect(cell Cell) gamemath.Rect {
	return gamemath.NewRect(
		m.OriginX+cell.Col*m.TileSize,
		m.OriginY+cell.Row*m.TileSize,
		m.TileSize,
		m.TileSize,
	)
}

// SpawnPosition returns the top-left corner for an actor of size w×h standing
// horizontally centred in the spawn cell with its feet on the cell bottom.
func (m *Model) SpawnPosition(w, h int) (int, int) {
	cell := m.CellRect(m.Spawn)
	return cell.X + (cell.W-w)/2, cell.Bottom() - h
}

// CollisionSolids are the solids the player collides with. Tiles under the
// exit trigger are left out so the player can step inside it.
func (m *Model) CollisionSolids() []gamemath.Rect {
	return m.collisionSolids
}

// Bounds is the world rectangle covered by the grid.
func (m *Model) Bounds() gamemath.Rect {
	return gamemath.NewRect(m.OriginX, m.OriginY, m.Grid.Cols()*m.TileSize, m.Grid.Rows()*m.TileSize)
}

// Surroundings bundles what the player collides with each tick.
func (m *Model) Surroundings() actors.Surroundings {
	return actors.Surroundings{
		Solids:  m.collisionSolids,
		Hazards: m.Hazards,
		Patrols: m.Patrols,
	}
}
