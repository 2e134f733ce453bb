// Package leveldata turns tile-code grids into level geometry. It has no
// dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

import "errors"

// Configuration errors returned while building or loading a level.
var (
	ErrEmptyGrid    = errors.New("level grid is empty")
	ErrRaggedGrid   = errors.New("level grid rows differ in length")
	ErrMissingSpawn = errors.New("level grid has no spawn cell")
	ErrUnknownLevel = errors.New("unknown level")
)

// TileCode is the integer stored in a level grid cell.
type TileCode int

const (
	TileEmpty  TileCode = 0
	TileDirt   TileCode = 1
	TileGrass  TileCode = 2
	TilePatrol TileCode = 3
	TileLava   TileCode = 4
	TileCoin   TileCode = 5
	TileExit   TileCode = 7
	TileSpawn  TileCode = 9
)

// Category is what a tile code means to the level model.
type Category int

const (
	CategoryEmpty Category = iota
	CategorySolid
	CategoryHazard
	CategoryPatrolMarker
	CategoryCollectible
	CategoryExit
	CategorySpawn
)

// Category maps the code to its meaning. Unknown codes are empty.
func (c TileCode) Category() Category {
	switch c {
	case TileDirt, TileGrass:
		return CategorySolid
	case TileLava:
		return CategoryHazard
	case TilePatrol:
		return CategoryPatrolMarker
	case TileCoin:
		return CategoryCollectible
	case TileExit:
		return CategoryExit
	case TileSpawn:
		return CategorySpawn
	}
	return CategoryEmpty
}

// Solid reports whether the code blocks movement.
func (c TileCode) Solid() bool {
	return c.Category() == CategorySolid
}

func (c TileCode) String() string {
	switch c {
	case TileEmpty:
		return "empty"
	case TileDirt:
		return "dirt"
	case TileGrass:
		return "grass"
	case TilePatrol:
		return "patrol"
	case TileLava:
		return "lava"
	case TileCoin:
		return "coin"
	case TileExit:
		return "exit"
	case TileSpawn:
		return "spawn"
	}
	return "unknown"
}

// Cell identifies a grid position.
type Cell struct {
	Row, Col int
}
