package components

import (
	"github.com/automoto/mazeescape/shared/leveldata"
	"github.com/yohamta/donburi"
)

type TileData struct {
	leveldata.Tile
}

var Tile = donburi.NewComponentType[TileData]()
