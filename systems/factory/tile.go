package factory

import (
	"github.com/automoto/mazeescape/archetypes"
	"github.com/automoto/mazeescape/assets"
	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var tileSprites = map[leveldata.TileCode]string{
	leveldata.TileDirt:  cfg.SpriteDirt,
	leveldata.TileGrass: cfg.SpriteGrass,
	leveldata.TileLava:  cfg.SpriteLava,
}

// CreateTile spawns a solid or lava tile.
func CreateTile(ecs *ecs.ECS, t leveldata.Tile) *donburi.Entry {
	arch := archetypes.Tile
	if t.Code.Category() == leveldata.CategoryHazard {
		arch = archetypes.Hazard
	}
	tile := arch.Spawn(ecs)

	components.Tile.SetValue(tile, components.TileData{Tile: t})
	img := assets.Sprites().Image(tileSprites[t.Code], t.Rect.W, t.Rect.H, cfg.UI.TileColors[t.Code])
	components.Sprite.SetValue(tile, components.SpriteData{Image: img})

	return tile
}
