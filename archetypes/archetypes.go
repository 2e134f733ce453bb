package archetypes

import (
	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Tile = newArchetype(
		cfg.LayerTiles,
		tags.Tile,
		components.Tile,
		components.Sprite,
	)
	Hazard = newArchetype(
		cfg.LayerTiles,
		tags.Hazard,
		components.Tile,
		components.Sprite,
	)
	FinishLine = newArchetype(
		cfg.LayerTiles,
		tags.FinishLine,
		components.FinishLine,
		components.Sprite,
		components.Tween,
	)
	Coin = newArchetype(
		cfg.LayerCoins,
		tags.Coin,
		components.Coin,
		components.Sprite,
		components.Tween,
	)
	Patrol = newArchetype(
		cfg.LayerPatrols,
		tags.Patrol,
		components.Patrol,
		components.Sprite,
	)
	Player = newArchetype(
		cfg.LayerPlayer,
		tags.Player,
		components.Player,
		components.Flash,
	)
	Level = newArchetype(
		cfg.Default,
		components.Level,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
