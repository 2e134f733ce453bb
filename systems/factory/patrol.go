package factory

import (
	"github.com/automoto/mazeescape/archetypes"
	"github.com/automoto/mazeescape/assets"
	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/actors"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePatrol(ecs *ecs.ECS, p *actors.Patrol) *donburi.Entry {
	patrol := archetypes.Patrol.Spawn(ecs)

	components.Patrol.SetValue(patrol, components.PatrolData{Actor: p})
	img := assets.Sprites().Image(cfg.SpritePatrol, p.Rect.W, p.Rect.H, cfg.UI.PatrolColor)
	components.Sprite.SetValue(patrol, components.SpriteData{Image: img})

	return patrol
}
