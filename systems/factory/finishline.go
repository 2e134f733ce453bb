package factory

import (
	"github.com/automoto/mazeescape/archetypes"
	"github.com/automoto/mazeescape/assets"
	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFinishLine spawns the level exit. Its glow pulses between half and
// full opacity.
func CreateFinishLine(ecs *ecs.ECS, cell, trigger gamemath.Rect) *donburi.Entry {
	finishLine := archetypes.FinishLine.Spawn(ecs)

	components.FinishLine.SetValue(finishLine, components.FinishLineData{
		Cell:    cell,
		Trigger: trigger,
	})
	img := assets.Sprites().Image(cfg.SpriteExit, cell.W, cell.H, cfg.UI.ExitColor)
	components.Sprite.SetValue(finishLine, components.SpriteData{Image: img})
	components.Tween.SetValue(finishLine, components.TweenData{
		Tween: gween.New(0.5, 1, cfg.Animation.ExitGlowDuration, ease.InOutSine),
		Value: 0.5,
	})

	return finishLine
}
