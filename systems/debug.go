package systems

import (
	"image/color"

	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSolidColor  = color.RGBA{100, 100, 100, 255}
	debugHazardColor = color.RGBA{255, 120, 0, 255}
	debugPatrolColor = color.RGBA{255, 0, 0, 255}
	debugPlayerColor = color.RGBA{0, 0, 255, 255}
	debugExitColor   = color.RGBA{0, 255, 0, 255}
)

// UpdateDebug toggles the collision overlay.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionDebug).JustPressed {
		cfg.Debug.ShowBoxes = !cfg.Debug.ShowBoxes
	}
}

// DrawDebug outlines every rectangle the run collides with.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBoxes {
		return
	}
	level := GetLevel(e)
	if level == nil {
		return
	}
	model := level.Run.Level

	for _, r := range model.CollisionSolids() {
		strokeRect(screen, r, debugSolidColor)
	}
	for _, r := range model.Hazards {
		strokeRect(screen, r, debugHazardColor)
	}
	for _, p := range model.Patrols {
		strokeRect(screen, p.HitRect(), debugPatrolColor)
	}
	if model.HasExit {
		strokeRect(screen, model.ExitTrigger, debugExitColor)
	}
	if entry, ok := components.Player.First(e.World); ok {
		strokeRect(screen, components.Player.Get(entry).Actor.Rect, debugPlayerColor)
	}
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
}
