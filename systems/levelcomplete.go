package systems

import (
	"fmt"

	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdateLevelComplete creates the system that leaves the level complete
// overlay: to the next level when there is one, otherwise to level select.
func NewUpdateLevelComplete(sceneChanger SceneChanger, createNextScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		levelComplete := GetOrCreateLevelComplete(e)
		if !levelComplete.IsComplete {
			return
		}

		input := getOrCreateInput(e)
		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		if next := createNextScene(); next != nil {
			sceneChanger.ChangeScene(next)
			return
		}
		sceneChanger.ChangeScene(createMenuScene())
	}
}

// DrawLevelComplete renders the level complete overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.LevelComplete.OverlayColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := cfg.LevelComplete.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.LevelComplete.TitleY), cfg.LevelComplete.TitleColor)

	msgFont := fonts.Bold.Get()
	msg := fmt.Sprintf(cfg.LevelComplete.Message, levelComplete.Coins)
	text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), int(cfg.LevelComplete.MessageY), cfg.LevelComplete.TextColor)

	if levelComplete.Unlocked > 0 {
		unlocked := fmt.Sprintf(cfg.LevelComplete.UnlockedText, levelComplete.Unlocked)
		text.Draw(screen, unlocked, msgFont, centerTextX(unlocked, msgFont, width), int(cfg.LevelComplete.MessageY)+40, cfg.LevelComplete.TitleColor)
	}

	hintFont := fonts.Small.Get()
	input := getOrCreateInput(e)
	hint := getLevelCompleteHint(input.LastInputMethod)
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(cfg.LevelComplete.HintY), cfg.LevelComplete.HintColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

// getLevelCompleteHint returns the appropriate hint for level complete screen
func getLevelCompleteHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press Cross to continue"
	case components.InputXbox:
		return "Press A to continue"
	}
	return cfg.LevelComplete.ContinueHint
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{
			IsComplete: false,
		})
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	return GetOrCreateLevelComplete(e).IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution once the run has
// ended, won or lost.
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) || IsGameOver(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or the run is over
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithLevelCompleteCheck(system))
}
