package systems

import (
	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if IsLevelComplete(ecs) || IsGameOver(ecs) {
		pause.IsPaused = false
		return
	}

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		pause.SelectedOption = components.MenuResume
	}

	if !pause.IsPaused {
		return
	}

	numOptions := int(components.MenuQuitLevel) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		pause.IsPaused = false
		if pause.SelectedOption == components.MenuQuitLevel {
			if level := GetLevel(ecs); level != nil {
				level.Run.Abort()
				recordRun(level)
			}
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()
	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		text.Draw(screen, option, fontFace, centerTextX(option, fontFace, width), int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-12, cfg.Pause.TextColorNormal)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select   Share: Resume"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select   Back: Resume"
	}
	return "Arrows: Navigate   Enter: Select   P: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Pause))
	}
	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
