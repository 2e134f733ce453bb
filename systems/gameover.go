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

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createRetryScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		if !gameOver.IsOver {
			return
		}
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createRetryScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawGameOver renders the game over overlay on top of the frozen level
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)
	if !gameOver.IsOver {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "YOU DIED"
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		text.Draw(screen, option, menuFont, centerTextX(option, menuFont, width), int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}

// IsGameOver reports whether the player was defeated
func IsGameOver(e *ecs.ECS) bool {
	return GetOrCreateGameOver(e).IsOver
}
