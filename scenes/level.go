package scenes

import (
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/leveldata"
	"github.com/automoto/mazeescape/systems"
	"github.com/automoto/mazeescape/systems/factory"
)

// LevelScene plays one level of the table. Each retry gets a fresh scene so
// patrols and coins start over.
type LevelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	table        *leveldata.Table
	index        int
	once         sync.Once
	failed       bool
}

// NewLevelScene creates a scene for level n (1-based).
func NewLevelScene(sc SceneChanger, table *leveldata.Table, n int) *LevelScene {
	return &LevelScene{sceneChanger: sc, table: table, index: n}
}

func (ls *LevelScene) Update() {
	ls.once.Do(ls.configure)
	if ls.failed {
		ls.sceneChanger.ChangeScene(NewLevelSelectScene(ls.sceneChanger, ls.table))
		return
	}

	ls.ecs.Update()

	if systems.IsAborted(ls.ecs) {
		ls.sceneChanger.ChangeScene(NewLevelSelectScene(ls.sceneChanger, ls.table))
	}
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	createRetryScene := func() interface{} {
		return NewLevelScene(ls.sceneChanger, ls.table, ls.index)
	}
	createNextScene := func() interface{} {
		next := ls.index + 1
		if next > ls.table.Len() || !systems.Progress().IsUnlocked(next) {
			return nil
		}
		return NewLevelScene(ls.sceneChanger, ls.table, next)
	}
	createMenuScene := func() interface{} {
		return NewLevelSelectScene(ls.sceneChanger, ls.table)
	}

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and level end checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateLevel))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))

	// Overlays
	ecs.AddSystem(systems.NewUpdateLevelComplete(ls.sceneChanger, createNextScene, createMenuScene))
	ecs.AddSystem(systems.NewUpdateGameOver(ls.sceneChanger, createRetryScene, createMenuScene))

	// Renderers, by layer
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.LayerTiles, systems.DrawTiles)
	ecs.AddRenderer(cfg.LayerTiles, systems.DrawFinishLine)
	ecs.AddRenderer(cfg.LayerCoins, systems.DrawCoins)
	ecs.AddRenderer(cfg.LayerPatrols, systems.DrawPatrols)
	ecs.AddRenderer(cfg.LayerPlayer, systems.DrawPlayer)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawPause)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawLevelComplete)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawGameOver)

	ls.ecs = ecs

	if _, err := factory.CreateLevel(ls.ecs, ls.table, ls.index, cfg.Debug.Hazards, levelRand(ls.index), systems.Progress()); err != nil {
		log.Error("could not start level", "level", ls.index, "err", err)
		ls.failed = true
	}
}
