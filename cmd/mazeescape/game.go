package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/fonts"
	"github.com/automoto/mazeescape/scenes"
	"github.com/automoto/mazeescape/shared/leveldata"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
	quit  bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit stops the game loop after this frame
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(table *leveldata.Table) *Game {
	fonts.LoadDefaults()

	g := &Game{}
	if cfg.Debug.SkipMenu {
		g.scene = scenes.NewLevelScene(g, table, cfg.Debug.StartLevel)
	} else {
		g.scene = scenes.NewLevelSelectScene(g, table)
	}
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}
