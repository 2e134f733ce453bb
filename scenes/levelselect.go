package scenes

import (
	"errors"
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/leveldata"
	"github.com/automoto/mazeescape/shared/progression"
	"github.com/automoto/mazeescape/systems"
	"github.com/automoto/mazeescape/ui"
)

// LevelSelectScene lists the levels and the skin shop
type LevelSelectScene struct {
	sceneChanger SceneChanger
	table        *leveldata.Table
	selectUI     *ui.LevelSelectUI
	once         sync.Once

	next  interface{}
	dirty bool
	quit  bool
}

// NewLevelSelectScene creates a new level select scene
func NewLevelSelectScene(sc SceneChanger, table *leveldata.Table) *LevelSelectScene {
	return &LevelSelectScene{sceneChanger: sc, table: table}
}

func (s *LevelSelectScene) Update() {
	s.once.Do(s.configure)

	s.selectUI.Update()

	// Widgets are rebuilt and scenes switched outside the click handlers.
	switch {
	case s.quit:
		systems.ClosePersistence()
		s.sceneChanger.Quit()
	case s.next != nil:
		s.sceneChanger.ChangeScene(s.next)
	case s.dirty:
		s.dirty = false
		systems.SaveProgress()
		s.selectUI.Refresh()
	}
}

func (s *LevelSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if s.selectUI == nil {
		return
	}
	s.selectUI.Draw(screen)
}

func (s *LevelSelectScene) configure() {
	progress := systems.Progress()
	s.selectUI = ui.NewLevelSelectUI(s.table, progress, cfg.Skins)

	s.selectUI.OnPlay = func(level int) {
		if !progress.IsUnlocked(level) {
			return
		}
		s.next = NewLevelScene(s.sceneChanger, s.table, level)
	}
	s.selectUI.OnBuy = func(skin string) {
		err := progress.BuySkin(cfg.Skins, skin)
		switch {
		case errors.Is(err, progression.ErrInsufficientCoins):
			s.selectUI.SetStatus("Not enough coins")
			return
		case err != nil:
			log.Warn("could not buy skin", "skin", skin, "err", err)
			s.selectUI.SetStatus(err.Error())
			return
		}
		if err := progress.SelectSkin(skin); err != nil {
			log.Warn("could not select skin", "skin", skin, "err", err)
		}
		s.selectUI.SetStatus("")
		s.dirty = true
	}
	s.selectUI.OnSkin = func(skin string) {
		if err := progress.SelectSkin(skin); err != nil {
			s.selectUI.SetStatus(err.Error())
			return
		}
		s.selectUI.SetStatus("")
		s.dirty = true
	}
	s.selectUI.OnQuit = func() {
		s.quit = true
	}
}
