package systems

import (
	"fmt"

	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPanelWidth  = 260
	hudPanelHeight = 58
	hudLineHeight  = 20
)

// DrawHUD renders the level name, the coins picked up in this run and the
// saved coin total in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	level := GetLevel(e)
	if level == nil {
		return
	}
	margin := float32(cfg.UI.HUDMargin)

	vector.FillRect(screen,
		margin, margin,
		hudPanelWidth, hudPanelHeight,
		cfg.UI.HUDTextBgColor, false)

	face := fonts.Regular.Get()
	x := int(margin) + 8
	y := int(margin) + hudLineHeight
	text.Draw(screen, fmt.Sprintf("Level %d: %s", level.Index, level.Def.Name), face, x, y, cfg.UI.HUDTextColor)

	icon := cfg.UI.CoinIconSize
	vector.DrawFilledCircle(screen, float32(x)+icon/2, float32(y+hudLineHeight)-icon/2, icon/2, cfg.UI.CoinColor, true)
	coins := fmt.Sprintf("%d   total %d", level.Run.CoinsCollected(), Progress().Coins)
	text.Draw(screen, coins, face, x+int(icon)+6, y+hudLineHeight, cfg.UI.HUDTextColor)
}
