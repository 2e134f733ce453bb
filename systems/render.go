package systems

import (
	"github.com/automoto/mazeescape/assets"
	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/actors"
	"github.com/automoto/mazeescape/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawBackground clears the screen to the sky colour.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)
}

// DrawTiles draws solid and lava tiles.
func DrawTiles(e *ecs.ECS, screen *ebiten.Image) {
	draw := func(entry *donburi.Entry) {
		tile := components.Tile.Get(entry)
		sprite := components.Sprite.Get(entry)
		drawSprite(screen, sprite.Image, float64(tile.Rect.X), float64(tile.Rect.Y), tile.Rect.W, tile.Rect.H, 1)
	}
	tags.Tile.Each(e.World, draw)
	tags.Hazard.Each(e.World, draw)
}

// DrawFinishLine draws the exit with its pulsing glow.
func DrawFinishLine(e *ecs.ECS, screen *ebiten.Image) {
	components.FinishLine.Each(e.World, func(entry *donburi.Entry) {
		exit := components.FinishLine.Get(entry)
		sprite := components.Sprite.Get(entry)
		alpha := tweenValue(components.Tween.Get(entry), 0.5, 1)
		drawSprite(screen, sprite.Image, float64(exit.Cell.X), float64(exit.Cell.Y), exit.Cell.W, exit.Cell.H, alpha)
	})
}

// DrawCoins draws the coins that have not been picked up yet.
func DrawCoins(e *ecs.ECS, screen *ebiten.Image) {
	components.Coin.Each(e.World, func(entry *donburi.Entry) {
		coin := components.Coin.Get(entry)
		if coin.Collected {
			return
		}
		sprite := components.Sprite.Get(entry)
		bob := tweenValue(components.Tween.Get(entry), 0, cfg.Animation.CoinBobHeight)
		drawSprite(screen, sprite.Image, float64(coin.Rect.X), float64(coin.Rect.Y)-float64(bob), coin.Rect.W, coin.Rect.H, 1)
	})
}

// DrawPatrols draws the patrolling hazards, mirrored when walking left.
func DrawPatrols(e *ecs.ECS, screen *ebiten.Image) {
	components.Patrol.Each(e.World, func(entry *donburi.Entry) {
		p := components.Patrol.Get(entry).Actor
		img := components.Sprite.Get(entry).Image

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		scaleTo(drawOp, img, p.Rect.W, p.Rect.H, p.Direction < 0)
		drawOp.GeoM.Translate(float64(p.Rect.X), float64(p.Rect.Y))
		screen.DrawImage(img, drawOp)
	})
}

// DrawPlayer draws the player's current animation frame for its skin.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	data := components.Player.Get(entry)
	p := data.Actor

	img := assets.Sprites().Frame(data.Skin, p.Anim, p.Frame, p.Rect.W, p.Rect.H, cfg.UI.PlayerColor)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	scaleTo(drawOp, img, p.Rect.W, p.Rect.H, p.Facing == actors.FacingLeft)
	drawOp.GeoM.Translate(float64(p.Rect.X), float64(p.Rect.Y))
	if flash := components.Flash.Get(entry); flash.Duration > 0 && flash.Duration%6 < 3 {
		drawOp.ColorScale.Scale(1, 0.3, 0.3, 1)
	}
	screen.DrawImage(img, drawOp)
}

// drawSprite draws img stretched to w x h at (x, y).
func drawSprite(screen, img *ebiten.Image, x, y float64, w, h int, alpha float32) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	scaleTo(drawOp, img, w, h, false)
	drawOp.GeoM.Translate(x, y)
	if alpha < 1 {
		drawOp.ColorScale.ScaleAlpha(alpha)
	}
	screen.DrawImage(img, drawOp)
}

// scaleTo fits img into a w x h box, optionally mirrored around its centre.
func scaleTo(op *ebiten.DrawImageOptions, img *ebiten.Image, w, h int, mirror bool) {
	b := img.Bounds()
	sx := float64(w) / float64(b.Dx())
	sy := float64(h) / float64(b.Dy())
	if mirror {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(b.Dx()), 0)
	}
	op.GeoM.Scale(sx, sy)
}
