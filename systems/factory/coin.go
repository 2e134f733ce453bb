package factory

import (
	"github.com/automoto/mazeescape/archetypes"
	"github.com/automoto/mazeescape/assets"
	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/session"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCoin(ecs *ecs.ECS, c *session.Coin) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	components.Coin.SetValue(coin, components.CoinData{Coin: c})
	img := assets.Sprites().Image(cfg.SpriteCoin, c.Rect.W, c.Rect.H, cfg.UI.CoinColor)
	components.Sprite.SetValue(coin, components.SpriteData{Image: img})

	// Stagger the bob by column so a row of coins does not move in lockstep.
	tw := gween.New(0, cfg.Animation.CoinBobHeight, cfg.Animation.CoinBobDuration, ease.InOutQuad)
	tw.Set(float32(c.Cell.Col%4) * cfg.Animation.CoinBobDuration / 4)
	components.Tween.SetValue(coin, components.TweenData{Tween: tw})

	return coin
}
