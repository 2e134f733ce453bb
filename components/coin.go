package components

import (
	"github.com/automoto/mazeescape/shared/session"
	"github.com/yohamta/donburi"
)

// CoinData points at the session's coin; the entity is removed once collected.
type CoinData struct {
	*session.Coin
}

var Coin = donburi.NewComponentType[CoinData]()
