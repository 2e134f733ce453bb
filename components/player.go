package components

import (
	"github.com/automoto/mazeescape/shared/actors"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Actor *actors.Player
	Skin  string
}

var Player = donburi.NewComponentType[PlayerData]()
