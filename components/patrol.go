package components

import (
	"github.com/automoto/mazeescape/shared/actors"
	"github.com/yohamta/donburi"
)

type PatrolData struct {
	Actor *actors.Patrol
}

var Patrol = donburi.NewComponentType[PatrolData]()
