package components

import (
	"github.com/automoto/mazeescape/shared/gamemath"
	"github.com/yohamta/donburi"
)

// FinishLineData is the level exit. Trigger is the inset rectangle the
// player has to touch; Cell is the full tile drawn on screen.
type FinishLineData struct {
	Cell    gamemath.Rect
	Trigger gamemath.Rect
}

var FinishLine = donburi.NewComponentType[FinishLineData]()
