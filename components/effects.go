package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a looping visual offset (coin bob, exit glow). The tween
// runs From->To; Reverse flips when it finishes so the value ping-pongs.
type TweenData struct {
	Tween   *gween.Tween
	Value   float32
	Reverse bool
}

var Tween = donburi.NewComponentType[TweenData]()

// FlashData tracks the red flash shown on the player when a run is lost.
type FlashData struct {
	Duration int // frames remaining
}

var Flash = donburi.NewComponentType[FlashData]()
