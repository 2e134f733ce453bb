package systems

import (
	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the looping tweens and the defeat flash.
func UpdateEffects(e *ecs.ECS) {
	dt := 1 / float32(cfg.C.TPS)

	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		if tw.Tween == nil {
			return
		}
		value, finished := tw.Tween.Update(dt)
		tw.Value = value
		if finished {
			tw.Reverse = !tw.Reverse
			tw.Tween.Reset()
		}
	})

	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// tweenValue returns the ping-pong value of a tween running from -> to.
func tweenValue(tw *components.TweenData, from, to float32) float32 {
	if tw.Reverse {
		return from + to - tw.Value
	}
	return tw.Value
}
