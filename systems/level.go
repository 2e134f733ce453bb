package systems

import (
	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/actors"
	"github.com/automoto/mazeescape/shared/session"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const defeatFlashFrames = 30

// UpdateLevel advances the run by one tick and reacts to its outcome.
func UpdateLevel(e *ecs.ECS) {
	level := GetLevel(e)
	if level == nil || level.Run.Outcome().Terminal() {
		return
	}

	input := getOrCreateInput(e)
	outcome := level.Run.Step(session.Input{
		Controls: actors.Controls{
			Left:  GetAction(input, cfg.ActionMoveLeft).Pressed,
			Right: GetAction(input, cfg.ActionMoveRight).Pressed,
			Jump:  GetAction(input, cfg.ActionJump).Pressed,
		},
		Quit: GetAction(input, cfg.ActionQuit).JustPressed,
	})

	removeCollectedCoins(e)

	switch outcome {
	case session.OutcomeCompleted:
		lc := GetOrCreateLevelComplete(e)
		lc.IsComplete = true
		lc.Coins = level.Run.CoinsCollected()
		lc.Ticks = level.Run.Ticks()
		if Progress().CompleteLevel(level.Index) {
			lc.Unlocked = level.Index + 1
		}
		recordRun(level)
	case session.OutcomeDefeated:
		GetOrCreateGameOver(e).IsOver = true
		if entry, ok := components.Player.First(e.World); ok {
			components.Flash.SetValue(entry, components.FlashData{Duration: defeatFlashFrames})
		}
		recordRun(level)
	case session.OutcomeAborted:
		recordRun(level)
	}
}

// removeCollectedCoins drops the entities of coins the run has picked up.
func removeCollectedCoins(e *ecs.ECS) {
	var collected []donburi.Entity
	components.Coin.Each(e.World, func(entry *donburi.Entry) {
		if components.Coin.Get(entry).Collected {
			collected = append(collected, entry.Entity())
		}
	})
	for _, ent := range collected {
		e.World.Remove(ent)
	}
}

// GetLevel returns the running level, or nil before one was created.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// IsAborted reports whether the player quit the level.
func IsAborted(e *ecs.ECS) bool {
	level := GetLevel(e)
	return level != nil && level.Run.Outcome() == session.OutcomeAborted
}
