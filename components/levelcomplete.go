package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the level complete overlay
type LevelCompleteData struct {
	IsComplete bool
	Coins      int
	Unlocked   int // level number unlocked by this run, 0 if none
	Ticks      int
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
