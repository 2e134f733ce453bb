package config

import "github.com/automoto/mazeescape/shared/actors"

// StateID is the player animation state.
type StateID = actors.AnimState

// Player animation states.
const (
	Idle    = actors.AnimIdle
	Running = actors.AnimRun
	Jump    = actors.AnimJump
)
