package scenes

import (
	"math/rand"

	cfg "github.com/automoto/mazeescape/config"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	// Quit ends the game loop after the current frame.
	Quit()
}

// levelRand returns the hazard shuffle source for level n. A zero debug seed
// lets the planner seed from the clock.
func levelRand(n int) *rand.Rand {
	if cfg.Debug.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(cfg.Debug.Seed + int64(n)))
}
