package components

import (
	"github.com/automoto/mazeescape/shared/leveldata"
	"github.com/automoto/mazeescape/shared/session"
	"github.com/yohamta/donburi"
)

// LevelData is the singleton holding the running level.
type LevelData struct {
	Index    int // 1-based position in the level table
	Def      leveldata.LevelDef
	Hazards  int // hazards actually requested from the planner
	Run      *session.Session
	Recorded bool // outcome already persisted
}

var Level = donburi.NewComponentType[LevelData]()
