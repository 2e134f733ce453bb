package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/mazeescape/archetypes"
	"github.com/automoto/mazeescape/components"
	cfg "github.com/automoto/mazeescape/config"
	"github.com/automoto/mazeescape/shared/leveldata"
	"github.com/automoto/mazeescape/shared/progression"
	"github.com/automoto/mazeescape/shared/session"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel plans and builds level n (1-based) of table, starts a run on
// it and spawns an entity for everything the run draws. hazards < 0 uses the
// table's hazard count.
func CreateLevel(ecs *ecs.ECS, table *leveldata.Table, n, hazards int, rng *rand.Rand, progress *progression.State) (*donburi.Entry, error) {
	def, err := table.Level(n)
	if err != nil {
		return nil, err
	}
	if hazards < 0 {
		hazards = def.Hazards
	}

	sc := cfg.SessionConfig()
	model, err := session.Prepare(def.Grid, hazards, rng, sc)
	if err != nil {
		return nil, fmt.Errorf("level %d (%s): %w", n, def.Name, err)
	}
	run := session.New(model, progress, sc.Player)

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Index:   n,
		Def:     def,
		Hazards: hazards,
		Run:     run,
	})

	for _, t := range model.Tiles {
		CreateTile(ecs, t)
	}
	if model.HasExit {
		CreateFinishLine(ecs, model.CellRect(model.Exit), model.ExitTrigger)
	}
	for _, c := range run.Coins {
		CreateCoin(ecs, c)
	}
	for _, p := range model.Patrols {
		CreatePatrol(ecs, p)
	}
	CreatePlayer(ecs, run.Player, run.Skin)

	return level, nil
}
