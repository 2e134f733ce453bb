package factory

import (
	"github.com/automoto/mazeescape/archetypes"
	"github.com/automoto/mazeescape/components"
	"github.com/automoto/mazeescape/shared/actors"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, p *actors.Player, skin string) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		Actor: p,
		Skin:  skin,
	})

	return player
}
