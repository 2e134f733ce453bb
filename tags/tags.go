package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Tile       = donburi.NewTag().SetName("Tile")
	Hazard     = donburi.NewTag().SetName("Hazard")
	Patrol     = donburi.NewTag().SetName("Patrol")
	Coin       = donburi.NewTag().SetName("Coin")
	FinishLine = donburi.NewTag().SetName("FinishLine")
)
