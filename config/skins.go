package config

import "github.com/automoto/mazeescape/shared/progression"

// Skins is the shop catalog. The default skin is free and always owned.
var Skins = progression.Catalog{
	{ID: progression.DefaultSkin, Name: "Ninja", Price: 0},
	{ID: "knight", Name: "Knight", Price: 15},
	{ID: "robot", Name: "Robot", Price: 30},
	{ID: "zombie", Name: "Zombie", Price: 50},
}
