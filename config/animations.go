package config

// AnimationDef names a sprite sequence on disk: frame i of a skin lives at
// <SpriteFolder>/<skin>/<Prefix><i as %03d>.png.
type AnimationDef struct {
	Prefix string
	Frames int
}

// PlayerAnimations maps each player state to its frame sequence.
var PlayerAnimations = map[StateID]AnimationDef{
	Idle:    {Prefix: "Idle__", Frames: 10},
	Running: {Prefix: "Run__", Frames: 10},
	Jump:    {Prefix: "Jump__", Frames: 10},
}

// Object sprites, one image each.
const (
	SpriteDirt   = "tiles/dirt.png"
	SpriteGrass  = "tiles/grass.png"
	SpriteLava   = "tiles/lava.png"
	SpriteCoin   = "objects/coin.png"
	SpriteExit   = "objects/exit.png"
	SpritePatrol = "objects/patrol.png"
)
