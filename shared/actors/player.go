package actors

import "github.com/automoto/mazeescape/shared/gamemath"

// Facing is the horizontal direction the player sprite looks at.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// AnimState selects the sprite sequence.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRun
	AnimJump
	animStateCount
)

func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	}
	return "unknown"
}

// Controls is the per-tick input sample.
type Controls struct {
	Left  bool
	Right bool
	Jump  bool
}

// PlayerConfig holds the movement tuning of the player.
type PlayerConfig struct {
	Width  int
	Height int

	MoveSpeed    int
	Gravity      int
	MaxFallSpeed int
	JumpImpulse  int // negative, applied to VelocityY

	// Ticks between animation frames while running.
	WalkAnimCooldown int
	// Frames per animation, indexed by AnimState.
	FrameCounts [animStateCount]int

	// How far above a lava tile's top edge the player's feet still burn.
	LavaTolerance int
}

// DefaultPlayerConfig matches config.Player.
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Width:            40,
		Height:           50,
		MoveSpeed:        5,
		Gravity:          1,
		MaxFallSpeed:     10,
		JumpImpulse:      -15,
		WalkAnimCooldown: 5,
		FrameCounts:      [animStateCount]int{10, 10, 10},
		LavaTolerance:    5,
	}
}

// Surroundings is everything the player collides with during one tick.
type Surroundings struct {
	Solids  []gamemath.Rect // already filtered of tiles under the exit trigger
	Hazards []gamemath.Rect
	Patrols []*Patrol
}

// Player is the controllable character.
type Player struct {
	Rect        gamemath.Rect
	VelocityY   int
	Grounded    bool
	JumpLatched bool
	Facing      Facing
	Anim        AnimState
	Frame       int

	animCounter int
	cfg         PlayerConfig
}

// NewPlayer places a player with its top-left corner at (x, y).
func NewPlayer(x, y int, cfg PlayerConfig) *Player {
	p := &Player{cfg: cfg}
	p.Reset(x, y)
	return p
}

// Reset puts the player back at (x, y) with all motion cleared.
func (p *Player) Reset(x, y int) {
	p.Rect = gamemath.NewRect(x, y, p.cfg.Width, p.cfg.Height)
	p.VelocityY = 0
	p.Grounded = false
	p.JumpLatched = false
	p.Facing = FacingRight
	p.Anim = AnimIdle
	p.Frame = 0
	p.animCounter = 0
}

// Mirrored reports whether the sprite must be flipped horizontally.
func (p *Player) Mirrored() bool {
	return p.Facing == FacingLeft
}

// Update advances the player by one tick and reports whether it touched a
// hazard. A defeated player is neither moved nor animated on that tick.
func (p *Player) Update(in Controls, env Surroundings) (defeated bool) {
	dx := 0
	p.Anim = AnimIdle
	if in.Left {
		dx = -p.cfg.MoveSpeed
		p.Facing = FacingLeft
		p.Anim = AnimRun
	}
	if in.Right {
		dx = p.cfg.MoveSpeed
		p.Facing = FacingRight
		p.Anim = AnimRun
	}

	if in.Jump && !p.JumpLatched && p.Grounded {
		p.VelocityY = p.cfg.JumpImpulse
		p.JumpLatched = true
		p.Anim = AnimJump
	}
	if !in.Jump {
		p.JumpLatched = false
	}

	p.VelocityY = gamemath.ApplyGravity(p.VelocityY, p.cfg.Gravity, p.cfg.MaxFallSpeed)
	dy := p.VelocityY

	dx, dy = p.resolveSolids(dx, dy, env.Solids)

	if p.touchesLava(env.Hazards) || p.touchesPatrol(env.Patrols) {
		return true
	}

	p.Rect = p.Rect.Translate(dx, dy)
	p.animate(in.Left || in.Right)
	return false
}

// resolveSolids probes each axis separately from the current position. The
// first conflicting tile in slice order decides the outcome per axis.
func (p *Player) resolveSolids(dx, dy int, solids []gamemath.Rect) (int, int) {
	p.Grounded = false

	if gamemath.FirstIntersecting(p.Rect.Translate(dx, 0), solids) >= 0 {
		dx = 0
	}

	if i := gamemath.FirstIntersecting(p.Rect.Translate(0, dy), solids); i >= 0 {
		tile := solids[i]
		if p.VelocityY < 0 {
			dy = tile.Bottom() - p.Rect.Top()
		} else {
			dy = tile.Top() - p.Rect.Bottom()
			p.Grounded = true
		}
		p.VelocityY = 0
	}

	// Both single-axis probes can pass while the diagonal move clips a corner.
	if dx != 0 && gamemath.FirstIntersecting(p.Rect.Translate(dx, dy), solids) >= 0 {
		dx = 0
	}

	return dx, dy
}

func (p *Player) touchesLava(hazards []gamemath.Rect) bool {
	bottom := p.Rect.Bottom()
	centerX := p.Rect.CenterX()
	for _, h := range hazards {
		if bottom >= h.Top()-p.cfg.LavaTolerance && bottom <= h.Bottom() &&
			centerX > h.Left() && centerX < h.Right() {
			return true
		}
	}
	return false
}

func (p *Player) touchesPatrol(patrols []*Patrol) bool {
	for _, pa := range patrols {
		if pa.HitRect().Intersects(p.Rect) {
			return true
		}
	}
	return false
}

func (p *Player) animate(moving bool) {
	if moving {
		p.animCounter++
	}
	if p.animCounter >= p.cfg.WalkAnimCooldown {
		p.animCounter = 0
		p.Frame++
	}
	if n := p.cfg.FrameCounts[p.Anim]; n > 0 {
		p.Frame %= n
	} else {
		p.Frame = 0
	}
}
