package actors

import "github.com/automoto/mazeescape/shared/gamemath"

// PatrolConfig tunes the moving hazard spawned from a patrol marker tile.
type PatrolConfig struct {
	Range        int // horizontal travel in pixels, measured from the spawn x
	Speed        int // pixels per tick
	HitboxShrink int // subtracted from width and height for the player contact test
}

// DefaultPatrolConfig matches config.Patrol.
func DefaultPatrolConfig() PatrolConfig {
	return PatrolConfig{
		Range:        100,
		Speed:        1,
		HitboxShrink: 10,
	}
}

// Patrol is a hazard that walks back and forth between StartX and
// StartX+Range, turning around when its next step would hit a solid tile.
type Patrol struct {
	Rect      gamemath.Rect
	Direction int // +1 moving right, -1 moving left
	StartX    int
	Range     int

	speed  int
	shrink int
	solids []gamemath.Rect
}

// NewPatrol creates a patrol at rect that probes against solids. The slice is
// only read; callers hand over the geometry known at creation time.
func NewPatrol(rect gamemath.Rect, cfg PatrolConfig, solids []gamemath.Rect) *Patrol {
	speed := cfg.Speed
	if speed <= 0 {
		speed = 1
	}
	return &Patrol{
		Rect:      rect,
		Direction: 1,
		StartX:    rect.X,
		Range:     cfg.Range,
		speed:     speed,
		shrink:    cfg.HitboxShrink,
		solids:    solids,
	}
}

// Update advances the patrol by one tick.
func (p *Patrol) Update() {
	candidate := p.Rect.Translate(p.Direction*p.speed, 0)
	if gamemath.FirstIntersecting(candidate, p.solids) >= 0 || !p.inRange(candidate.X) {
		p.Direction = -p.Direction
	} else {
		p.Rect = candidate
	}

	// Range clamp runs after the collision probe and always points inward.
	if p.Rect.X >= p.StartX+p.Range {
		p.Direction = -1
	} else if p.Rect.X <= p.StartX {
		p.Direction = 1
	}
}

func (p *Patrol) inRange(x int) bool {
	return x >= p.StartX && x <= p.StartX+p.Range
}

// HitRect is the forgiving contact box used against the player.
func (p *Patrol) HitRect() gamemath.Rect {
	return p.Rect.Inset(p.shrink/2, p.shrink/2)
}

// Solids returns the geometry this patrol collides with.
func (p *Patrol) Solids() []gamemath.Rect {
	return p.solids
}
