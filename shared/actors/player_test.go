package actors

import (
	"math/rand"
	"testing"

	"github.com/automoto/mazeescape/shared/gamemath"
)

func ground() []gamemath.Rect {
	return []gamemath.Rect{gamemath.NewRect(0, 500, 1920, 50)}
}

// standOn returns a grounded player whose feet rest on y.
func standOn(t *testing.T, x, y int, env Surroundings) *Player {
	t.Helper()
	p := NewPlayer(x, y-50, DefaultPlayerConfig())
	p.Update(Controls{}, env)
	if !p.Grounded {
		t.Fatalf("player at %v not grounded after settling", p.Rect)
	}
	return p
}

func TestPlayerFirstTickFromSpawn(t *testing.T) {
	p := NewPlayer(100, 300, DefaultPlayerConfig())
	defeated := p.Update(Controls{Right: true}, Surroundings{Solids: ground()})

	if defeated {
		t.Fatal("player defeated on empty level")
	}
	if p.Rect.X != 105 || p.Rect.Y != 301 {
		t.Errorf("position = (%d, %d), want (105, 301)", p.Rect.X, p.Rect.Y)
	}
	if p.VelocityY != 1 {
		t.Errorf("VelocityY = %d, want 1", p.VelocityY)
	}
	if p.Grounded {
		t.Error("Grounded = true while falling")
	}
	if p.Facing != FacingRight || p.Anim != AnimRun {
		t.Errorf("facing/anim = %v/%v, want right/run", p.Facing, p.Anim)
	}
}

func TestPlayerHorizontalPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		in     Controls
		wantDX int
		facing Facing
		anim   AnimState
	}{
		{name: "idle", in: Controls{}, wantDX: 0, facing: FacingRight, anim: AnimIdle},
		{name: "left", in: Controls{Left: true}, wantDX: -5, facing: FacingLeft, anim: AnimRun},
		{name: "right", in: Controls{Right: true}, wantDX: 5, facing: FacingRight, anim: AnimRun},
		{name: "both held", in: Controls{Left: true, Right: true}, wantDX: 5, facing: FacingRight, anim: AnimRun},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(200, 100, DefaultPlayerConfig())
			p.Update(tt.in, Surroundings{})
			if got := p.Rect.X - 200; got != tt.wantDX {
				t.Errorf("dx = %d, want %d", got, tt.wantDX)
			}
			if p.Facing != tt.facing {
				t.Errorf("Facing = %v, want %v", p.Facing, tt.facing)
			}
			if p.Anim != tt.anim {
				t.Errorf("Anim = %v, want %v", p.Anim, tt.anim)
			}
		})
	}
}

func TestPlayerLandsFlush(t *testing.T) {
	env := Surroundings{Solids: ground()}
	p := NewPlayer(100, 300, DefaultPlayerConfig())

	for i := 0; i < 60 && !p.Grounded; i++ {
		p.Update(Controls{}, env)
	}
	if !p.Grounded {
		t.Fatal("player never landed")
	}
	if p.Rect.Bottom() != 500 {
		t.Fatalf("Bottom() = %d, want 500", p.Rect.Bottom())
	}
	if p.VelocityY != 0 {
		t.Fatalf("VelocityY = %d after landing, want 0", p.VelocityY)
	}
}

func TestPlayerJumpLatch(t *testing.T) {
	env := Surroundings{Solids: ground()}
	p := standOn(t, 100, 500, env)

	p.Update(Controls{Jump: true}, env)
	if p.Anim != AnimJump || !p.JumpLatched {
		t.Fatalf("jump not started: anim=%v latched=%v", p.Anim, p.JumpLatched)
	}
	if p.VelocityY != -14 {
		t.Fatalf("VelocityY = %d after jump tick, want -14", p.VelocityY)
	}

	// Holding jump through the landing must not trigger a second jump.
	for i := 0; i < 60; i++ {
		p.Update(Controls{Jump: true}, env)
	}
	if !p.Grounded || p.VelocityY != 0 {
		t.Fatalf("held jump bounced again: grounded=%v vy=%d", p.Grounded, p.VelocityY)
	}

	p.Update(Controls{}, env)
	if p.JumpLatched {
		t.Fatal("latch not cleared on release")
	}
	p.Update(Controls{Jump: true}, env)
	if p.VelocityY >= 0 {
		t.Fatal("second jump after release did not fire")
	}
}

func TestPlayerNoJumpInAir(t *testing.T) {
	p := NewPlayer(100, 100, DefaultPlayerConfig())
	p.Update(Controls{Jump: true}, Surroundings{Solids: ground()})
	if p.VelocityY != 1 {
		t.Fatalf("VelocityY = %d, mid-air jump should be ignored", p.VelocityY)
	}
}

func TestPlayerHeadBump(t *testing.T) {
	solids := []gamemath.Rect{
		gamemath.NewRect(0, 500, 1920, 50),
		gamemath.NewRect(50, 390, 200, 50), // ceiling 10px above the head
	}
	env := Surroundings{Solids: solids}
	p := standOn(t, 100, 500, env)

	p.Update(Controls{Jump: true}, env)
	if p.Rect.Top() != 440 {
		t.Fatalf("Top() = %d, want 440 flush under ceiling", p.Rect.Top())
	}
	if p.VelocityY != 0 {
		t.Fatalf("VelocityY = %d after head bump, want 0", p.VelocityY)
	}
	if p.Grounded {
		t.Fatal("head bump must not ground the player")
	}
}

func TestPlayerWallStopsHorizontal(t *testing.T) {
	solids := []gamemath.Rect{
		gamemath.NewRect(0, 500, 1920, 50),
		gamemath.NewRect(143, 450, 50, 50),
	}
	env := Surroundings{Solids: solids}
	p := standOn(t, 100, 500, env)

	p.Update(Controls{Right: true}, env)
	if p.Rect.X != 100 {
		t.Fatalf("x = %d, want 100: the step would enter the wall", p.Rect.X)
	}
	if p.Facing != FacingRight || p.Anim != AnimRun {
		t.Fatalf("facing/anim = %v/%v, want right/run", p.Facing, p.Anim)
	}
}

func TestPlayerWalkOffLedgeClearsGrounded(t *testing.T) {
	env := Surroundings{Solids: []gamemath.Rect{gamemath.NewRect(0, 500, 120, 50)}}
	p := standOn(t, 70, 500, env)

	for i := 0; i < 20; i++ {
		p.Update(Controls{Right: true}, env)
		if p.Rect.X > 120 && p.Grounded {
			t.Fatalf("tick %d: grounded at x=%d with nothing below", i, p.Rect.X)
		}
	}
	if p.Grounded {
		t.Fatal("grounded after walking off the ledge")
	}
}

func TestPlayerLavaDefeat(t *testing.T) {
	lava := gamemath.NewRect(100, 500, 50, 50)

	tests := []struct {
		name     string
		x, y     int
		defeated bool
	}{
		{name: "centered on lava", x: 105, y: 450, defeated: true},
		{name: "feet within tolerance", x: 105, y: 445, defeated: true},
		{name: "feet above tolerance", x: 105, y: 430, defeated: false},
		{name: "center on left edge", x: 80, y: 450, defeated: false},
		{name: "center just inside", x: 81, y: 450, defeated: true},
		{name: "center on right edge", x: 130, y: 450, defeated: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(tt.x, tt.y, DefaultPlayerConfig())
			before := p.Rect
			got := p.Update(Controls{Right: true}, Surroundings{Hazards: []gamemath.Rect{lava}})
			if got != tt.defeated {
				t.Fatalf("defeated = %v, want %v (rect %v)", got, tt.defeated, before)
			}
			if got && p.Rect != before {
				t.Fatalf("defeated player moved from %v to %v", before, p.Rect)
			}
		})
	}
}

func TestPlayerPatrolDefeatUsesShrunkHitbox(t *testing.T) {
	tests := []struct {
		name     string
		patrolX  int
		defeated bool
	}{
		{name: "deep overlap", patrolX: 120, defeated: true},
		{name: "touching inset margin only", patrolX: 136, defeated: false},
		{name: "inside hitbox by one pixel", patrolX: 134, defeated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pa := NewPatrol(gamemath.NewRect(tt.patrolX, 100, 50, 50), DefaultPatrolConfig(), nil)
			p := NewPlayer(100, 100, DefaultPlayerConfig())
			frame := p.Frame
			got := p.Update(Controls{}, Surroundings{Patrols: []*Patrol{pa}})
			if got != tt.defeated {
				t.Fatalf("defeated = %v, want %v", got, tt.defeated)
			}
			if got && (p.Rect.Y != 100 || p.Frame != frame) {
				t.Fatal("defeated player advanced")
			}
		})
	}
}

func TestPlayerEmptyPatrolHitboxIsHarmless(t *testing.T) {
	cfg := DefaultPatrolConfig()
	cfg.HitboxShrink = 60
	pa := NewPatrol(gamemath.NewRect(100, 100, 50, 50), cfg, nil)
	if hit := pa.HitRect(); !hit.Empty() {
		t.Fatalf("HitRect() = %v, want empty", hit)
	}

	p := NewPlayer(105, 100, DefaultPlayerConfig())
	if p.Update(Controls{}, Surroundings{Patrols: []*Patrol{pa}}) {
		t.Fatal("player defeated by a patrol with no hitbox")
	}
}

func TestPlayerAnimationCadence(t *testing.T) {
	env := Surroundings{Solids: ground()}
	p := standOn(t, 100, 500, env)

	for i := 1; i <= 4; i++ {
		p.Update(Controls{Right: true}, env)
		if p.Frame != 0 {
			t.Fatalf("frame advanced after %d ticks", i)
		}
	}
	p.Update(Controls{Right: true}, env)
	if p.Frame != 1 {
		t.Fatalf("Frame = %d after 5 ticks, want 1", p.Frame)
	}
	for i := 0; i < 45; i++ {
		p.Update(Controls{Right: true}, env)
	}
	if p.Frame != 0 {
		t.Fatalf("Frame = %d after 50 ticks, want wrap to 0", p.Frame)
	}

	p.Update(Controls{Left: true}, env)
	if !p.Mirrored() {
		t.Fatal("left-facing player should be mirrored")
	}
}

// Random input over a small enclosed room must never leave the player inside
// a solid tile.
func TestPlayerNeverEndsInsideSolid(t *testing.T) {
	const tile = 50
	layout := []string{
		"1111111111",
		"1........1",
		"1...11...1",
		"1........1",
		"1.11..11.1",
		"1........1",
		"1..1..1..1",
		"1111111111",
	}
	var solids []gamemath.Rect
	for r, row := range layout {
		for c, ch := range row {
			if ch == '1' {
				solids = append(solids, gamemath.NewRect(c*tile, r*tile, tile, tile))
			}
		}
	}
	env := Surroundings{Solids: solids}

	rng := rand.New(rand.NewSource(12345))
	p := NewPlayer(55, 50, DefaultPlayerConfig())
	for tick := 0; tick < 5000; tick++ {
		in := Controls{
			Left:  rng.Intn(3) == 0,
			Right: rng.Intn(3) == 0,
			Jump:  rng.Intn(4) == 0,
		}
		if p.Update(in, env) {
			t.Fatal("no hazards present but player was defeated")
		}
		if i := gamemath.FirstIntersecting(p.Rect, solids); i >= 0 {
			t.Fatalf("tick %d: player %v overlaps solid %v", tick, p.Rect, solids[i])
		}
	}
}
