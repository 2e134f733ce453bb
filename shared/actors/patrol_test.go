package actors

import (
	"testing"

	"github.com/automoto/mazeescape/shared/gamemath"
)

func TestPatrolTurnsAtRangeEnd(t *testing.T) {
	p := NewPatrol(gamemath.NewRect(500, 300, 50, 50), DefaultPatrolConfig(), nil)

	for tick := 1; tick <= 100; tick++ {
		p.Update()
		if tick < 100 && p.Direction != 1 {
			t.Fatalf("tick %d: direction flipped early at x=%d", tick, p.Rect.X)
		}
	}
	if p.Rect.X != 600 {
		t.Fatalf("after 100 ticks x = %d, want 600", p.Rect.X)
	}
	if p.Direction != -1 {
		t.Fatalf("after 100 ticks direction = %d, want -1", p.Direction)
	}

	for tick := 1; tick <= 100; tick++ {
		p.Update()
	}
	if p.Rect.X != 500 || p.Direction != 1 {
		t.Fatalf("after return trip got x=%d dir=%d, want x=500 dir=1", p.Rect.X, p.Direction)
	}
}

func TestPatrolFlipsOnSolid(t *testing.T) {
	wall := gamemath.NewRect(580, 300, 50, 50)
	p := NewPatrol(gamemath.NewRect(500, 300, 50, 50), DefaultPatrolConfig(), []gamemath.Rect{wall})

	for i := 0; i < 30; i++ {
		p.Update()
	}
	// Rect.Right() reaches 580 after 30 ticks; the next step is blocked.
	if p.Rect.X != 530 {
		t.Fatalf("x = %d, want 530", p.Rect.X)
	}
	p.Update()
	if p.Rect.X != 530 {
		t.Fatalf("blocked tick moved patrol to x=%d", p.Rect.X)
	}
	if p.Direction != -1 {
		t.Fatalf("direction = %d, want -1 after hitting wall", p.Direction)
	}
	p.Update()
	if p.Rect.X != 529 {
		t.Fatalf("x = %d, want 529 after turning", p.Rect.X)
	}
}

func TestPatrolStaysInRangeAndOutOfSolids(t *testing.T) {
	tests := []struct {
		name   string
		solids []gamemath.Rect
	}{
		{name: "open floor"},
		{name: "wall inside range", solids: []gamemath.Rect{gamemath.NewRect(620, 300, 50, 50)}},
		{name: "walls both sides", solids: []gamemath.Rect{
			gamemath.NewRect(440, 300, 50, 50),
			gamemath.NewRect(590, 300, 50, 50),
		}},
		{name: "wall flush right", solids: []gamemath.Rect{gamemath.NewRect(550, 300, 50, 50)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPatrol(gamemath.NewRect(500, 300, 50, 50), DefaultPatrolConfig(), tt.solids)
			for tick := 0; tick < 1000; tick++ {
				p.Update()
				if p.Rect.X < p.StartX || p.Rect.X > p.StartX+p.Range {
					t.Fatalf("tick %d: x=%d outside [%d, %d]", tick, p.Rect.X, p.StartX, p.StartX+p.Range)
				}
				if i := gamemath.FirstIntersecting(p.Rect, tt.solids); i >= 0 {
					t.Fatalf("tick %d: patrol %v overlaps solid %v", tick, p.Rect, tt.solids[i])
				}
			}
		})
	}
}

func TestPatrolHitRect(t *testing.T) {
	p := NewPatrol(gamemath.NewRect(500, 300, 50, 50), DefaultPatrolConfig(), nil)
	want := gamemath.NewRect(505, 305, 40, 40)
	if got := p.HitRect(); got != want {
		t.Fatalf("HitRect() = %v, want %v", got, want)
	}
}
