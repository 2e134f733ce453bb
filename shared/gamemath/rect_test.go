package gamemath

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"touching right edge", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single pixel", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
		{"empty rect", NewRect(5, 5, 0, 0), NewRect(0, 0, 10, 10), false},
		{"zero width inside", NewRect(5, 0, 0, 10), NewRect(0, 0, 10, 10), false},
		{"both empty", NewRect(5, 5, 0, 0), NewRect(5, 5, 0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(100, 200, 50, 50).Inset(5, 5)
	if r != NewRect(105, 205, 40, 40) {
		t.Errorf("Inset(5,5) = %v", r)
	}

	r = NewRect(0, 0, 6, 6).Inset(5, 5)
	if !r.Empty() {
		t.Errorf("over-inset rect should be empty, got %v", r)
	}

	r = NewRect(100, 100, 50, 50).Inset(30, 30)
	if r != NewRect(125, 125, 0, 0) {
		t.Errorf("over-inset rect should collapse to the centre, got %v", r)
	}

	r = NewRect(100, 100, 50, 50).Inset(-5, 0)
	if r != NewRect(95, 100, 60, 50) {
		t.Errorf("Inset(-5,0) = %v", r)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 40, 50)
	if r.Right() != 50 || r.Bottom() != 70 {
		t.Errorf("Right/Bottom = %d/%d, expected 50/70", r.Right(), r.Bottom())
	}
	if r.CenterX() != 30 {
		t.Errorf("CenterX = %d, expected 30", r.CenterX())
	}
	moved := r.Translate(5, -3)
	if moved.X != 15 || moved.Y != 17 || moved.W != 40 || moved.H != 50 {
		t.Errorf("Translate = %v", moved)
	}
}

func TestFirstIntersecting(t *testing.T) {
	rects := []Rect{
		NewRect(100, 0, 10, 10),
		NewRect(0, 0, 10, 10),
		NewRect(5, 0, 10, 10),
	}
	if got := FirstIntersecting(NewRect(6, 0, 2, 2), rects); got != 1 {
		t.Errorf("FirstIntersecting = %d, expected 1 (slice order)", got)
	}
	if got := FirstIntersecting(NewRect(50, 50, 2, 2), rects); got != -1 {
		t.Errorf("FirstIntersecting = %d, expected -1", got)
	}
}

func TestPhysicsHelpers(t *testing.T) {
	if got := ApplyGravity(9, 1, 10); got != 10 {
		t.Errorf("ApplyGravity(9) = %d", got)
	}
	if got := ApplyGravity(10, 1, 10); got != 10 {
		t.Errorf("ApplyGravity(10) = %d, should stay capped", got)
	}
	if got := ApplyGravity(-15, 1, 10); got != -14 {
		t.Errorf("ApplyGravity(-15) = %d", got)
	}
	if got := Manhattan(2, 3, 5, 1); got != 5 {
		t.Errorf("Manhattan = %d, expected 5", got)
	}
	if got := Clamp(12, 0, 10); got != 10 {
		t.Errorf("Clamp = %d", got)
	}
}
