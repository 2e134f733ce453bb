// Package gamemath holds the integer geometry shared by the level model, the
// actors and the session. It has no dependencies on ebitengine, donburi or
// resolv.
package gamemath

import "fmt"

// Rect is an axis-aligned rectangle in world pixels. X/Y is the top-left
// corner; the right and bottom edges are exclusive.
type Rect struct {
	X, Y, W, H int
}

// NewRect creates a rectangle at (x, y) with size w×h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the horizontal centre, rounded down.
func (r Rect) CenterX() int {
	return r.X + r.W/2
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset shrinks the rectangle by dx on the left and right and dy on the top
// and bottom. An inset larger than half the size collapses that axis to an
// empty rectangle at the centre.
func (r Rect) Inset(dx, dy int) Rect {
	dx = min(dx, r.W/2)
	dy = min(dy, r.H/2)
	r.X += dx
	r.Y += dy
	r.W -= 2 * dx
	r.H -= 2 * dy
	return r
}

// Intersects reports whether the two rectangles share any area. Rectangles
// that only touch along an edge do not intersect, and an empty rectangle
// intersects nothing.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// FirstIntersecting returns the index of the first rectangle in rects that
// intersects r, or -1. Order is the slice order; nothing is sorted.
func FirstIntersecting(r Rect, rects []Rect) int {
	for i, o := range rects {
		if r.Intersects(o) {
			return i
		}
	}
	return -1
}
