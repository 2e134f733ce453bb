package gamemath

// ApplyGravity adds gravity to a vertical speed and caps the result at maxFall.
func ApplyGravity(speedY, gravity, maxFall int) int {
	speedY += gravity
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of v.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Manhattan returns the grid distance between (r1, c1) and (r2, c2).
func Manhattan(r1, c1, r2, c2 int) int {
	return Abs(r1-r2) + Abs(c1-c2)
}
