// Package physics provides collision detection and vector utilities.
package physics

import "math"

// Project converts an angle in degrees (0 = right, 90 = down in screen space)
// and a speed into velocity components.
func Project(angleDeg, speed float64) (vx, vy float64) {
	rad := angleDeg * math.Pi / 180
	return math.Cos(rad) * speed, math.Sin(rad) * speed
}

// RectsOverlap checks if two axis-aligned boxes intersect.
// Boxes whose edges only touch do not overlap.
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx &&
		ay < by+bh && ay+ah > by
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
