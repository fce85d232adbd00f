package object

import "github.com/tomz197/shmup/internal/draw"

// ExplosionMaxRadius is the last radius drawn before an explosion disappears.
const ExplosionMaxRadius = 8

// Explosion is a short-lived growing ring with no collision.
type Explosion struct {
	X, Y      float64 // Center
	Radius    int
	destroyed bool
}

// NewExplosion creates an explosion centered at (x, y).
func NewExplosion(x, y float64) *Explosion {
	return &Explosion{X: x, Y: y, Radius: 1}
}

// MarkDestroyed marks the explosion for removal.
func (e *Explosion) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the explosion is marked for destruction.
func (e *Explosion) IsDestroyed() bool {
	return e.destroyed
}

// Update grows the explosion by one pixel per tick.
func (e *Explosion) Update(_ *UpdateContext) {
	e.Radius++
	if e.Radius > ExplosionMaxRadius {
		e.destroyed = true
	}
}

// Draw renders a filled disc with a bright outline.
func (e *Explosion) Draw(s draw.Sink) {
	r := float64(e.Radius)
	s.FillCircle(e.X, e.Y, r, draw.ColorRed)
	s.StrokeCircle(e.X, e.Y, r, draw.ColorWhite)
}
