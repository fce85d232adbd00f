package object

import (
	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/physics"
)

// Bullet is a projectile fired by the player. It flies straight right.
type Bullet struct {
	X, Y      float64 // Top-left position
	destroyed bool
}

// Bullet tuning.
const (
	BulletWidth    = 4
	BulletHeight   = 2
	BulletSpeed    = 4.0
	BulletMaxCount = 10
)

// NewBullet creates a bullet with its top-left corner at (x, y).
func NewBullet(x, y float64) *Bullet {
	return &Bullet{X: x, Y: y}
}

// MarkDestroyed marks the bullet for removal.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// Update moves the bullet and culls it past the right edge.
func (b *Bullet) Update(_ *UpdateContext) {
	b.X += BulletSpeed
	if b.X > ArenaWidth {
		b.destroyed = true
	}
}

// Overlaps reports whether the bullet's box intersects the given box.
func (b *Bullet) Overlaps(x, y, w, h float64) bool {
	return physics.RectsOverlap(b.X, b.Y, BulletWidth, BulletHeight, x, y, w, h)
}

// Draw renders the bullet as a small bar.
func (b *Bullet) Draw(s draw.Sink) {
	s.FillRect(b.X, b.Y, BulletWidth, BulletHeight, draw.ColorYellow)
}
