package object

import (
	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/physics"
)

// EnemyBullet is a projectile fired by an enemy. Its velocity is fixed at creation.
type EnemyBullet struct {
	X, Y      float64 // Top-left position
	VX, VY    float64 // Velocity per tick
	destroyed bool
}

// Enemy bullet tuning.
const (
	EnemyBulletWidth    = 4
	EnemyBulletHeight   = 4
	EnemyBulletRadius   = 2
	EnemyBulletMaxCount = 50
)

// NewEnemyBullet creates a bullet at (x, y) traveling at angle degrees with the given speed.
func NewEnemyBullet(x, y, angle, speed float64) *EnemyBullet {
	vx, vy := physics.Project(angle, speed)
	return &EnemyBullet{
		X:  x,
		Y:  y,
		VX: vx,
		VY: vy,
	}
}

// MarkDestroyed marks the bullet for removal.
func (b *EnemyBullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet is marked for destruction.
func (b *EnemyBullet) IsDestroyed() bool {
	return b.destroyed
}

// Update moves the bullet and culls it once it has left the arena on any side.
func (b *EnemyBullet) Update(_ *UpdateContext) {
	b.X += b.VX
	b.Y += b.VY

	if b.X+EnemyBulletWidth < 0 || b.X > ArenaWidth ||
		b.Y+EnemyBulletHeight < 0 || b.Y > ArenaHeight {
		b.destroyed = true
	}
}

// Overlaps reports whether the bullet's box intersects the given box.
func (b *EnemyBullet) Overlaps(x, y, w, h float64) bool {
	return physics.RectsOverlap(b.X, b.Y, EnemyBulletWidth, EnemyBulletHeight, x, y, w, h)
}

// Draw renders the bullet as a small dot centered in its box.
func (b *EnemyBullet) Draw(s draw.Sink) {
	s.FillCircle(b.X+EnemyBulletWidth/2, b.Y+EnemyBulletHeight/2, EnemyBulletRadius, draw.ColorRed)
}
