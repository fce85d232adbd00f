package object

import (
	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/physics"
	"github.com/tomz197/shmup/internal/sound"
)

// Player tuning.
const (
	PlayerWidth  = 16
	PlayerHeight = 8
	PlayerSpeed  = 2.0
	PlayerStartX = 30
	PlayerStartY = ArenaHeight / 2
)

// shipSprite is the player's ship bitmap.
var shipSprite = draw.ParseSprite(
	"0cc0000000000000",
	"0ccccc0000000000",
	"00cffffcccc00000",
	"9cfffffffffccc70",
	"9cfffffffffccc70",
	"00cffffcccc00000",
	"0ccccc0000000000",
	"0cc0000000000000",
)

// Player is the player-controlled ship.
type Player struct {
	X, Y      float64 // Top-left position
	Speed     float64 // Pixels per tick on each axis
	destroyed bool
}

// NewPlayer creates a ship at the starting position.
func NewPlayer() *Player {
	return &Player{
		X:     PlayerStartX,
		Y:     PlayerStartY,
		Speed: PlayerSpeed,
	}
}

// MarkDestroyed marks the player as dead.
func (p *Player) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the player is dead.
func (p *Player) IsDestroyed() bool {
	return p.destroyed
}

// Center returns the ship's center point.
func (p *Player) Center() (float64, float64) {
	return p.X + PlayerWidth/2, p.Y + PlayerHeight/2
}

// Update moves the ship within the arena and fires on a fire press.
// Each axis is applied independently, so opposing keys cancel out.
func (p *Player) Update(ctx *UpdateContext) {
	if p.destroyed {
		return
	}

	in := ctx.Input
	if in.Left {
		p.X = physics.Clamp(p.X-p.Speed, 0, ArenaWidth-PlayerWidth)
	}
	if in.Right {
		p.X = physics.Clamp(p.X+p.Speed, 0, ArenaWidth-PlayerWidth)
	}
	if in.Up {
		p.Y = physics.Clamp(p.Y-p.Speed, 0, ArenaHeight-PlayerHeight)
	}
	if in.Down {
		p.Y = physics.Clamp(p.Y+p.Speed, 0, ArenaHeight-PlayerHeight)
	}

	if in.Fire {
		// Spawn from the nose of the ship
		ctx.Bullets.Spawn(NewBullet(p.X+PlayerWidth, p.Y+PlayerHeight/2-1))
		ctx.Play(sound.EffectShot)
	}
}

// Overlaps reports whether the ship's box intersects the given box.
func (p *Player) Overlaps(x, y, w, h float64) bool {
	return physics.RectsOverlap(p.X, p.Y, PlayerWidth, PlayerHeight, x, y, w, h)
}

// Draw renders the ship sprite while alive.
func (p *Player) Draw(s draw.Sink) {
	if p.destroyed {
		return
	}
	s.Blit(p.X, p.Y, shipSprite)
}
