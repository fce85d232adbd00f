package object

import (
	"math"

	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/physics"
)

// Variant is the behavior kind of an enemy.
type Variant int

const (
	VariantStraight Variant = iota // Slow, fires aimed shots at random
	VariantSine                    // Slow, weaves vertically, fires straight left at random
	VariantBurst                   // Fast, fires one four-way burst at a scheduled tick
	variantCount
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantStraight:
		return "straight"
	case VariantSine:
		return "sine"
	case VariantBurst:
		return "burst"
	default:
		return "unknown"
	}
}

// Enemy tuning.
const (
	EnemyWidth    = 16
	EnemyHeight   = 16
	EnemyMaxCount = 15

	// Each tick a straight or sine enemy fires with probability 1/EnemyFireOdds.
	EnemyFireOdds = 101

	SineAmplitude = 2.0 // Max vertical displacement per tick
	SineStep      = 5.0 // Phase advance per tick, degrees

	BurstDelayMin = 30  // Ticks after spawn
	BurstDelayMax = 120 // Ticks after spawn, inclusive
)

// Enemy is a hostile ship entering from the right edge.
type Enemy struct {
	X, Y    float64 // Top-left position
	Variant Variant

	Angle      float64 // Sine phase in degrees (VariantSine)
	ShootFrame uint64  // Frame of the scheduled burst (VariantBurst)
	HasShot    bool    // Burst already fired (VariantBurst)

	destroyed bool
}

// behavior describes one variant: horizontal speed, color, per-tick
// vertical movement and per-tick fire policy.
type behavior struct {
	speedX float64
	color  draw.Color
	move   func(e *Enemy)
	fire   func(e *Enemy, ctx *UpdateContext)
}

var behaviors = [variantCount]behavior{
	VariantStraight: {
		speedX: -1.5,
		color:  draw.ColorLime,
		fire:   fireAimed,
	},
	VariantSine: {
		speedX: -1.5,
		color:  draw.ColorYellow,
		move:   moveSine,
		fire:   fireLeft,
	},
	VariantBurst: {
		speedX: -2.5,
		color:  draw.ColorOrange,
		fire:   fireBurst,
	},
}

// NewEnemy creates an enemy of the given variant at the right edge with a
// random vertical position. frame is the current tick, used to schedule bursts.
func NewEnemy(v Variant, frame uint64, rng Rand) *Enemy {
	e := &Enemy{
		X:       ArenaWidth,
		Y:       float64(rng.Intn(ArenaHeight - EnemyHeight + 1)),
		Variant: v,
	}

	switch v {
	case VariantSine:
		e.Angle = float64(rng.Intn(361))
	case VariantBurst:
		e.ShootFrame = frame + uint64(BurstDelayMin+rng.Intn(BurstDelayMax-BurstDelayMin+1))
	}

	return e
}

// MarkDestroyed marks the enemy for removal.
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is marked for destruction.
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}

// Center returns the enemy's center point.
func (e *Enemy) Center() (float64, float64) {
	return e.X + EnemyWidth/2, e.Y + EnemyHeight/2
}

// Update moves the enemy, applies its fire policy and culls it once it is
// fully past the left edge.
func (e *Enemy) Update(ctx *UpdateContext) {
	b := behaviors[e.Variant]

	e.X += b.speedX
	if b.move != nil {
		b.move(e)
	}
	if b.fire != nil {
		b.fire(e, ctx)
	}

	if e.X < -EnemyWidth {
		e.destroyed = true
	}
}

// Overlaps reports whether the enemy's box intersects the given box.
func (e *Enemy) Overlaps(x, y, w, h float64) bool {
	return physics.RectsOverlap(e.X, e.Y, EnemyWidth, EnemyHeight, x, y, w, h)
}

// Draw renders the enemy as a filled circle in its variant color.
func (e *Enemy) Draw(s draw.Sink) {
	cx, cy := e.Center()
	s.FillCircle(cx, cy, EnemyWidth/2, behaviors[e.Variant].color)
}

func moveSine(e *Enemy) {
	_, dy := physics.Project(e.Angle, SineAmplitude)
	e.Y += dy
	e.Angle = math.Mod(e.Angle+SineStep, 360)
}

// fireAimed shoots one bullet within 30 degrees of due left.
func fireAimed(e *Enemy, ctx *UpdateContext) {
	if ctx.Rand.Intn(EnemyFireOdds) != 0 {
		return
	}
	angle := 150 + ctx.Rand.Float64()*60
	e.shoot(ctx, angle, 2)
}

// fireLeft shoots one slow bullet due left.
func fireLeft(e *Enemy, ctx *UpdateContext) {
	if ctx.Rand.Intn(EnemyFireOdds) != 0 {
		return
	}
	e.shoot(ctx, 180, 1)
}

// fireBurst shoots four bullets in a cross, once, when the scheduled frame arrives.
func fireBurst(e *Enemy, ctx *UpdateContext) {
	if e.HasShot || ctx.Frame < e.ShootFrame {
		return
	}
	for _, angle := range []float64{0, 90, 180, 270} {
		e.shoot(ctx, angle, 2)
	}
	e.HasShot = true
}

// shoot spawns an enemy bullet from the enemy's center.
func (e *Enemy) shoot(ctx *UpdateContext, angle, speed float64) {
	cx, cy := e.Center()
	ctx.EnemyBullets.Spawn(NewEnemyBullet(cx, cy, angle, speed))
}
