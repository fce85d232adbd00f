// Package object implements the game entities and the pools that own them.
package object

import (
	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/input"
	"github.com/tomz197/shmup/internal/sound"
)

// Arena dimensions in logical pixels.
const (
	ArenaWidth  = 256
	ArenaHeight = 224
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Rand is the random source used for enemy selection and firing.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Frame        uint64 // Monotonic tick counter
	Input        Input
	Rand         Rand
	Audio        sound.Sink
	Bullets      *Pool[*Bullet]
	EnemyBullets *Pool[*EnemyBullet]
	Enemies      *Pool[*Enemy]
}

// Play signals a sound effect if an audio sink is attached.
func (ctx *UpdateContext) Play(e sound.Effect) {
	if ctx.Audio != nil {
		ctx.Audio.Play(e)
	}
}

// Object is a drawable and updatable game entity.
type Object interface {
	// Update advances the object by one tick. It may mark the object destroyed.
	Update(ctx *UpdateContext)

	// Draw emits the object's draw primitives.
	Draw(s draw.Sink)

	Destructible
}

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the next compaction.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}
