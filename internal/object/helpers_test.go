package object

import (
	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/sound"
)

// scriptedRand returns queued values, then a fixed fallback.
// The default fallback of 1 means "never fire" for EnemyFireOdds rolls.
type scriptedRand struct {
	ints       []int
	floats     []float64
	defaultInt int
	float      float64
}

func newScriptedRand(ints ...int) *scriptedRand {
	return &scriptedRand{ints: ints, defaultInt: 1, float: 0.5}
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v % n
	}
	return r.defaultInt % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) > 0 {
		v := r.floats[0]
		r.floats = r.floats[1:]
		return v
	}
	return r.float
}

// recordingAudio records played effects.
type recordingAudio struct {
	played []sound.Effect
}

func (a *recordingAudio) Play(e sound.Effect) {
	a.played = append(a.played, e)
}

// recordingSink counts draw primitives.
type recordingSink struct {
	rects, circles, strokes, blits int
	texts                          []string
}

func (s *recordingSink) FillRect(_, _, _, _ float64, _ draw.Color)  { s.rects++ }
func (s *recordingSink) FillCircle(_, _, _ float64, _ draw.Color)   { s.circles++ }
func (s *recordingSink) StrokeCircle(_, _, _ float64, _ draw.Color) { s.strokes++ }
func (s *recordingSink) Blit(_, _ float64, _ *draw.Sprite)          { s.blits++ }
func (s *recordingSink) Text(_, _ float64, v string, _ draw.Color)  { s.texts = append(s.texts, v) }

// newTestContext builds a context with empty pools at full capacity.
func newTestContext(rng Rand) *UpdateContext {
	return &UpdateContext{
		Rand:         rng,
		Audio:        &recordingAudio{},
		Bullets:      NewPool[*Bullet](BulletMaxCount),
		EnemyBullets: NewPool[*EnemyBullet](EnemyBulletMaxCount),
		Enemies:      NewPool[*Enemy](EnemyMaxCount),
	}
}
