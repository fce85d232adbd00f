package window

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/tomz197/shmup/internal/sound"
)

// Audio plays sound effects through ebiten's audio context. Like a single
// hardware channel, a new effect cuts off the one still playing.
type Audio struct {
	ctx     *audio.Context
	clips   map[sound.Effect][]byte
	current *audio.Player
}

// Ensure Audio satisfies sound.Sink.
var _ sound.Sink = (*Audio)(nil)

// NewAudio renders every effect once at the given volume (0..1).
// Only one audio context may exist per process.
func NewAudio(volume float64) *Audio {
	rate := sound.DefaultSampleRate
	a := &Audio{
		ctx:   audio.NewContext(int(rate)),
		clips: make(map[sound.Effect][]byte),
	}
	for _, e := range []sound.Effect{sound.EffectShot, sound.EffectHit} {
		a.clips[e] = sound.Render(e, rate, volume)
	}
	return a
}

// Play starts effect e, stopping the previous effect.
func (a *Audio) Play(e sound.Effect) {
	clip, ok := a.clips[e]
	if !ok || len(clip) == 0 {
		return
	}
	if a.current != nil {
		a.current.Pause()
	}
	a.current = a.ctx.NewPlayerFromBytes(clip)
	a.current.Play()
}
