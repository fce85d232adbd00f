// Package sound synthesizes the game's sound effects and plays them on an audio sink.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Effect identifies a sound effect.
type Effect int

const (
	EffectHit  Effect = 8 // Explosion: enemy or player destroyed
	EffectShot Effect = 9 // Player fired
)

// Sink plays sound effects. Implementations must not block the game loop.
type Sink interface {
	Play(e Effect)
}

// Mute is a Sink that discards every effect.
type Mute struct{}

// Play does nothing.
func (Mute) Play(Effect) {}

// DefaultSampleRate is used by the speaker and PCM rendering.
const DefaultSampleRate = beep.SampleRate(44100)

// Note timing: one step of speed 1 lasts 1/120 s.
const (
	shotNoteDuration = 6 * time.Second / 120
	hitNoteDuration  = 10 * time.Second / 120
)

// Note frequencies.
const (
	noteA2 = 440.00
	noteC3 = 523.25
	noteE3 = 659.26
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveTriangle WaveType = iota
	WavePulse
)

// oscillator generates a single fixed-frequency note.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a note of the given frequency, length and wave shape.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WavePulse:
			// 25% duty cycle
			if o.phase < 0.25 {
				val = 1
			} else {
				val = -1
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade scales a stream linearly from full volume down to silence over its length.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewFade wraps s, which must be exactly duration long, with a linear fade-out.
func NewFade(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, total: rate.N(duration)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 0.0
		if f.total > 0 {
			vol = float64(f.total-f.position) / float64(f.total)
		}
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume scales a stream linearly; volume 0 is silent.
// math.Log2(0) is -Inf, so zero is special-cased.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateShotSound generates a quick two-note triangle chirp.
func CreateShotSound(rate beep.SampleRate, volume float64) beep.Streamer {
	return newVolume(beep.Seq(
		NewOscillator(noteC3, shotNoteDuration, WaveTriangle, rate),
		NewOscillator(noteE3, shotNoteDuration, WaveTriangle, rate),
	), volume)
}

// CreateHitSound generates a short rest followed by four fading pulse notes.
func CreateHitSound(rate beep.SampleRate, volume float64) beep.Streamer {
	notes := []beep.Streamer{beep.Silence(rate.N(hitNoteDuration))}
	for i := 0; i < 4; i++ {
		osc := NewOscillator(noteA2, hitNoteDuration, WavePulse, rate)
		notes = append(notes, NewFade(osc, hitNoteDuration, rate))
	}
	return newVolume(beep.Seq(notes...), volume)
}

// Create returns a fresh streamer for the effect, or nil for unknown effects.
func Create(e Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	switch e {
	case EffectShot:
		return CreateShotSound(rate, volume)
	case EffectHit:
		return CreateHitSound(rate, volume)
	default:
		return nil
	}
}
