// Package speaker plays sound effects on the local audio device. It needs
// cgo and the platform audio libraries, so only the local binary imports it.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	beepspeaker "github.com/gopxl/beep/speaker"
	"github.com/tomz197/shmup/internal/sound"
)

// Speaker has a single channel: a new effect replaces the one currently playing.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	closed bool
}

// New initializes the audio device and starts the mixer.
func New(volume float64) (*Speaker, error) {
	rate := sound.DefaultSampleRate
	if err := beepspeaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: volume,
	}
	beepspeaker.Play(s.mixer)
	return s, nil
}

// Play starts the effect, cutting off whatever was playing.
func (s *Speaker) Play(e sound.Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	streamer := sound.Create(e, s.rate, s.volume)
	if streamer == nil {
		return
	}

	beepspeaker.Lock()
	s.mixer.Clear()
	s.mixer.Add(streamer)
	beepspeaker.Unlock()
}

// Close stops playback and releases the audio device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	beepspeaker.Clear()
	beepspeaker.Close()
}

var _ sound.Sink = (*Speaker)(nil)
