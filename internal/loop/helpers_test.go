package loop

import (
	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/sound"
)

// scriptedRand returns queued Intn values, then 1, which never passes an
// enemy fire roll.
type scriptedRand struct {
	ints []int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) > 0 {
		v := r.ints[0]
		r.ints = r.ints[1:]
		return v % n
	}
	return 1 % n
}

func (r *scriptedRand) Float64() float64 {
	return 0.5
}

type recordingAudio struct {
	played []sound.Effect
}

func (a *recordingAudio) Play(e sound.Effect) {
	a.played = append(a.played, e)
}

func (a *recordingAudio) count(e sound.Effect) int {
	n := 0
	for _, p := range a.played {
		if p == e {
			n++
		}
	}
	return n
}

type textSink struct {
	texts []string
	blits int
}

func (s *textSink) FillRect(_, _, _, _ float64, _ draw.Color)  {}
func (s *textSink) FillCircle(_, _, _ float64, _ draw.Color)   {}
func (s *textSink) StrokeCircle(_, _, _ float64, _ draw.Color) {}
func (s *textSink) Blit(_, _ float64, _ *draw.Sprite)          { s.blits++ }
func (s *textSink) Text(_, _ float64, v string, _ draw.Color)  { s.texts = append(s.texts, v) }

func (s *textSink) has(v string) bool {
	for _, t := range s.texts {
		if t == v {
			return true
		}
	}
	return false
}

// newPlayingState returns a state already in the Playing phase.
func newPlayingState() (*State, *recordingAudio) {
	audio := &recordingAudio{}
	s := NewState(Options{Rand: &scriptedRand{}, Audio: audio})
	s.GameState = GameStatePlaying
	return s, audio
}
