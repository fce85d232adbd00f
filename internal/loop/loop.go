// Package loop provides the game state machine and the per-tick simulation.
package loop

import (
	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/object"
)

// Update runs one tick: it dispatches on the game state, then advances the
// frame counter. A quit intent stops the game before anything else runs.
func (s *State) Update(in object.Input) {
	if in.Quit {
		s.Running = false
		return
	}

	switch s.GameState {
	case GameStateTitle:
		s.updateTitle(in)
	case GameStatePlaying:
		s.updatePlaying(in)
	case GameStateOver:
		s.updateGameOver(in)
	}

	s.Frame++
}

// Draw emits the current frame's draw primitives.
func (s *State) Draw(sink draw.Sink) {
	switch s.GameState {
	case GameStateTitle:
		s.drawTitle(sink)
	case GameStatePlaying, GameStateOver:
		s.drawWorld(sink)
		s.drawHUD(sink)
	}
}
