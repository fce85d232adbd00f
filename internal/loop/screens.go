package loop

import (
	"fmt"

	"github.com/tomz197/shmup/internal/draw"
	"github.com/tomz197/shmup/internal/object"
)

// updateTitle starts a session on confirm.
func (s *State) updateTitle(in object.Input) {
	if !in.Confirm {
		return
	}
	s.GameState = GameStatePlaying
	s.StartFrame = s.Frame
	s.logger.Debug("session started", "frame", s.Frame)
}

// updateGameOver lets the death explosion finish while everything else
// stays frozen. Confirm goes back to the title screen.
func (s *State) updateGameOver(in object.Input) {
	s.Explosions.Advance(s.UpdateContext(in))

	if in.Confirm {
		s.Reset()
		s.logger.Debug("session reset", "high_score", s.HighScore)
	}
}

// drawTitle draws the title screen with a blinking prompt.
func (s *State) drawTitle(sink draw.Sink) {
	cx, cy := float64(object.ArenaWidth/2), float64(object.ArenaHeight/2)

	object.Text{X: cx - 30, Y: cy - 20, Value: "GRADIUS CLONE", Color: draw.ColorWhite}.Draw(sink)
	object.Text{X: cx - 40, Y: cy, Value: "PRESS ENTER", Color: draw.Color(s.Frame % 16)}.Draw(sink)
}

// drawWorld draws every entity. Dead entities draw nothing.
func (s *State) drawWorld(sink draw.Sink) {
	s.Player.Draw(sink)
	s.Bullets.Draw(sink)
	s.Enemies.Draw(sink)
	s.Explosions.Draw(sink)
	s.EnemyBullets.Draw(sink)
}

// drawHUD draws score, high score, survival time and the game over banner.
func (s *State) drawHUD(sink draw.Sink) {
	object.Text{
		X:     hudMargin,
		Y:     hudScoreY,
		Value: fmt.Sprintf("SCORE %05d", s.Score),
		Color: hudTextColor,
	}.Draw(sink)

	object.RightAligned(hudScoreY, hudMargin, fmt.Sprintf("HI-SCORE %05d", s.HighScore), hudTextColor).Draw(sink)

	object.Text{
		X:     hudMargin,
		Y:     hudTimeY,
		Value: fmt.Sprintf("TIME %03d", s.SurvivalTime),
		Color: hudTextColor,
	}.Draw(sink)

	if s.GameState == GameStateOver {
		object.Text{
			X:     object.ArenaWidth/2 - 24,
			Y:     object.ArenaHeight / 2,
			Value: "GAME OVER",
			Color: draw.ColorRed,
		}.Draw(sink)
	}
}
