package loop

import "github.com/tomz197/shmup/internal/object"

// updatePlaying advances the whole simulation by one tick.
func (s *State) updatePlaying(in object.Input) {
	s.SurvivalTime = int((s.Frame - s.StartFrame) / TargetFPS)

	ctx := s.UpdateContext(in)

	s.Player.Update(ctx)
	s.Bullets.Advance(ctx)
	s.Enemies.Advance(ctx)
	s.Explosions.Advance(ctx)
	// Enemy bullets fired this tick move this tick too
	s.EnemyBullets.Advance(ctx)

	s.Spawner.Update(ctx)

	s.resolveCollisions()
	s.compact()
}

// compact drops everything the collision pass destroyed.
func (s *State) compact() {
	s.Bullets.Compact()
	s.EnemyBullets.Compact()
	s.Enemies.Compact()
	s.Explosions.Compact()
}
