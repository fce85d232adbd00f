package loop

import (
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/sound"
)

// resolveCollisions runs the three collision sweeps in order. The player
// sweeps stop as soon as the player is dead.
func (s *State) resolveCollisions() {
	s.checkBulletEnemyCollisions()

	if s.Player.IsDestroyed() {
		return
	}
	if s.checkPlayerEnemyBulletCollisions() {
		return
	}
	s.checkPlayerEnemyCollisions()
}

// checkBulletEnemyCollisions destroys each enemy hit by a player bullet.
// An enemy consumes at most one bullet per tick: the first one found.
func (s *State) checkBulletEnemyCollisions() {
	for _, e := range s.Enemies.Items() {
		if e.IsDestroyed() {
			continue
		}
		for _, b := range s.Bullets.Items() {
			if b.IsDestroyed() {
				continue
			}
			if e.Overlaps(b.X, b.Y, object.BulletWidth, object.BulletHeight) {
				e.MarkDestroyed()
				b.MarkDestroyed()
				s.Explosions.Spawn(object.NewExplosion(e.Center()))
				s.Score += ScorePerEnemy
				s.audio.Play(sound.EffectHit)
				break
			}
		}
	}
}

// checkPlayerEnemyBulletCollisions kills the player on the first enemy
// bullet touching it. Returns true if the player was killed.
func (s *State) checkPlayerEnemyBulletCollisions() bool {
	for _, b := range s.EnemyBullets.Items() {
		if b.IsDestroyed() {
			continue
		}
		if s.Player.Overlaps(b.X, b.Y, object.EnemyBulletWidth, object.EnemyBulletHeight) {
			b.MarkDestroyed()
			s.killPlayer("enemy bullet")
			return true
		}
	}
	return false
}

// checkPlayerEnemyCollisions kills the player on contact with an enemy.
// The enemy survives the contact.
func (s *State) checkPlayerEnemyCollisions() bool {
	for _, e := range s.Enemies.Items() {
		if e.IsDestroyed() {
			continue
		}
		if s.Player.Overlaps(e.X, e.Y, object.EnemyWidth, object.EnemyHeight) {
			s.killPlayer("enemy " + e.Variant.String())
			return true
		}
	}
	return false
}

// killPlayer handles player death: explosion, game over and high score.
func (s *State) killPlayer(cause string) {
	s.Player.MarkDestroyed()
	s.Explosions.Spawn(object.NewExplosion(s.Player.Center()))
	s.GameState = GameStateOver

	if s.Score > s.HighScore {
		s.HighScore = s.Score
		s.logger.Info("new high score", "score", s.Score)
	}
	s.audio.Play(sound.EffectHit)

	s.logger.Info("game over",
		"cause", cause,
		"score", s.Score,
		"high_score", s.HighScore,
		"survived", s.SurvivalTime,
	)
}
