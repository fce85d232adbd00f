package loop

import (
	"testing"

	"github.com/tomz197/shmup/internal/object"
)

func TestNewStateStartsOnTitle(t *testing.T) {
	s := NewState(Options{Rand: &scriptedRand{}})

	if s.GameState != GameStateTitle {
		t.Errorf("state = %s, want title", s.GameState)
	}
	if !s.Running {
		t.Error("new state should be running")
	}
	if s.Player == nil || s.Player.IsDestroyed() {
		t.Error("new state should have a live player")
	}
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState(Options{})
	// Nil collaborators are replaced, so a full tick must not panic.
	s.Update(object.Input{Confirm: true})
	for i := 0; i < 60; i++ {
		s.Update(object.Input{Fire: true})
	}
}

func TestTitleWaitsForConfirm(t *testing.T) {
	s := NewState(Options{Rand: &scriptedRand{}})

	for i := 0; i < 10; i++ {
		s.Update(object.Input{Fire: true})
	}
	if s.GameState != GameStateTitle {
		t.Fatalf("state = %s, want title", s.GameState)
	}
	if s.Frame != 10 {
		t.Errorf("frame = %d, want 10", s.Frame)
	}

	s.Update(object.Input{Confirm: true})
	if s.GameState != GameStatePlaying {
		t.Fatalf("state = %s, want playing", s.GameState)
	}
	if s.StartFrame != 10 {
		t.Errorf("start frame = %d, want 10", s.StartFrame)
	}
}

func TestQuitStopsBeforeTick(t *testing.T) {
	s, _ := newPlayingState()
	s.Update(object.Input{Quit: true, Right: true})

	if s.Running {
		t.Error("quit should stop the game")
	}
	if s.Frame != 0 {
		t.Errorf("frame = %d, want 0", s.Frame)
	}
	if s.Player.X != object.PlayerStartX {
		t.Error("player moved on a quit tick")
	}
}

func TestSpawnerCadence(t *testing.T) {
	s := NewState(Options{Rand: &scriptedRand{}})
	s.Update(object.Input{Confirm: true}) // frame 0

	for s.Frame < 30 {
		s.Update(object.Input{})
	}
	if s.Enemies.Len() != 0 {
		t.Fatalf("enemies before frame 30 = %d, want 0", s.Enemies.Len())
	}

	s.Update(object.Input{}) // frame 30
	if s.Enemies.Len() != 1 {
		t.Fatalf("enemies after frame 30 = %d, want 1", s.Enemies.Len())
	}
	if e := s.Enemies.Items()[0]; e.X != object.ArenaWidth {
		t.Errorf("new enemy x = %v, want %d", e.X, object.ArenaWidth)
	}
}

func TestSurvivalTime(t *testing.T) {
	s := NewState(Options{Rand: &scriptedRand{}})
	s.Update(object.Input{Confirm: true})

	for i := 0; i < 120; i++ {
		s.Update(object.Input{})
	}

	if s.GameState != GameStatePlaying {
		t.Fatalf("state = %s, want playing", s.GameState)
	}
	if s.SurvivalTime != 2 {
		t.Errorf("survival time = %d, want 2", s.SurvivalTime)
	}
}

func TestPlayingTickCompactsCollisions(t *testing.T) {
	s, _ := newPlayingState()
	s.Frame = 1
	placeEnemy(s, 100, 50)
	s.Bullets.Spawn(object.NewBullet(100, 55))

	s.Update(object.Input{})

	if s.Enemies.Len() != 0 || s.Bullets.Len() != 0 {
		t.Errorf("enemies = %d, bullets = %d, want both 0", s.Enemies.Len(), s.Bullets.Len())
	}
	if s.Explosions.Len() != 1 {
		t.Errorf("explosions = %d, want 1", s.Explosions.Len())
	}
	if s.Score != ScorePerEnemy {
		t.Errorf("score = %d, want %d", s.Score, ScorePerEnemy)
	}
}

func TestPlayerFiresDuringTick(t *testing.T) {
	s, audio := newPlayingState()
	s.Frame = 1

	s.Update(object.Input{Fire: true})

	if s.Bullets.Len() != 1 {
		t.Fatalf("bullets = %d, want 1", s.Bullets.Len())
	}
	// Spawned by the player, then advanced in the same tick
	want := s.Player.X + object.PlayerWidth + object.BulletSpeed
	if b := s.Bullets.Items()[0]; b.X != want {
		t.Errorf("bullet x = %v, want %v", b.X, want)
	}
	if len(audio.played) != 1 {
		t.Errorf("sounds = %d, want 1", len(audio.played))
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	s, _ := newPlayingState()
	s.Frame = 1
	e := placeEnemy(s, 100, 20)
	s.EnemyBullets.Spawn(object.NewEnemyBullet(200, 200, 180, 1))
	s.killPlayer("test")

	s.Update(object.Input{Fire: true, Left: true})

	if s.GameState != GameStateOver {
		t.Fatalf("state = %s, want game over", s.GameState)
	}
	if e.X != 100 {
		t.Errorf("enemy moved to x=%v during game over", e.X)
	}
	if b := s.EnemyBullets.Items()[0]; b.X != 200 {
		t.Errorf("enemy bullet moved to x=%v during game over", b.X)
	}
	if ex := s.Explosions.Items()[0]; ex.Radius != 2 {
		t.Errorf("explosion radius = %d, want 2", ex.Radius)
	}
	if s.Bullets.Len() != 0 {
		t.Error("dead player fired during game over")
	}
}

func TestGameOverExplosionFinishes(t *testing.T) {
	s, _ := newPlayingState()
	s.killPlayer("test")

	for i := 0; i < object.ExplosionMaxRadius; i++ {
		s.Update(object.Input{})
	}

	if s.Explosions.Len() != 0 {
		t.Errorf("explosions = %d, want 0", s.Explosions.Len())
	}
}

func TestRestartFromGameOver(t *testing.T) {
	s, _ := newPlayingState()
	s.Frame = 1
	s.Score = 700
	placeEnemy(s, 100, 20)
	s.Bullets.Spawn(object.NewBullet(10, 10))
	s.EnemyBullets.Spawn(object.NewEnemyBullet(200, 200, 180, 1))
	s.SurvivalTime = 42
	s.killPlayer("test")

	s.Update(object.Input{Confirm: true})

	if s.GameState != GameStateTitle {
		t.Fatalf("state = %s, want title", s.GameState)
	}
	if s.Score != 0 || s.SurvivalTime != 0 {
		t.Errorf("score = %d, survival = %d, want 0, 0", s.Score, s.SurvivalTime)
	}
	if s.HighScore != 700 {
		t.Errorf("high score = %d, want 700", s.HighScore)
	}
	if s.Enemies.Len()+s.Bullets.Len()+s.EnemyBullets.Len()+s.Explosions.Len() != 0 {
		t.Error("pools should be empty after restart")
	}
	if s.Player.IsDestroyed() || s.Player.X != object.PlayerStartX {
		t.Error("restart should create a fresh player")
	}

	s.Update(object.Input{Confirm: true})
	if s.GameState != GameStatePlaying {
		t.Errorf("state = %s, want playing", s.GameState)
	}
}

func TestHighScoreNeverDecreasesAcrossSessions(t *testing.T) {
	s, _ := newPlayingState()
	s.Score = 500
	s.killPlayer("test")
	s.Update(object.Input{Confirm: true})
	s.Update(object.Input{Confirm: true})

	s.Score = 100
	s.killPlayer("test")

	if s.HighScore != 500 {
		t.Errorf("high score = %d, want 500", s.HighScore)
	}
}

func TestDrawTitle(t *testing.T) {
	s := NewState(Options{Rand: &scriptedRand{}})
	sink := &textSink{}

	s.Draw(sink)

	if !sink.has("GRADIUS CLONE") || !sink.has("PRESS ENTER") {
		t.Errorf("title texts = %v", sink.texts)
	}
	if sink.blits != 0 {
		t.Error("title screen should not draw the ship")
	}
}

func TestDrawPlayingHUD(t *testing.T) {
	s, _ := newPlayingState()
	s.Score = 1200
	s.HighScore = 3400
	s.SurvivalTime = 7
	sink := &textSink{}

	s.Draw(sink)

	for _, want := range []string{"SCORE 01200", "HI-SCORE 03400", "TIME 007"} {
		if !sink.has(want) {
			t.Errorf("missing %q in %v", want, sink.texts)
		}
	}
	if sink.has("GAME OVER") {
		t.Error("game over banner drawn while playing")
	}
	if sink.blits != 1 {
		t.Errorf("ship blits = %d, want 1", sink.blits)
	}
}

func TestDrawGameOver(t *testing.T) {
	s, _ := newPlayingState()
	s.killPlayer("test")
	sink := &textSink{}

	s.Draw(sink)

	if !sink.has("GAME OVER") {
		t.Errorf("missing game over banner in %v", sink.texts)
	}
	if sink.blits != 0 {
		t.Error("dead ship should not be drawn")
	}
}
