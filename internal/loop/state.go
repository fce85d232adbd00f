package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/sound"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateTitle   GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
	GameStateOver                     // Player died, explosions finish, waiting for confirm
)

// String returns the state name for logging.
func (g GameState) String() string {
	switch g {
	case GameStateTitle:
		return "title"
	case GameStatePlaying:
		return "playing"
	case GameStateOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Options configures a new State. Zero values select defaults.
type Options struct {
	Rand   object.Rand // Random source; seeded from the clock when nil
	Audio  sound.Sink  // Sound effect sink; silent when nil
	Logger *log.Logger // Session lifecycle logger; discarded when nil
}

// State is the whole simulation: the state machine, the player, all entity
// pools, scores and the tick counter. It is owned by a single driver and is
// not safe for concurrent use.
type State struct {
	GameState    GameState
	Frame        uint64 // Monotonic tick counter, never reset
	StartFrame   uint64 // Frame the current session started on
	Score        int
	HighScore    int // Best score since process start, survives Reset
	SurvivalTime int // Whole seconds since the session started

	Player       *object.Player
	Bullets      *object.Pool[*object.Bullet]
	EnemyBullets *object.Pool[*object.EnemyBullet]
	Enemies      *object.Pool[*object.Enemy]
	Explosions   *object.Pool[*object.Explosion]
	Spawner      *object.EnemySpawner

	Running bool // False once a quit intent was seen

	rand   object.Rand
	audio  sound.Sink
	logger *log.Logger
}

// NewState creates a state on the title screen.
func NewState(opts Options) *State {
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(0)
	}
	audio := opts.Audio
	if audio == nil {
		audio = sound.Mute{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &State{
		Bullets:      object.NewPool[*object.Bullet](object.BulletMaxCount),
		EnemyBullets: object.NewPool[*object.EnemyBullet](object.EnemyBulletMaxCount),
		Enemies:      object.NewPool[*object.Enemy](object.EnemyMaxCount),
		Explosions:   object.NewPool[*object.Explosion](0),
		Spawner:      object.NewEnemySpawner(object.EnemySpawnInterval),
		Running:      true,
		rand:         rng,
		audio:        audio,
		logger:       logger,
	}
	s.Reset()
	return s
}

// Reset returns to the title screen with a fresh player, empty pools and
// zeroed score and timer. The high score and the frame counter are kept.
func (s *State) Reset() {
	s.GameState = GameStateTitle
	s.Score = 0
	s.SurvivalTime = 0
	s.StartFrame = 0
	s.Player = object.NewPlayer()

	s.Bullets.Clear()
	s.EnemyBullets.Clear()
	s.Enemies.Clear()
	s.Explosions.Clear()
}

// NewRand returns a random source seeded with seed, or from the clock if seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// UpdateContext builds the per-tick context handed to entities.
func (s *State) UpdateContext(in object.Input) *object.UpdateContext {
	return &object.UpdateContext{
		Frame:        s.Frame,
		Input:        in,
		Rand:         s.rand,
		Audio:        s.audio,
		Bullets:      s.Bullets,
		EnemyBullets: s.EnemyBullets,
		Enemies:      s.Enemies,
	}
}
