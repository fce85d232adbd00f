package object

// EnemySpawnInterval is the number of ticks between spawn attempts.
const EnemySpawnInterval = 30

// EnemySpawner adds one enemy of a random variant every interval while the
// enemy pool has room.
type EnemySpawner struct {
	interval uint64
}

// NewEnemySpawner creates a spawner firing every interval ticks.
func NewEnemySpawner(interval uint64) *EnemySpawner {
	if interval == 0 {
		interval = 1
	}
	return &EnemySpawner{
		interval: interval,
	}
}

// Update spawns an enemy at the right edge on interval ticks.
// Returns true if an enemy was added.
func (s *EnemySpawner) Update(ctx *UpdateContext) bool {
	if ctx.Frame%s.interval != 0 || ctx.Enemies.Full() {
		return false
	}

	variant := Variant(ctx.Rand.Intn(int(variantCount)))
	return ctx.Enemies.Spawn(NewEnemy(variant, ctx.Frame, ctx.Rand))
}
