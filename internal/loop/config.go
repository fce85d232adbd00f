package loop

import "time"

// Game configuration constants.
// Entity tuning lives next to each entity in the object package.

// Scoring
const (
	ScorePerEnemy = 100
)

// Timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// HUD layout, in arena pixels.
const (
	hudMargin    = 5
	hudScoreY    = 4
	hudTimeY     = 12
	hudTextColor = 7
)
