package parameter

// Points awarded per destruction source
const (
	EnemyPoints = 100
	BossPoints  = 1000

	DefaultScoreMultiplier = 1.0
)

// Difficulty curve cutovers
//
// The leveling policy switches along two axes of the same curve:
// score thresholds drive level-ups below ScoreCutoverLevel, boss kills
// drive them at and above it; bosses start appearing above BossMinLevel.
// Both knobs belong to one curve so they are tuned together here rather
// than scattered through the systems.
const (
	// ScoreCutoverLevel is the first level at which score thresholds stop
	// triggering level-ups (boss kills only from here on)
	ScoreCutoverLevel = 3

	// BossMinLevel is the last level without boss spawns
	BossMinLevel = 1

	// VictoryLevel ends the session when its boss falls
	VictoryLevel = 8
)

// ScoreThresholdForLevel returns the cumulative score that promotes the
// given level to the next one. Only consulted below ScoreCutoverLevel.
func ScoreThresholdForLevel(level int) int64 {
	// 1000, 3000, 6000, ... quadratic ramp keeps early levels short
	n := int64(level)
	return 500 * n * (n + 1)
}
