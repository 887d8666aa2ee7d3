package parameter

import "time"

// Spawn intervals by category. Intervals must be non-increasing in level:
// Interval in the spawning system ramps the base interval down and
// clamps at the floor. Tests sweep the full level range to hold the line.
const (
	EnemySpawnBaseInterval = 2500 * time.Millisecond
	EnemySpawnFloor        = 400 * time.Millisecond

	// EnemySpawnDecayPerLevel is subtracted from the base per level
	EnemySpawnDecayPerLevel = 250 * time.Millisecond

	BossSpawnBaseInterval = 45 * time.Second
	BossSpawnFloor        = 15 * time.Second
	BossSpawnDecayPerLevel = 4 * time.Second

	// ItemSeedChance is the probability that a crossed score threshold
	// seeds an item drop
	ItemSeedChance = 0.6

	// ItemSeedCooldown throttles drops when thresholds are crossed in a
	// burst
	ItemSeedCooldown = 5 * time.Second
)

// Enemy fire
const (
	EnemyFireBaseInterval  = 1800 * time.Millisecond
	EnemyFireFloor         = 600 * time.Millisecond
	EnemyFireDecayPerLevel = 150 * time.Millisecond
)

// MaxLevel bounds the difficulty tables; factories reject levels beyond it
const MaxLevel = 64

// Placement
const (
	// SpawnEdgeMargin keeps spawned entities off the extreme columns
	SpawnEdgeMargin = 2.0
)
