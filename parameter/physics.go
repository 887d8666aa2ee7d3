package parameter

// Speeds in cells per second
const (
	PlayerSpeed = 30.0

	// PlayerDamping decays player velocity each tick so a move event is
	// a nudge, not a committed heading
	PlayerDamping = 0.80

	EnemyBaseFallSpeed = 6.0

	// EnemyFallSpeedPerLevel accelerates the descent each level
	EnemyFallSpeedPerLevel = 1.5

	BossSweepSpeed = 8.0

	PlayerBulletSpeed = 40.0
	EnemyBulletSpeed  = 18.0

	MissileSpeed = 26.0

	// MissileTurnRate caps how fast a tracking missile re-aims, radians/sec
	MissileTurnRate = 3.5

	ItemFallSpeed = 5.0
)

// Bounding box sizes in cells (width, height)
const (
	PlayerWidth  = 3.0
	PlayerHeight = 2.0

	EnemyWidth  = 3.0
	EnemyHeight = 2.0

	BossWidth  = 9.0
	BossHeight = 4.0

	BulletWidth  = 1.0
	BulletHeight = 1.0

	MissileWidth  = 1.0
	MissileHeight = 1.0

	ItemWidth  = 2.0
	ItemHeight = 1.0
)

// Screen fallbacks when the terminal reports a degenerate size
const (
	MinFieldWidth  = 40
	MinFieldHeight = 20
)
