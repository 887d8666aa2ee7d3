package event

// EnemyDestroyedPayload carries the kill location for effects and the
// point value for scoring
type EnemyDestroyedPayload struct {
	EnemyID uint32
	X, Y    float64
	Points  int64
}

// BossDamagedPayload reports remaining boss health after a hit
type BossDamagedPayload struct {
	BossID    uint32
	Damage    int
	Remaining int
}

// BossDestroyedPayload carries the level the boss belonged to
type BossDestroyedPayload struct {
	BossID uint32
	Level  int
	Points int64
}

// PlayerDamagedPayload reports the hit and what the player has left
type PlayerDamagedPayload struct {
	Damage    int
	Remaining int
	Lives     int
}

// ItemCollectedPayload identifies the collected item
type ItemCollectedPayload struct {
	ItemID uint32
	Kind   int
	Points int64
}

// ScoreThresholdCrossedPayload reports the crossing that occurred
type ScoreThresholdCrossedPayload struct {
	Score     int64
	Threshold int64
}

// LevelChangedPayload carries the new level
type LevelChangedPayload struct {
	Level int
}
