package event

import "time"

// EventType identifies a domain event kind
type EventType int

const (
	// EventEnemyDestroyed signals an enemy removed by weapon fire
	// Trigger: CollisionSystem (bullet/missile resolution)
	// Consumer: ScoringSystem, audio | Payload: *EnemyDestroyedPayload
	EventEnemyDestroyed EventType = iota

	// EventBossDamaged signals a non-lethal hit on the boss
	// Trigger: CollisionSystem
	// Consumer: audio, renderer status | Payload: *BossDamagedPayload
	EventBossDamaged

	// EventBossDestroyed signals the boss removed by weapon fire
	// Trigger: CollisionSystem
	// Consumer: ScoringSystem (level-up at and above the score cutover)
	// Payload: *BossDestroyedPayload
	EventBossDestroyed

	// EventPlayerDamaged signals a hit on the player
	// Trigger: CollisionSystem (contact or enemy bullet)
	// Consumer: audio, renderer status | Payload: *PlayerDamagedPayload
	EventPlayerDamaged

	// EventPlayerDied signals player health exhausted with no lives left
	// Trigger: CollisionSystem
	// Consumer: Game (transition to GameOver) | Payload: nil
	EventPlayerDied

	// EventItemCollected signals the player picked up an item
	// Trigger: CollisionSystem
	// Consumer: ScoringSystem, audio | Payload: *ItemCollectedPayload
	EventItemCollected

	// EventScoreThresholdCrossed signals cumulative score passing a
	// per-level threshold
	// Trigger: ScoringSystem.AddScore
	// Consumer: SpawningSystem (item seeding) | Payload: *ScoreThresholdCrossedPayload
	EventScoreThresholdCrossed

	// EventLevelChanged signals level progression
	// Trigger: ScoringSystem.LevelUp
	// Consumer: SpawningSystem, Game (LevelTransition) | Payload: *LevelChangedPayload
	EventLevelChanged

	// EventVictory signals the final boss destroyed
	// Trigger: ScoringSystem
	// Consumer: Game (transition to Victory), audio | Payload: nil
	EventVictory

	// EventGameReset signals a session restart
	// Trigger: Game session reset (restart input from Menu/GameOver/Victory)
	// Consumer: ScoringSystem, SpawningSystem | Payload: nil
	EventGameReset

	eventTypeCount
)

var eventTypeNames = [...]string{
	EventEnemyDestroyed:        "enemy_destroyed",
	EventBossDamaged:           "boss_damaged",
	EventBossDestroyed:         "boss_destroyed",
	EventPlayerDamaged:         "player_damaged",
	EventPlayerDied:            "player_died",
	EventItemCollected:         "item_collected",
	EventScoreThresholdCrossed: "score_threshold_crossed",
	EventLevelChanged:          "level_changed",
	EventVictory:               "victory",
	EventGameReset:             "game_reset",
}

// String returns the wire-stable name of the event type
func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventTypeNames) {
		return "unknown"
	}
	return eventTypeNames[t]
}

// Event is a single dispatched occurrence. Events are immutable data;
// payloads carry copied values and ids, never pointers into live entities.
type Event struct {
	Type      EventType
	Source    string
	Frame     int64
	Timestamp time.Time
	Payload   any
}
