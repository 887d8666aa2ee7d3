package parameter

import "time"

// Player
const (
	PlayerMaxHealth    = 100
	PlayerInitialLives = 3

	// PlayerContactDamage is applied to the player on enemy contact
	PlayerContactDamage = 25

	// PlayerRamDamage is applied to the enemy on contact with the player
	PlayerRamDamage = 50

	// PlayerHitImmunity is the post-hit window during which further
	// contact and enemy bullets do not damage the player
	PlayerHitImmunity = 1 * time.Second
)

// Enemies
const (
	EnemyBaseHealth = 20

	// EnemyHealthPerLevel is added to enemy health each level
	EnemyHealthPerLevel = 10
)

// Boss
const (
	BossBaseHealth = 400

	// BossHealthPerLevel scales boss durability with level
	BossHealthPerLevel = 150
)

// Projectiles
const (
	PlayerBulletDamage = 20
	EnemyBulletDamage  = 15
	MissileDamage      = 60

	// PlayerFireCooldown throttles the main gun, in game time
	PlayerFireCooldown = 200 * time.Millisecond

	// MissileLaunchCooldown throttles missile launches, in game time
	MissileLaunchCooldown = 3 * time.Second
)

// LevelTransitionDuration is the breather between levels before play
// resumes
const LevelTransitionDuration = 1500 * time.Millisecond

// Items
const (
	ItemHealAmount = 25

	// ItemScoreBonus is awarded for score items on pickup
	ItemScoreBonus = 50
)
