package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lixenwraith/nova-strike/parameter"
)

// ErrFactoryExhausted is returned when a factory cannot produce an
// entity for the requested parameters (level outside the difficulty
// tables). The spawn attempt is skipped; the caller resets its timer.
var ErrFactoryExhausted = errors.New("factory cannot produce entity")

// Factory creates fully-initialized entities and inserts them into their
// owning group. All creation funnels through here; systems never build
// Entity literals.
type Factory struct {
	world *World
	rng   *rand.Rand

	// difficulty scales enemy durability, read once at session start
	difficulty float64
	lives      int
}

// NewFactory creates a factory bound to a world. difficulty below zero
// is clamped to zero; lives below one falls back to the default.
func NewFactory(world *World, difficulty float64, lives int, rng *rand.Rand) *Factory {
	if difficulty < 0 {
		difficulty = 0
	}
	if lives < 1 {
		lives = parameter.PlayerInitialLives
	}
	return &Factory{
		world:      world,
		rng:        rng,
		difficulty: difficulty,
		lives:      lives,
	}
}

func checkLevel(level int) error {
	if level < 1 || level > parameter.MaxLevel {
		return fmt.Errorf("%w: level %d outside [1,%d]", ErrFactoryExhausted, level, parameter.MaxLevel)
	}
	return nil
}

// SpawnPlayer creates the player centered near the bottom edge
func (f *Factory) SpawnPlayer() *Entity {
	b := f.world.Bounds
	e := &Entity{
		ID:        f.world.AllocateID(),
		Type:      TypePlayer,
		X:         b.Width / 2,
		Y:         b.Height - parameter.PlayerHeight,
		W:         parameter.PlayerWidth,
		H:         parameter.PlayerHeight,
		Health:    parameter.PlayerMaxHealth,
		MaxHealth: parameter.PlayerMaxHealth,
		Lives:     f.lives,
	}
	f.world.Players.Add(e)
	return e
}

// SpawnEnemy creates a descending enemy at a random top-edge column
func (f *Factory) SpawnEnemy(level int) (*Entity, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	health := int(float64(parameter.EnemyBaseHealth+(level-1)*parameter.EnemyHealthPerLevel) * f.difficulty)
	if health < 1 {
		health = 1
	}
	e := &Entity{
		ID:        f.world.AllocateID(),
		Type:      TypeEnemy,
		X:         f.randomColumn(parameter.EnemyWidth),
		Y:         -parameter.EnemyHeight / 2,
		VY:        parameter.EnemyBaseFallSpeed + float64(level-1)*parameter.EnemyFallSpeedPerLevel,
		W:         parameter.EnemyWidth,
		H:         parameter.EnemyHeight,
		Health:    health,
		MaxHealth: health,
		Points:    parameter.EnemyPoints,
		Level:     level,
	}
	f.world.Enemies.Add(e)
	return e, nil
}

// SpawnBoss creates the level boss sweeping across the top band
func (f *Factory) SpawnBoss(level int) (*Entity, error) {
	if err := checkLevel(level); err != nil {
		return nil, err
	}
	b := f.world.Bounds
	health := int(float64(parameter.BossBaseHealth+(level-1)*parameter.BossHealthPerLevel) * f.difficulty)
	if health < 1 {
		health = 1
	}
	e := &Entity{
		ID:        f.world.AllocateID(),
		Type:      TypeBoss,
		X:         b.Width / 2,
		Y:         parameter.BossHeight,
		VX:        parameter.BossSweepSpeed,
		W:         parameter.BossWidth,
		H:         parameter.BossHeight,
		Health:    health,
		MaxHealth: health,
		Points:    parameter.BossPoints,
		Level:     level,
	}
	f.world.Bosses.Add(e)
	return e, nil
}

// SpawnItem creates a falling pickup at a random column
func (f *Factory) SpawnItem(kind ItemKind) *Entity {
	e := &Entity{
		ID:        f.world.AllocateID(),
		Type:      TypeItem,
		X:         f.randomColumn(parameter.ItemWidth),
		Y:         -parameter.ItemHeight / 2,
		VY:        parameter.ItemFallSpeed,
		W:         parameter.ItemWidth,
		H:         parameter.ItemHeight,
		Health:    1,
		MaxHealth: 1,
		Kind:      kind,
		Points:    parameter.ItemScoreBonus,
	}
	f.world.Items.Add(e)
	return e
}

// SpawnPlayerBullet fires a bullet upward from the given muzzle point
func (f *Factory) SpawnPlayerBullet(x, y float64) *Entity {
	e := &Entity{
		ID:        f.world.AllocateID(),
		Type:      TypePlayerBullet,
		X:         x,
		Y:         y,
		VY:        -parameter.PlayerBulletSpeed,
		W:         parameter.BulletWidth,
		H:         parameter.BulletHeight,
		Health:    1,
		MaxHealth: 1,
	}
	f.world.PlayerBullets.Add(e)
	return e
}

// SpawnEnemyBullet fires a bullet with the given velocity
func (f *Factory) SpawnEnemyBullet(x, y, vx, vy float64) *Entity {
	e := &Entity{
		ID:        f.world.AllocateID(),
		Type:      TypeEnemyBullet,
		X:         x,
		Y:         y,
		VX:        vx,
		VY:        vy,
		W:         parameter.BulletWidth,
		H:         parameter.BulletHeight,
		Health:    1,
		MaxHealth: 1,
	}
	f.world.EnemyBullets.Add(e)
	return e
}

// SpawnMissile launches a tracking missile toward the given target.
// Target id zero launches untracked, straight up.
func (f *Factory) SpawnMissile(x, y float64, target ID) *Entity {
	e := &Entity{
		ID:        f.world.AllocateID(),
		Type:      TypeMissile,
		X:         x,
		Y:         y,
		VY:        -parameter.MissileSpeed,
		W:         parameter.MissileWidth,
		H:         parameter.MissileHeight,
		Health:    1,
		MaxHealth: 1,
		TargetID:  target,
	}
	f.world.Missiles.Add(e)
	return e
}

func (f *Factory) randomColumn(width float64) float64 {
	b := f.world.Bounds
	span := b.Width - 2*parameter.SpawnEdgeMargin - width
	if span <= 0 {
		return b.Width / 2
	}
	return parameter.SpawnEdgeMargin + width/2 + f.rng.Float64()*span
}
