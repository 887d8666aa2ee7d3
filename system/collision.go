package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/nova-strike/entity"
	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/parameter"
)

// ResolutionPolicy is the rule applied when members of a group pair
// overlap
type ResolutionPolicy uint8

const (
	// DamageAndMaybeDestroy: projectile is consumed, target takes its
	// damage and is destroyed when health runs out
	DamageAndMaybeDestroy ResolutionPolicy = iota
	// TrackedDamage: missile variant of DamageAndMaybeDestroy with
	// heavier damage
	TrackedDamage
	// DamageBothWithCooldown: contact damages enemy and player; further
	// player damage is suppressed inside the immunity window
	DamageBothWithCooldown
	// DamageWithCooldown: projectile is consumed, player takes damage
	// unless inside the immunity window
	DamageWithCooldown
	// CollectAndRemove: item applies its pickup effect and is removed
	CollectAndRemove
)

// Pair binds two entity groups to a resolution policy
type Pair struct {
	A, B   entity.Type
	Policy ResolutionPolicy
}

// Collision detects and resolves pairwise overlaps between typed groups.
//
// Key invariant: each unordered (a,b) pair resolves at most once per
// tick. Consumed entities are swap-removed from their group the moment
// the policy consumes them, so a one-hit bullet overlapping two enemies
// destroys exactly one. Allowed side effects: health mutation, removal,
// event emission. Score and UI are other systems' business.
type Collision struct {
	bus *event.Bus
	log *zap.Logger

	pairs []Pair

	// playerImmuneUntil is a game-time deadline
	playerImmuneUntil time.Duration

	frame    int64
	gameTime time.Duration
}

// NewCollision creates the collision system with the standard pair list
func NewCollision(bus *event.Bus, log *zap.Logger) *Collision {
	return &Collision{
		bus: bus,
		log: log,
		pairs: []Pair{
			{entity.TypePlayerBullet, entity.TypeEnemy, DamageAndMaybeDestroy},
			{entity.TypePlayerBullet, entity.TypeBoss, DamageAndMaybeDestroy},
			{entity.TypeMissile, entity.TypeEnemy, TrackedDamage},
			{entity.TypeMissile, entity.TypeBoss, TrackedDamage},
			{entity.TypeEnemy, entity.TypePlayer, DamageBothWithCooldown},
			{entity.TypeEnemyBullet, entity.TypePlayer, DamageWithCooldown},
			{entity.TypePlayer, entity.TypeItem, CollectAndRemove},
		},
	}
}

func (c *Collision) Name() string  { return "collision" }
func (c *Collision) Priority() int { return parameter.PriorityCollision }

// Reset clears per-session state
func (c *Collision) Reset() {
	c.playerImmuneUntil = 0
}

// outcome reports which side a policy consumed
type outcome struct {
	aRemoved bool
	bRemoved bool
}

// Resolve runs every pair in order. Index loops instead of range: a
// swap-remove fills the hole from the tail, so the index only advances
// past entities that survived the inner pass.
func (c *Collision) Resolve(w *entity.World, gameTime time.Duration, frame int64) {
	c.gameTime = gameTime
	c.frame = frame

	for _, pair := range c.pairs {
		ga := w.GroupFor(pair.A)
		gb := w.GroupFor(pair.B)

		i := 0
		for i < ga.Len() {
			a := ga.At(i)
			consumed := false

			j := 0
			for j < gb.Len() {
				b := gb.At(j)
				if !a.Overlaps(b) {
					j++
					continue
				}

				out := c.apply(pair.Policy, a, b, w)
				if !out.bRemoved {
					j++
				}
				if out.aRemoved {
					consumed = true
					break
				}
			}

			if !consumed {
				i++
			}
		}
	}
}

func (c *Collision) apply(policy ResolutionPolicy, a, b *entity.Entity, w *entity.World) outcome {
	switch policy {
	case DamageAndMaybeDestroy:
		return c.projectileHit(a, b, w, parameter.PlayerBulletDamage)
	case TrackedDamage:
		return c.projectileHit(a, b, w, parameter.MissileDamage)
	case DamageBothWithCooldown:
		return c.contact(a, b, w)
	case DamageWithCooldown:
		return c.bulletHitPlayer(a, b, w)
	case CollectAndRemove:
		return c.collect(a, b, w)
	}
	return outcome{}
}

// projectileHit consumes the projectile and damages the target
func (c *Collision) projectileHit(proj, target *entity.Entity, w *entity.World, damage int) outcome {
	w.GroupFor(proj.Type).Remove(proj.ID)

	target.Health -= damage
	if target.Health > 0 {
		if target.Type == entity.TypeBoss {
			c.publish(event.EventBossDamaged, &event.BossDamagedPayload{
				BossID:    uint32(target.ID),
				Damage:    damage,
				Remaining: target.Health,
			})
		}
		return outcome{aRemoved: true}
	}

	c.destroyTarget(target, w)
	return outcome{aRemoved: true, bRemoved: true}
}

// contact resolves enemy/player overlap: the enemy always takes ram
// damage, the player at most once per immunity window
func (c *Collision) contact(enemy, player *entity.Entity, w *entity.World) outcome {
	out := outcome{}

	enemy.Health -= parameter.PlayerRamDamage
	if enemy.Health <= 0 {
		c.destroyTarget(enemy, w)
		out.aRemoved = true
	}

	if c.gameTime >= c.playerImmuneUntil {
		out.bRemoved = c.damagePlayer(player, w, parameter.PlayerContactDamage)
		c.playerImmuneUntil = c.gameTime + parameter.PlayerHitImmunity
	}
	return out
}

func (c *Collision) bulletHitPlayer(bullet, player *entity.Entity, w *entity.World) outcome {
	w.EnemyBullets.Remove(bullet.ID)
	if c.gameTime < c.playerImmuneUntil {
		return outcome{aRemoved: true}
	}

	removed := c.damagePlayer(player, w, parameter.EnemyBulletDamage)
	c.playerImmuneUntil = c.gameTime + parameter.PlayerHitImmunity
	return outcome{aRemoved: true, bRemoved: removed}
}

// damagePlayer applies damage, burns a life when health runs out and
// removes the player on the last life. Returns true when removed.
func (c *Collision) damagePlayer(player *entity.Entity, w *entity.World, damage int) bool {
	player.Health -= damage

	if player.Health > 0 {
		c.publish(event.EventPlayerDamaged, &event.PlayerDamagedPayload{
			Damage:    damage,
			Remaining: player.Health,
			Lives:     player.Lives,
		})
		return false
	}

	player.Lives--
	if player.Lives > 0 {
		player.Health = player.MaxHealth
		c.publish(event.EventPlayerDamaged, &event.PlayerDamagedPayload{
			Damage:    damage,
			Remaining: player.Health,
			Lives:     player.Lives,
		})
		return false
	}

	w.Players.Remove(player.ID)
	c.publish(event.EventPlayerDamaged, &event.PlayerDamagedPayload{
		Damage: damage,
		Lives:  0,
	})
	c.publish(event.EventPlayerDied, nil)
	return true
}

func (c *Collision) collect(player, item *entity.Entity, w *entity.World) outcome {
	w.Items.Remove(item.ID)

	switch item.Kind {
	case entity.ItemHeal:
		player.Health += parameter.ItemHealAmount
		if player.Health > player.MaxHealth {
			player.Health = player.MaxHealth
		}
	case entity.ItemExtraLife:
		player.Lives++
	}

	c.publish(event.EventItemCollected, &event.ItemCollectedPayload{
		ItemID: uint32(item.ID),
		Kind:   int(item.Kind),
		Points: item.Points,
	})
	return outcome{bRemoved: true}
}

// destroyTarget removes a dead enemy or boss and emits its domain event
func (c *Collision) destroyTarget(target *entity.Entity, w *entity.World) {
	w.GroupFor(target.Type).Remove(target.ID)

	switch target.Type {
	case entity.TypeBoss:
		c.publish(event.EventBossDestroyed, &event.BossDestroyedPayload{
			BossID: uint32(target.ID),
			Level:  target.Level,
			Points: target.Points,
		})
	default:
		c.publish(event.EventEnemyDestroyed, &event.EnemyDestroyedPayload{
			EnemyID: uint32(target.ID),
			X:       target.X,
			Y:       target.Y,
			Points:  target.Points,
		})
	}
}

func (c *Collision) publish(t event.EventType, payload any) {
	c.bus.Publish(event.Event{
		Type:      t,
		Source:    c.Name(),
		Frame:     c.frame,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
