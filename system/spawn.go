package system

import (
	"errors"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/nova-strike/entity"
	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/status"
)

// Category is a spawn timer category
type Category uint8

const (
	CategoryEnemy Category = iota
	CategoryBoss
	CategoryEnemyFire
)

// Interval returns the spawn interval for a category at the given level.
//
// Invariant: for every category, Interval is non-increasing as level
// increases — higher level, more pressure. The decay is linear with a
// per-category floor; the property test sweeps the full level range.
func Interval(level int, cat Category) time.Duration {
	if level < 1 {
		level = 1
	}

	var base, floor, decay time.Duration
	switch cat {
	case CategoryEnemy:
		base, floor, decay = parameter.EnemySpawnBaseInterval, parameter.EnemySpawnFloor, parameter.EnemySpawnDecayPerLevel
	case CategoryBoss:
		base, floor, decay = parameter.BossSpawnBaseInterval, parameter.BossSpawnFloor, parameter.BossSpawnDecayPerLevel
	case CategoryEnemyFire:
		base, floor, decay = parameter.EnemyFireBaseInterval, parameter.EnemyFireFloor, parameter.EnemyFireDecayPerLevel
	default:
		return 0
	}

	interval := base - time.Duration(level-1)*decay
	if interval < floor {
		return floor
	}
	return interval
}

// Spawning turns elapsed game time, level and score signals into new
// entities via the factories. All timers run on game time, so a long
// pause does not burst spawns on resume.
type Spawning struct {
	bus     *event.Bus
	log     *zap.Logger
	factory *entity.Factory
	rng     *rand.Rand

	// lastSpawn per category, in game time
	lastSpawn map[Category]time.Duration

	// itemSeeds counts score-threshold crossings that won the drop roll;
	// each seed becomes one item on the next update
	itemSeeds    int
	lastItemSeed time.Duration

	// lastGameTime feeds HandleEvent, which has no time argument
	lastGameTime time.Duration

	statEnemies *atomic.Int64
	statBosses  *atomic.Int64
	statItems   *atomic.Int64
}

// NewSpawning creates the spawning system and subscribes it on the bus
func NewSpawning(bus *event.Bus, log *zap.Logger, factory *entity.Factory, rng *rand.Rand, reg *status.Registry) *Spawning {
	s := &Spawning{
		bus:         bus,
		log:         log,
		factory:     factory,
		rng:         rng,
		lastSpawn:   make(map[Category]time.Duration),
		statEnemies: reg.Ints.Get("spawn.enemies"),
		statBosses:  reg.Ints.Get("spawn.bosses"),
		statItems:   reg.Ints.Get("spawn.items"),
	}
	bus.Register(s)
	return s
}

func (s *Spawning) Name() string  { return "spawning" }
func (s *Spawning) Priority() int { return parameter.PrioritySpawning }

// EventTypes declares the bus subscriptions
func (s *Spawning) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventScoreThresholdCrossed,
		event.EventGameReset,
	}
}

// HandleEvent seeds probabilistic item drops from score crossings so
// reward density follows player performance. Never consumes.
func (s *Spawning) HandleEvent(ev event.Event) bool {
	switch ev.Type {
	case event.EventScoreThresholdCrossed:
		if s.lastGameTime-s.lastItemSeed < parameter.ItemSeedCooldown {
			return false
		}
		if s.rng.Float64() < parameter.ItemSeedChance {
			s.itemSeeds++
			s.lastItemSeed = s.lastGameTime
		}

	case event.EventGameReset:
		s.Reset()
	}
	return false
}

// Reset clears timers and pending seeds for a new session
func (s *Spawning) Reset() {
	for k := range s.lastSpawn {
		delete(s.lastSpawn, k)
	}
	s.itemSeeds = 0
	s.lastItemSeed = 0
	s.lastGameTime = 0
}

// Update checks each category timer against its interval and fires the
// matching factory. Timers reset to the current game time whether or not
// the factory produced, so a broken level configuration cannot turn into
// a tight retry loop.
func (s *Spawning) Update(gameTime time.Duration, level int, w *entity.World) {
	s.lastGameTime = gameTime

	if s.due(CategoryEnemy, gameTime, level) {
		s.lastSpawn[CategoryEnemy] = gameTime
		if _, err := s.factory.SpawnEnemy(level); err != nil {
			s.logFactoryFailure("enemy", level, err)
		} else {
			s.statEnemies.Add(1)
		}
	}

	// A live boss holds the timer so the next one waits a full interval
	// after the kill; never two bosses at once
	if level <= parameter.BossMinLevel || w.BossAlive() {
		s.lastSpawn[CategoryBoss] = gameTime
	} else if s.due(CategoryBoss, gameTime, level) {
		s.lastSpawn[CategoryBoss] = gameTime
		if _, err := s.factory.SpawnBoss(level); err != nil {
			s.logFactoryFailure("boss", level, err)
		} else {
			s.statBosses.Add(1)
		}
	}

	if s.due(CategoryEnemyFire, gameTime, level) {
		s.lastSpawn[CategoryEnemyFire] = gameTime
		s.enemyFire(w)
	}

	for s.itemSeeds > 0 {
		s.itemSeeds--
		s.factory.SpawnItem(s.rollItemKind())
		s.statItems.Add(1)
	}
}

// due reports whether a category's interval has elapsed. A fresh timer
// anchors at the current game time instead of firing immediately.
func (s *Spawning) due(cat Category, gameTime time.Duration, level int) bool {
	last, ok := s.lastSpawn[cat]
	if !ok {
		s.lastSpawn[cat] = gameTime
		return false
	}
	return gameTime-last >= Interval(level, cat)
}

// enemyFire picks a random live enemy and fires a bullet at the player
func (s *Spawning) enemyFire(w *entity.World) {
	player := w.Player()
	if player == nil || w.Enemies.Len() == 0 {
		return
	}

	shooter := w.Enemies.At(s.rng.Intn(w.Enemies.Len()))
	dx := player.X - shooter.X
	dy := player.Y - shooter.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}

	vx := dx / dist * parameter.EnemyBulletSpeed
	vy := dy / dist * parameter.EnemyBulletSpeed
	s.factory.SpawnEnemyBullet(shooter.X, shooter.Y+shooter.H/2, vx, vy)
}

func (s *Spawning) rollItemKind() entity.ItemKind {
	r := s.rng.Float64()
	switch {
	case r < 0.5:
		return entity.ItemHeal
	case r < 0.9:
		return entity.ItemScore
	default:
		return entity.ItemExtraLife
	}
}

func (s *Spawning) logFactoryFailure(category string, level int, err error) {
	if errors.Is(err, entity.ErrFactoryExhausted) {
		s.log.Warn("spawn skipped",
			zap.String("category", category),
			zap.Int("level", level),
			zap.Error(err))
		return
	}
	s.log.Error("spawn failed",
		zap.String("category", category),
		zap.Int("level", level),
		zap.Error(err))
}
