package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/nova-strike/entity"
	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/status"
)

type spawnFixture struct {
	world    *entity.World
	bus      *event.Bus
	spawning *Spawning
}

func newSpawnFixture(t *testing.T, seed int64) *spawnFixture {
	t.Helper()
	f := &spawnFixture{
		world: entity.NewWorld(entity.Bounds{Width: 80, Height: 24}),
		bus:   event.NewBus(),
	}
	rng := rand.New(rand.NewSource(seed))
	factory := entity.NewFactory(f.world, 1.0, 3, rng)
	f.spawning = NewSpawning(f.bus, zap.NewNop(), factory, rng, status.NewRegistry())
	return f
}

// Interval must never increase with level, for any category
func TestIntervalNonIncreasing(t *testing.T) {
	for _, cat := range []Category{CategoryEnemy, CategoryBoss, CategoryEnemyFire} {
		prev := Interval(1, cat)
		require.Positive(t, prev)

		for level := 2; level <= parameter.MaxLevel; level++ {
			cur := Interval(level, cat)
			require.Positive(t, cur)
			require.LessOrEqual(t, cur, prev,
				"category %d interval increased at level %d", cat, level)
			prev = cur
		}
	}
}

func TestIntervalClampsBelowOne(t *testing.T) {
	require.Equal(t, Interval(1, CategoryEnemy), Interval(0, CategoryEnemy))
	require.Equal(t, Interval(1, CategoryEnemy), Interval(-5, CategoryEnemy))
}

func TestIntervalFloors(t *testing.T) {
	require.Equal(t, parameter.EnemySpawnFloor, Interval(parameter.MaxLevel, CategoryEnemy))
	require.Equal(t, parameter.BossSpawnFloor, Interval(parameter.MaxLevel, CategoryBoss))
	require.Equal(t, parameter.EnemyFireFloor, Interval(parameter.MaxLevel, CategoryEnemyFire))
}

func TestSpawningFreshTimerAnchorsInsteadOfFiring(t *testing.T) {
	f := newSpawnFixture(t, 1)

	// First update anchors all timers; nothing spawns yet
	f.spawning.Update(10*time.Second, 1, f.world)
	require.Zero(t, f.world.Enemies.Len())

	// One interval later the enemy timer fires
	f.spawning.Update(10*time.Second+Interval(1, CategoryEnemy), 1, f.world)
	require.Equal(t, 1, f.world.Enemies.Len())
}

func TestSpawningEnemyCadence(t *testing.T) {
	f := newSpawnFixture(t, 1)
	interval := Interval(1, CategoryEnemy)

	f.spawning.Update(0, 1, f.world)
	for i := 1; i <= 4; i++ {
		f.spawning.Update(time.Duration(i)*interval, 1, f.world)
	}
	require.Equal(t, 4, f.world.Enemies.Len())

	// Half an interval later nothing new appears
	f.spawning.Update(4*interval+interval/2, 1, f.world)
	require.Equal(t, 4, f.world.Enemies.Len())
}

// Frozen game time across updates spawns nothing: timers run on game
// time, so a pause cannot burst spawns on resume
func TestSpawningPauseAware(t *testing.T) {
	f := newSpawnFixture(t, 1)

	f.spawning.Update(0, 1, f.world)
	for i := 0; i < 100; i++ {
		f.spawning.Update(5*time.Second, 1, f.world)
	}
	require.LessOrEqual(t, f.world.Enemies.Len(), 1)
}

func TestSpawningBossGatedByLevel(t *testing.T) {
	f := newSpawnFixture(t, 1)

	f.spawning.Update(0, parameter.BossMinLevel, f.world)
	f.spawning.Update(Interval(parameter.BossMinLevel, CategoryBoss)*2, parameter.BossMinLevel, f.world)
	require.Zero(t, f.world.Bosses.Len(), "no boss at or below the minimum level")

	f = newSpawnFixture(t, 1)
	level := parameter.BossMinLevel + 1
	f.spawning.Update(0, level, f.world)
	f.spawning.Update(Interval(level, CategoryBoss), level, f.world)
	require.Equal(t, 1, f.world.Bosses.Len())
}

func TestSpawningSingleBossAtATime(t *testing.T) {
	f := newSpawnFixture(t, 1)
	level := parameter.BossMinLevel + 1
	interval := Interval(level, CategoryBoss)

	f.spawning.Update(0, level, f.world)
	f.spawning.Update(interval, level, f.world)
	require.Equal(t, 1, f.world.Bosses.Len())

	// Timer held while the boss lives
	f.spawning.Update(3*interval, level, f.world)
	require.Equal(t, 1, f.world.Bosses.Len())

	// After the kill, a full interval must elapse before the next one
	boss := f.world.Bosses.At(0)
	f.world.Bosses.Remove(boss.ID)
	f.spawning.Update(3*interval+interval/2, level, f.world)
	require.Zero(t, f.world.Bosses.Len())
	f.spawning.Update(4*interval+interval/2, level, f.world)
	require.Equal(t, 1, f.world.Bosses.Len())
}

func TestSpawningFactoryExhaustionSkipsQuietly(t *testing.T) {
	f := newSpawnFixture(t, 1)
	level := parameter.MaxLevel + 1
	interval := Interval(level, CategoryEnemy)

	f.spawning.Update(0, level, f.world)
	f.spawning.Update(interval, level, f.world)
	require.Zero(t, f.world.Enemies.Len())

	// Timer was reset on failure: the very next tick stays quiet
	f.spawning.Update(interval+time.Millisecond, level, f.world)
	require.Zero(t, f.world.Enemies.Len())
}

func TestSpawningEnemyFireAimsAtPlayer(t *testing.T) {
	f := newSpawnFixture(t, 1)

	player := f.spawning.factory.SpawnPlayer()
	player.X, player.Y = 40, 20

	enemy, err := f.spawning.factory.SpawnEnemy(1)
	require.NoError(t, err)
	enemy.X, enemy.Y = 40, 4

	interval := Interval(1, CategoryEnemyFire)
	f.spawning.Update(0, 1, f.world)
	f.spawning.Update(interval, 1, f.world)

	require.Equal(t, 1, f.world.EnemyBullets.Len())
	bullet := f.world.EnemyBullets.At(0)
	require.Zero(t, bullet.VX, "straight shot for a vertically aligned player")
	require.Positive(t, bullet.VY, "bullet heads down toward the player")
}

func TestSpawningEnemyFireNeedsBothSides(t *testing.T) {
	f := newSpawnFixture(t, 1)
	interval := Interval(1, CategoryEnemyFire)

	// Enemies but no player
	_, err := f.spawning.factory.SpawnEnemy(1)
	require.NoError(t, err)
	f.spawning.Update(0, 1, f.world)
	f.spawning.Update(interval, 1, f.world)
	require.Zero(t, f.world.EnemyBullets.Len())
}

func TestSpawningItemSeedsFromThresholds(t *testing.T) {
	f := newSpawnFixture(t, 7)

	// Crossings spaced past the seed cooldown; the win chance makes at
	// least one seed near-certain over this many attempts
	for i := 0; i < 20; i++ {
		gt := time.Duration(i) * (parameter.ItemSeedCooldown + time.Second)
		f.spawning.Update(gt, 2, f.world)
		f.bus.Publish(event.Event{
			Type:    event.EventScoreThresholdCrossed,
			Payload: &event.ScoreThresholdCrossedPayload{Score: int64(i * 1000)},
		})
		require.NoError(t, f.bus.Flush())
	}

	f.spawning.Update(21*(parameter.ItemSeedCooldown+time.Second), 2, f.world)
	require.NotZero(t, f.world.Items.Len())
}

func TestSpawningItemSeedCooldown(t *testing.T) {
	f := newSpawnFixture(t, 7)

	// Burst of crossings at the same game time: at most one can seed
	f.spawning.Update(parameter.ItemSeedCooldown*2, 2, f.world)
	before := f.world.Items.Len()
	for i := 0; i < 50; i++ {
		f.bus.Publish(event.Event{
			Type:    event.EventScoreThresholdCrossed,
			Payload: &event.ScoreThresholdCrossedPayload{},
		})
	}
	require.NoError(t, f.bus.Flush())
	f.spawning.Update(parameter.ItemSeedCooldown*2+time.Millisecond, 2, f.world)

	require.LessOrEqual(t, f.world.Items.Len()-before, 1)
}

func TestSpawningResetClearsState(t *testing.T) {
	f := newSpawnFixture(t, 1)
	interval := Interval(1, CategoryEnemy)

	f.spawning.Update(0, 1, f.world)
	f.spawning.Update(interval, 1, f.world)
	require.Equal(t, 1, f.world.Enemies.Len())

	f.bus.Publish(event.Event{Type: event.EventGameReset})
	require.NoError(t, f.bus.Flush())
	f.world.Clear()

	// Timers anchor fresh after reset
	f.spawning.Update(100*time.Second, 1, f.world)
	require.Zero(t, f.world.Enemies.Len())
	f.spawning.Update(100*time.Second+interval, 1, f.world)
	require.Equal(t, 1, f.world.Enemies.Len())
}
