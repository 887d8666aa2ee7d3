package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/status"
)

type scoringFixture struct {
	bus     *event.Bus
	scoring *Scoring
	events  []event.Event
}

func newScoringFixture(t *testing.T) *scoringFixture {
	t.Helper()
	f := &scoringFixture{bus: event.NewBus()}
	f.scoring = NewScoring(f.bus, zap.NewNop(), status.NewRegistry())
	f.bus.SubscribeGlobal(func(ev event.Event) bool {
		f.events = append(f.events, ev)
		return false
	})
	return f
}

func (f *scoringFixture) countType(et event.EventType) int {
	n := 0
	for _, ev := range f.events {
		if ev.Type == et {
			n++
		}
	}
	return n
}

func TestScoringEnemyKillAddsPoints(t *testing.T) {
	f := newScoringFixture(t)

	f.bus.Publish(event.Event{
		Type:    event.EventEnemyDestroyed,
		Payload: &event.EnemyDestroyedPayload{EnemyID: 1, Points: 100},
	})
	require.NoError(t, f.bus.Flush())

	require.Equal(t, int64(100), f.scoring.Score())
	require.Equal(t, 1, f.scoring.Level())
}

func TestScoringThresholdCrossedExactlyOnce(t *testing.T) {
	f := newScoringFixture(t)
	f.scoring.thresholdFor = func(level int) int64 { return 1000 }

	f.scoring.AddScore(990, "test")
	require.Equal(t, 1, f.scoring.Level())
	require.NoError(t, f.bus.Flush())
	require.Zero(t, f.countType(event.EventLevelChanged))

	// 990 -> 1010 crosses 1000 once
	f.scoring.AddScore(20, "test")
	require.Equal(t, 2, f.scoring.Level())
	require.NoError(t, f.bus.Flush())
	require.Equal(t, 1, f.countType(event.EventLevelChanged))
	require.Equal(t, 1, f.countType(event.EventScoreThresholdCrossed))

}

// The last score-driven promotion: one crossing at level 2 lands exactly
// on the cutover level, and no further score can promote past it
func TestScoringCutoverBoundary(t *testing.T) {
	f := newScoringFixture(t)
	f.scoring.thresholdFor = func(level int) int64 { return 1000 }
	f.scoring.level = parameter.ScoreCutoverLevel - 1
	f.scoring.score = 990

	f.scoring.AddScore(20, "test")
	require.Equal(t, parameter.ScoreCutoverLevel, f.scoring.Level())

	require.NoError(t, f.bus.Flush())
	require.Equal(t, 1, f.countType(event.EventLevelChanged))

	f.events = f.events[:0]
	f.scoring.AddScore(100_000, "test")
	require.Equal(t, parameter.ScoreCutoverLevel, f.scoring.Level())
}

func TestScoringExactThresholdLandingCrosses(t *testing.T) {
	f := newScoringFixture(t)
	f.scoring.thresholdFor = func(level int) int64 { return 1000 }

	f.scoring.AddScore(1000, "test")
	require.Equal(t, 2, f.scoring.Level())
}

func TestScoringMultiThresholdJump(t *testing.T) {
	f := newScoringFixture(t)

	// Defaults: level 1 threshold 1000, level 2 threshold 3000
	f.scoring.AddScore(3000, "test")
	require.Equal(t, parameter.ScoreCutoverLevel, f.scoring.Level())

	require.NoError(t, f.bus.Flush())
	require.Equal(t, 2, f.countType(event.EventScoreThresholdCrossed))
	require.Equal(t, 2, f.countType(event.EventLevelChanged))
}

func TestScoringCutoverStopsScoreLeveling(t *testing.T) {
	f := newScoringFixture(t)
	f.scoring.level = parameter.ScoreCutoverLevel

	f.scoring.AddScore(1_000_000, "test")
	require.Equal(t, parameter.ScoreCutoverLevel, f.scoring.Level(),
		"score alone never levels past the cutover")
	require.NoError(t, f.bus.Flush())
	require.Zero(t, f.countType(event.EventLevelChanged))
}

func TestScoringBossKillLevelsPastCutover(t *testing.T) {
	f := newScoringFixture(t)
	f.scoring.level = parameter.ScoreCutoverLevel

	f.bus.Publish(event.Event{
		Type:    event.EventBossDestroyed,
		Payload: &event.BossDestroyedPayload{BossID: 9, Level: parameter.ScoreCutoverLevel, Points: 1000},
	})
	require.NoError(t, f.bus.Flush())

	require.Equal(t, parameter.ScoreCutoverLevel+1, f.scoring.Level())
	require.Equal(t, int64(1000), f.scoring.Score())
	require.Equal(t, 1, f.countType(event.EventLevelChanged))
	require.Zero(t, f.countType(event.EventVictory))
}

func TestScoringBossKillBelowCutoverScoresOnly(t *testing.T) {
	f := newScoringFixture(t)
	f.scoring.thresholdFor = func(level int) int64 { return 1 << 40 }

	f.bus.Publish(event.Event{
		Type:    event.EventBossDestroyed,
		Payload: &event.BossDestroyedPayload{BossID: 9, Level: 2, Points: 1000},
	})
	require.NoError(t, f.bus.Flush())

	require.Equal(t, 1, f.scoring.Level(), "boss kills below the cutover do not level")
	require.Equal(t, int64(1000), f.scoring.Score())
}

// A boss kill whose points cross a score threshold must still promote
// exactly once: the threshold crossing wins, the boss-driven level-up
// does not stack on top
func TestScoringBossKillCrossingThresholdLevelsOnce(t *testing.T) {
	f := newScoringFixture(t)
	f.scoring.thresholdFor = func(level int) int64 { return 1000 }
	f.scoring.level = parameter.ScoreCutoverLevel - 1
	f.scoring.score = 990

	f.bus.Publish(event.Event{
		Type:    event.EventBossDestroyed,
		Payload: &event.BossDestroyedPayload{BossID: 4, Level: parameter.ScoreCutoverLevel - 1, Points: 20},
	})
	require.NoError(t, f.bus.Flush())

	require.Equal(t, parameter.ScoreCutoverLevel, f.scoring.Level())
	require.Equal(t, 1, f.countType(event.EventLevelChanged))
	require.Equal(t, 1, f.countType(event.EventScoreThresholdCrossed))
}

func TestScoringVictoryOnFinalBoss(t *testing.T) {
	f := newScoringFixture(t)
	f.scoring.level = parameter.VictoryLevel

	f.bus.Publish(event.Event{
		Type:    event.EventBossDestroyed,
		Payload: &event.BossDestroyedPayload{BossID: 9, Level: parameter.VictoryLevel, Points: 1000},
	})
	require.NoError(t, f.bus.Flush())

	require.Equal(t, 1, f.countType(event.EventVictory))
	require.Zero(t, f.countType(event.EventLevelChanged), "victory suppresses the level-up")
}

func TestScoringMultiplier(t *testing.T) {
	f := newScoringFixture(t)

	f.scoring.SetMultiplier(2.0)
	f.scoring.AddScore(100, "test")
	require.Equal(t, int64(200), f.scoring.Score())

	f.scoring.SetMultiplier(-1)
	require.Zero(t, f.scoring.Multiplier())
	f.scoring.AddScore(100, "test")
	require.Equal(t, int64(200), f.scoring.Score(), "zero multiplier adds nothing")
}

func TestScoringNeverDecreases(t *testing.T) {
	f := newScoringFixture(t)

	f.scoring.AddScore(500, "test")
	f.scoring.AddScore(-300, "test")
	require.Equal(t, int64(500), f.scoring.Score(), "negative deltas clamp to zero")
}

func TestScoringResetOnGameReset(t *testing.T) {
	f := newScoringFixture(t)

	f.scoring.AddScore(2500, "test")
	require.Greater(t, f.scoring.Level(), 1)

	f.bus.Publish(event.Event{Type: event.EventGameReset})
	require.NoError(t, f.bus.Flush())

	require.Zero(t, f.scoring.Score())
	require.Equal(t, 1, f.scoring.Level())
}

func TestScoreThresholdTable(t *testing.T) {
	// Quadratic curve: each level's threshold gap widens
	require.Equal(t, int64(1000), parameter.ScoreThresholdForLevel(1))
	require.Equal(t, int64(3000), parameter.ScoreThresholdForLevel(2))

	prev := int64(0)
	for level := 1; level < parameter.ScoreCutoverLevel; level++ {
		th := parameter.ScoreThresholdForLevel(level)
		require.Greater(t, th, prev)
		prev = th
	}
}
