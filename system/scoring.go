package system

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/status"
)

// Scoring consumes destruction and pickup events and tracks level
// progression. Score and level are monotonically non-decreasing within a
// session; Reset is the only way down.
//
// Leveling policy: below parameter.ScoreCutoverLevel a per-level score
// threshold promotes; from the cutover on only boss kills do. Both knobs
// are part of the difficulty curve in parameter/score.go.
type Scoring struct {
	bus *event.Bus
	log *zap.Logger

	score      int64
	level      int
	multiplier float64

	thresholdFor func(level int) int64
	cutover      int
	victoryLevel int

	// lastFrame stamps events published from inside a flush
	lastFrame int64

	statScore *atomic.Int64
	statLevel *atomic.Int64
	statMult  *status.Float
}

// NewScoring creates the scoring system and subscribes it on the bus.
// Listeners deliberately do not consume: audio and renderer observers
// registered after it still see the same events.
func NewScoring(bus *event.Bus, log *zap.Logger, reg *status.Registry) *Scoring {
	s := &Scoring{
		bus:          bus,
		log:          log,
		multiplier:   parameter.DefaultScoreMultiplier,
		thresholdFor: parameter.ScoreThresholdForLevel,
		cutover:      parameter.ScoreCutoverLevel,
		victoryLevel: parameter.VictoryLevel,
		statScore:    reg.Ints.Get("score.total"),
		statLevel:    reg.Ints.Get("score.level"),
		statMult:     reg.Floats.Get("score.multiplier"),
	}
	s.resetState()
	bus.Register(s)
	return s
}

func (s *Scoring) Name() string  { return "scoring" }
func (s *Scoring) Priority() int { return parameter.PriorityScoring }

// EventTypes declares the bus subscriptions
func (s *Scoring) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyDestroyed,
		event.EventBossDestroyed,
		event.EventItemCollected,
		event.EventGameReset,
	}
}

// HandleEvent reacts to destruction and pickup events. Never consumes.
func (s *Scoring) HandleEvent(ev event.Event) bool {
	s.lastFrame = ev.Frame

	switch ev.Type {
	case event.EventEnemyDestroyed:
		if p, ok := ev.Payload.(*event.EnemyDestroyedPayload); ok {
			s.AddScore(p.Points, "enemy")
		}

	case event.EventBossDestroyed:
		if p, ok := ev.Payload.(*event.BossDestroyedPayload); ok {
			// The boss-driven promotion gates on the level at the kill:
			// AddScore may itself promote via a threshold crossing, and a
			// kill must never level twice
			levelAtKill := s.level
			s.AddScore(p.Points, "boss")
			if p.Level >= s.victoryLevel {
				s.publish(event.EventVictory, nil)
			} else if levelAtKill >= s.cutover {
				s.LevelUp()
			}
		}

	case event.EventItemCollected:
		if p, ok := ev.Payload.(*event.ItemCollectedPayload); ok {
			s.AddScore(p.Points, "item")
		}

	case event.EventGameReset:
		s.Reset()
	}
	return false
}

// AddScore applies the multiplier and appends to the score. Negative
// deltas clamp to zero; the score never decreases. Crossing a per-level
// threshold below the cutover emits ScoreThresholdCrossed and levels up,
// once per threshold crossed.
func (s *Scoring) AddScore(points int64, source string) {
	delta := int64(float64(points) * s.multiplier)
	if delta < 0 {
		delta = 0
	}

	prev := s.score
	s.score += delta
	s.statScore.Store(s.score)

	for s.level < s.cutover {
		threshold := s.thresholdFor(s.level)
		if s.score < threshold || prev >= threshold {
			break
		}
		s.publish(event.EventScoreThresholdCrossed, &event.ScoreThresholdCrossedPayload{
			Score:     s.score,
			Threshold: threshold,
		})
		s.LevelUp()
	}

	if delta > 0 {
		s.log.Debug("score added",
			zap.Int64("delta", delta),
			zap.Int64("total", s.score),
			zap.String("source", source))
	}
}

// LevelUp advances the level and announces it
func (s *Scoring) LevelUp() {
	s.level++
	s.statLevel.Store(int64(s.level))
	s.publish(event.EventLevelChanged, &event.LevelChangedPayload{Level: s.level})
	s.log.Info("level up", zap.Int("level", s.level))
}

// Reset returns the session to its initial score state
func (s *Scoring) Reset() {
	s.resetState()
}

func (s *Scoring) resetState() {
	s.score = 0
	s.level = 1
	s.statScore.Store(0)
	s.statLevel.Store(1)
	s.statMult.Set(s.multiplier)
}

// Score returns the session score
func (s *Scoring) Score() int64 { return s.score }

// Level returns the current level
func (s *Scoring) Level() int { return s.level }

// Multiplier returns the active score multiplier
func (s *Scoring) Multiplier() float64 { return s.multiplier }

// SetMultiplier replaces the multiplier; negative values clamp to zero
func (s *Scoring) SetMultiplier(m float64) {
	if m < 0 {
		m = 0
	}
	s.multiplier = m
	s.statMult.Set(m)
}

func (s *Scoring) publish(t event.EventType, payload any) {
	s.bus.Publish(event.Event{
		Type:      t,
		Source:    s.Name(),
		Frame:     s.lastFrame,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
