// Package audio plays short synthesized cues for domain events. It is a
// bus consumer only; the simulation core never calls audio directly.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/nova-strike/event"
)

const cueSampleRate = beep.SampleRate(44100)

// Cues is the event-driven sound service
type Cues struct {
	enabled bool
	log     *zap.Logger
}

// NewCues initializes the speaker. Failure is non-fatal: the game runs
// silent and the error is logged.
func NewCues(enabled bool, log *zap.Logger) *Cues {
	c := &Cues{log: log}
	if !enabled {
		return c
	}
	if err := speaker.Init(cueSampleRate, cueSampleRate.N(time.Second/10)); err != nil {
		log.Warn("audio disabled", zap.Error(err))
		return c
	}
	c.enabled = true
	return c
}

// Attach subscribes the cue map on the bus. Listeners never consume, so
// audio coexists with every other observer.
func (c *Cues) Attach(bus *event.Bus) {
	cue := func(freq float64, dur time.Duration) event.Listener {
		return func(event.Event) bool {
			c.play(freq, dur)
			return false
		}
	}

	bus.Subscribe(event.EventEnemyDestroyed, cue(880, 40*time.Millisecond))
	bus.Subscribe(event.EventBossDamaged, cue(440, 30*time.Millisecond))
	bus.Subscribe(event.EventBossDestroyed, cue(660, 250*time.Millisecond))
	bus.Subscribe(event.EventPlayerDamaged, cue(220, 80*time.Millisecond))
	bus.Subscribe(event.EventPlayerDied, cue(110, 400*time.Millisecond))
	bus.Subscribe(event.EventItemCollected, cue(1320, 50*time.Millisecond))
	bus.Subscribe(event.EventLevelChanged, cue(990, 120*time.Millisecond))
	bus.Subscribe(event.EventVictory, cue(1100, 500*time.Millisecond))
}

func (c *Cues) play(freq float64, dur time.Duration) {
	if !c.enabled {
		return
	}
	tone, err := generators.SineTone(cueSampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(cueSampleRate.N(dur), tone))
}

// Close shuts the speaker down
func (c *Cues) Close() {
	if c.enabled {
		speaker.Close()
	}
}
