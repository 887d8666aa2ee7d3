package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/nova-strike/parameter"
)

// ToggleResult reports the outcome of a pause toggle attempt
type ToggleResult uint8

const (
	// ToggleAccepted means the pause state flipped
	ToggleAccepted ToggleResult = iota
	// ToggleRejectedCooldown means the toggle landed inside the cooldown
	// window and state is unchanged
	ToggleRejectedCooldown
)

// PauseRange is one completed pause interval in wall time
type PauseRange struct {
	Start time.Time
	End   time.Time
}

// Clock is the pause-aware time source every system reads game time
// through. Wall time keeps running while paused; game time does not.
//
// Invariant: GameTime() == now − wallStart − totalPaused, with the
// in-progress pause counted while paused. Only TogglePause mutates.
type Clock struct {
	mu sync.RWMutex

	wallStart      time.Time
	isPaused       bool
	pauseStartedAt time.Time
	totalPaused    time.Duration
	lastToggleAt   time.Time
	cooldown       time.Duration

	// timeFn is the wall time source, swappable in tests
	timeFn func() time.Time
}

// NewClock creates a running clock. Cooldown zero selects the default
// toggle cooldown; negative disables it.
func NewClock(cooldown time.Duration) *Clock {
	if cooldown == 0 {
		cooldown = parameter.PauseToggleCooldown
	}
	c := &Clock{
		cooldown: cooldown,
		timeFn:   time.Now,
	}
	c.wallStart = c.timeFn()
	return c
}

// NewClockAt creates a clock reading wall time from timeFn. Tests drive
// it with literal timestamps.
func NewClockAt(cooldown time.Duration, timeFn func() time.Time) *Clock {
	if cooldown == 0 {
		cooldown = parameter.PauseToggleCooldown
	}
	return &Clock{
		cooldown:  cooldown,
		timeFn:    timeFn,
		wallStart: timeFn(),
	}
}

// Now returns wall time, unaffected by pause
func (c *Clock) Now() time.Time {
	return c.timeFn()
}

// GameTime returns elapsed time excluding all paused duration, including
// the in-progress pause when paused. Never negative.
func (c *Clock) GameTime() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := c.timeFn()
	paused := c.totalPaused
	if c.isPaused {
		paused += now.Sub(c.pauseStartedAt)
	}
	gt := now.Sub(c.wallStart) - paused
	if gt < 0 {
		return 0
	}
	return gt
}

// IsPaused reports the pause state
func (c *Clock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isPaused
}

// TogglePause flips the pause state. A second toggle inside the cooldown
// window is rejected without mutating anything; rejection is normal
// control flow, not an error.
func (c *Clock) TogglePause() ToggleResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.timeFn()
	if c.cooldown > 0 && !c.lastToggleAt.IsZero() && now.Sub(c.lastToggleAt) < c.cooldown {
		return ToggleRejectedCooldown
	}

	if c.isPaused {
		c.totalPaused += now.Sub(c.pauseStartedAt)
		c.pauseStartedAt = time.Time{}
		c.isPaused = false
	} else {
		c.pauseStartedAt = now
		c.isPaused = true
	}
	c.lastToggleAt = now
	return ToggleAccepted
}

// TotalPaused returns cumulative paused duration including the
// in-progress pause
func (c *Clock) TotalPaused() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.totalPaused
	if c.isPaused {
		total += c.timeFn().Sub(c.pauseStartedAt)
	}
	return total
}

// CalculateGameTime computes game time from literal timestamps: elapsed
// wall time minus every pause range clipped to [start, now]. Pure
// function; negative results clamp to zero.
func CalculateGameTime(start, now time.Time, pauses []PauseRange) time.Duration {
	if now.Before(start) {
		return 0
	}

	paused := time.Duration(0)
	for _, p := range pauses {
		from := p.Start
		if from.Before(start) {
			from = start
		}
		to := p.End
		if to.IsZero() || to.After(now) {
			to = now
		}
		if to.After(from) {
			paused += to.Sub(from)
		}
	}

	gt := now.Sub(start) - paused
	if gt < 0 {
		return 0
	}
	return gt
}
