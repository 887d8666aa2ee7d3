package parameter

import "time"

// Tick configuration
const (
	// DefaultTickRateHz is the fixed simulation rate
	DefaultTickRateHz = 50

	// TickInterval is the default fixed step duration
	TickInterval = time.Second / DefaultTickRateHz

	// MaxTickDebt is how far behind the deadline the scheduler may fall
	// before it re-anchors instead of running catch-up ticks
	MaxTickDebt = 2 * TickInterval
)

// Clock
const (
	// PauseToggleCooldown rejects a second pause toggle inside this window
	PauseToggleCooldown = 300 * time.Millisecond
)

// Event bus
const (
	// EventQueueCapacity is the initial queue allocation, not a hard limit
	EventQueueCapacity = 256

	// EventFlushLimit bounds events dispatched in a single flush
	// Listeners may publish during dispatch; exceeding the limit means a
	// publish loop and is surfaced as ErrEventLoopOverflow
	EventFlushLimit = 4096
)

// Input
const (
	// InputChannelCapacity buffers logical input events between the
	// terminal poll goroutine and the scheduler
	InputChannelCapacity = 64
)
