package event

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/nova-strike/parameter"
)

// ErrEventLoopOverflow is returned by Flush when listeners keep
// publishing past the iteration guard. It indicates a wiring bug, not a
// runtime condition; the tick loop logs it and abandons the tick.
var ErrEventLoopOverflow = errors.New("event flush exceeded iteration limit")

// Listener receives a dispatched event and reports whether it consumed
// it. A consumed event does not reach further listeners.
type Listener func(Event) bool

// Handler is the system-side registration interface: a system declares
// the types it wants and the bus subscribes it to each.
type Handler interface {
	EventTypes() []EventType
	HandleEvent(Event) bool
}

// Bus is a typed publish/subscribe hub with ordered dispatch.
//
// Dispatch contract:
//   - Flush drains the queue in FIFO publish order
//   - per event: type listeners in registration order, then globals
//   - the first listener returning true stops that event's propagation;
//     the flush always continues with the next queued event
//   - listeners may Publish during Flush; those events join the same
//     flush, bounded by parameter.EventFlushLimit
//
// The bus is single-threaded by design: Publish and Flush run on the
// scheduler goroutine. It holds no game state beyond the queue.
type Bus struct {
	listeners map[EventType][]Listener
	global    []Listener
	queue     []Event
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]Listener),
		queue:     make([]Event, 0, parameter.EventQueueCapacity),
	}
}

// Subscribe registers a listener for one event type
func (b *Bus) Subscribe(t EventType, l Listener) {
	b.listeners[t] = append(b.listeners[t], l)
}

// SubscribeGlobal registers a listener that sees every event type after
// the type-specific listeners have had their turn
func (b *Bus) SubscribeGlobal(l Listener) {
	b.global = append(b.global, l)
}

// Register subscribes a Handler for each of its declared types
func (b *Bus) Register(h Handler) {
	for _, t := range h.EventTypes() {
		b.Subscribe(t, h.HandleEvent)
	}
}

// Publish enqueues an event for the next Flush. Safe to call from
// listeners during Flush; the event is processed within the same flush.
func (b *Bus) Publish(ev Event) {
	b.queue = append(b.queue, ev)
}

// Pending returns the number of queued events
func (b *Bus) Pending() int {
	return len(b.queue)
}

// Flush dispatches every queued event, including events published by
// listeners mid-flush. On overflow the queue is dropped and
// ErrEventLoopOverflow is returned.
func (b *Bus) Flush() error {
	dispatched := 0
	for i := 0; i < len(b.queue); i++ {
		if dispatched >= parameter.EventFlushLimit {
			b.queue = b.queue[:0]
			return fmt.Errorf("%w (limit %d)", ErrEventLoopOverflow, parameter.EventFlushLimit)
		}
		// Index, not range: listeners may append to b.queue
		ev := b.queue[i]
		dispatched++

		b.dispatch(ev)
	}
	b.queue = b.queue[:0]
	return nil
}

func (b *Bus) dispatch(ev Event) {
	for _, l := range b.listeners[ev.Type] {
		if l(ev) {
			return
		}
	}
	for _, l := range b.global {
		if l(ev) {
			return
		}
	}
}
