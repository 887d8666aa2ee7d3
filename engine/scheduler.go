package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/input"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/status"
)

// Scheduler drives the game at a fixed tick on its own goroutine. Input
// events are drained at tick start so the whole simulation stays
// single-threaded; a snapshot goes out after each tick for the renderer.
//
// Deadlines are drift-corrected: each tick schedules relative to the
// previous deadline, re-anchoring when the loop falls too far behind
// instead of burning catch-up ticks.
type Scheduler struct {
	game     *Game
	interval time.Duration

	inputs    <-chan input.Event
	snapshots chan Snapshot

	log *zap.Logger

	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	running  atomic.Bool

	statTicks *atomic.Int64
}

// NewScheduler creates a scheduler for the game. The returned snapshot
// channel carries one entry per completed tick; slow consumers miss
// frames rather than stalling the simulation.
func NewScheduler(game *Game, interval time.Duration, inputs <-chan input.Event, log *zap.Logger, reg *status.Registry) *Scheduler {
	if interval <= 0 {
		interval = parameter.TickInterval
	}
	return &Scheduler{
		game:      game,
		interval:  interval,
		inputs:    inputs,
		snapshots: make(chan Snapshot, 1),
		log:       log,
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		statTicks: reg.Ints.Get("engine.ticks"),
	}
}

// Snapshots returns the per-tick snapshot stream
func (s *Scheduler) Snapshots() <-chan Snapshot {
	return s.snapshots
}

// Done closes when the loop has exited, either via Stop or a quit
// request from the game
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Start launches the tick loop
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		core.Go(s.loop)
	}
}

// Stop halts the loop and waits for it to exit
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
	<-s.done
}

func (s *Scheduler) loop() {
	defer close(s.done)

	deadline := time.Now().Add(s.interval)
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return

		case <-timer.C:
			s.drainInputs()
			s.game.Tick()
			s.statTicks.Add(1)

			select {
			case s.snapshots <- s.game.Snapshot():
			default:
			}

			if s.game.QuitRequested() {
				s.log.Info("quit requested, scheduler exiting")
				return
			}

			deadline = deadline.Add(s.interval)
			now := time.Now()
			if now.Sub(deadline) > parameter.MaxTickDebt {
				deadline = now.Add(s.interval)
			}
			sleep := deadline.Sub(now)
			if sleep < 0 {
				sleep = 0
			}
			timer.Reset(sleep)
		}
	}
}

// drainInputs forwards every pending logical input event to the game
func (s *Scheduler) drainInputs() {
	for {
		select {
		case ev := <-s.inputs:
			s.game.HandleInput(ev)
		default:
			return
		}
	}
}
