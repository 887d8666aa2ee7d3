package engine

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/entity"
	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/input"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/status"
	"github.com/lixenwraith/nova-strike/system"
)

// Game composes the clock, bus, state machine, world and the four
// simulation systems, and owns the per-tick interaction protocol:
// physics → collision → scoring/spawning reactions → bus flush →
// transition check. Everything here runs on the scheduler goroutine.
type Game struct {
	cfg       config.Config
	log       *zap.Logger
	sessionID uuid.UUID

	clock   *Clock
	bus     *event.Bus
	machine *StateMachine
	world   *entity.World
	factory *entity.Factory

	physics   *system.Physics
	collision *system.Collision
	scoring   *system.Scoring
	spawning  *system.Spawning

	metrics *status.Registry
	rng     *rand.Rand

	frame        int64
	lastGameTime time.Duration

	// weapon cooldown deadlines, game time
	fireReadyAt    time.Duration
	missileReadyAt time.Duration

	languages []string
	langIndex int

	quit atomic.Bool

	statFrames   *atomic.Int64
	statEntities *atomic.Int64
}

// NewGame wires a session. The machine starts in Menu; StartSession
// moves it to Playing.
func NewGame(cfg config.Config, log *zap.Logger, bounds entity.Bounds, metrics *status.Registry) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sessionID := uuid.New()
	log = log.With(zap.String("session", sessionID.String()))

	world := entity.NewWorld(bounds)
	bus := event.NewBus()

	g := &Game{
		cfg:          cfg,
		log:          log,
		sessionID:    sessionID,
		clock:        NewClock(cfg.PauseCooldown()),
		bus:          bus,
		world:        world,
		factory:      entity.NewFactory(world, cfg.DifficultyMultiplier, cfg.InitialLives, rng),
		metrics:      metrics,
		rng:          rng,
		languages:    []string{"en", "fi", "de"},
		statFrames:   metrics.Ints.Get("engine.frames"),
		statEntities: metrics.Ints.Get("engine.entities"),
	}

	g.physics = system.NewPhysics(log)
	g.collision = system.NewCollision(bus, log)
	g.scoring = system.NewScoring(bus, log, metrics)
	g.spawning = system.NewSpawning(bus, log, g.factory, rng, metrics)

	g.machine = newGameStateMachine(g)

	// State routing reacts to domain events after the systems have;
	// global listeners run last in dispatch order
	bus.SubscribeGlobal(g.routeEvent)

	if err := g.machine.Start(StateMenu); err != nil {
		// Machine construction is static; a failed start is a wiring bug
		panic(err)
	}

	log.Info("session created",
		zap.Float64("field_width", bounds.Width),
		zap.Float64("field_height", bounds.Height),
		zap.Int64("seed", seed))
	return g
}

// newGameStateMachine builds the validated transition graph from §4.3
func newGameStateMachine(g *Game) *StateMachine {
	m := NewStateMachine()

	m.AddState(&menuState{game: g})
	m.AddState(&playingState{game: g})
	m.AddState(&pausedState{game: g})
	m.AddState(&levelTransitionState{game: g})
	m.AddState(&gameOverState{game: g})
	m.AddState(&victoryState{game: g})

	m.Allow(StateMenu, StatePlaying)
	m.Allow(StatePlaying, StatePaused)
	m.Allow(StatePlaying, StateLevelTransition)
	m.Allow(StatePlaying, StateGameOver)
	m.Allow(StatePlaying, StateVictory)
	m.Allow(StatePaused, StatePlaying)
	m.Allow(StateLevelTransition, StatePlaying)
	m.Allow(StateGameOver, StatePlaying)
	m.Allow(StateGameOver, StateMenu)
	m.Allow(StateVictory, StatePlaying)
	m.Allow(StateVictory, StateMenu)

	m.OnTransition(func(from, to StateID) {
		g.log.Info("state transition",
			zap.Stringer("from", from),
			zap.Stringer("to", to))
	})

	return m
}

// Tick advances the simulation by one fixed step. Runs to completion;
// pause is a state-machine gate, not an interruption.
func (g *Game) Tick() {
	g.frame++
	g.statFrames.Store(g.frame)

	gt := g.clock.GameTime()
	dt := gt - g.lastGameTime
	if dt < 0 {
		dt = 0
	}
	g.lastGameTime = gt

	g.machine.Update(dt)
	g.statEntities.Store(int64(g.world.EntityCount()))
}

// HandleInput feeds one logical input event to the active state
func (g *Game) HandleInput(ev input.Event) {
	if ev.Kind == input.KindChangeLanguage {
		g.langIndex = (g.langIndex + 1) % len(g.languages)
		return
	}
	g.machine.HandleInput(ev)
}

// routeEvent maps domain events to state transitions. Runs inside the
// flush, after scoring and spawning have reacted. Never consumes.
func (g *Game) routeEvent(ev event.Event) bool {
	switch ev.Type {
	case event.EventPlayerDied:
		g.transition(StateGameOver)
	case event.EventVictory:
		g.transition(StateVictory)
	case event.EventLevelChanged:
		// A level change outside Playing (boss kill resolved in the same
		// flush as a threshold crossing) keeps the current transition
		if g.machine.Current() == StatePlaying {
			g.transition(StateLevelTransition)
		}
	}
	return false
}

func (g *Game) transition(to StateID) {
	if err := g.machine.TransitionTo(to); err != nil {
		g.log.Warn("transition rejected",
			zap.Stringer("target", to),
			zap.Error(err))
	}
}

// StartSession resets the world for a fresh run and enters Playing.
// Valid from Menu, GameOver and Victory.
func (g *Game) StartSession() {
	g.resetSession()
	g.transition(StatePlaying)
}

func (g *Game) resetSession() {
	g.world.Clear()
	g.factory.SpawnPlayer()
	g.collision.Reset()
	g.fireReadyAt = 0
	g.missileReadyAt = 0

	// Scoring and spawning reset through the bus like any other reaction
	g.bus.Publish(event.Event{
		Type:      event.EventGameReset,
		Source:    "game",
		Frame:     g.frame,
		Timestamp: time.Now(),
	})
	if err := g.bus.Flush(); err != nil {
		g.log.Error("event flush aborted", zap.Error(err))
	}
}

// TogglePause asks the clock first; the cooldown can reject the toggle,
// in which case the machine stays put
func (g *Game) TogglePause() {
	if g.clock.TogglePause() != ToggleAccepted {
		return
	}
	if g.machine.Current() == StatePaused {
		g.transition(StatePlaying)
	} else {
		g.transition(StatePaused)
	}
}

// RequestQuit asks the application to exit after the current tick
func (g *Game) RequestQuit() {
	g.quit.Store(true)
}

// QuitRequested reports a pending exit request
func (g *Game) QuitRequested() bool {
	return g.quit.Load()
}

// fire spawns a player bullet, rate-limited in game time
func (g *Game) fire() {
	player := g.world.Player()
	if player == nil || g.lastGameTime < g.fireReadyAt {
		return
	}
	g.factory.SpawnPlayerBullet(player.X, player.Y-player.H/2)
	g.fireReadyAt = g.lastGameTime + parameter.PlayerFireCooldown
}

// launchMissile fires a tracking missile at the nearest hostile
func (g *Game) launchMissile() {
	player := g.world.Player()
	if player == nil || g.lastGameTime < g.missileReadyAt {
		return
	}
	g.factory.SpawnMissile(player.X, player.Y-player.H/2, g.nearestHostile(player))
	g.missileReadyAt = g.lastGameTime + parameter.MissileLaunchCooldown
}

// nearestHostile returns the closest enemy or boss id, zero when the
// field is clear
func (g *Game) nearestHostile(from *entity.Entity) entity.ID {
	var best entity.ID
	bestDist := -1.0

	consider := func(e *entity.Entity) {
		dx := e.X - from.X
		dy := e.Y - from.Y
		d := dx*dx + dy*dy
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = e.ID
		}
	}
	g.world.Enemies.Each(consider)
	g.world.Bosses.Each(consider)
	return best
}

// steer sets player velocity toward the move direction; physics damping
// decays it back to rest
func (g *Game) steer(dir input.Direction) {
	player := g.world.Player()
	if player == nil {
		return
	}
	dx, dy := dir.Vector()
	player.VX = dx * parameter.PlayerSpeed
	player.VY = dy * parameter.PlayerSpeed
}

// Clock exposes the session clock
func (g *Game) Clock() *Clock { return g.clock }

// Bus exposes the event bus for collaborator subscriptions (audio)
func (g *Game) Bus() *event.Bus { return g.bus }

// State returns the active state id
func (g *Game) State() StateID { return g.machine.Current() }

// World exposes the entity world; external readers take snapshots
// instead of holding this between ticks
func (g *Game) World() *entity.World { return g.world }

// Language returns the active UI language tag
func (g *Game) Language() string { return g.languages[g.langIndex] }
