package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/nova-strike/input"
	"github.com/lixenwraith/nova-strike/parameter"
)

// menuState waits for the player to start a session or quit
type menuState struct {
	game *Game
}

func (s *menuState) ID() StateID { return StateMenu }
func (s *menuState) OnEnter()    {}
func (s *menuState) OnExit()     {}

func (s *menuState) Update(time.Duration) {}

func (s *menuState) HandleInput(ev input.Event) {
	switch ev.Kind {
	case input.KindConfirm, input.KindFire:
		s.game.StartSession()
	case input.KindQuit:
		s.game.RequestQuit()
	}
}

// playingState is the only state that advances the simulation systems
type playingState struct {
	game *Game
}

func (s *playingState) ID() StateID { return StatePlaying }
func (s *playingState) OnEnter()    {}
func (s *playingState) OnExit()     {}

// Update runs one simulation step in the contract order. Physics moves
// first so collision sees post-move positions; the flush comes last so
// scoring, spawning seeds and state routing all react within this tick.
func (s *playingState) Update(dt time.Duration) {
	g := s.game

	g.physics.Integrate(g.world, dt)
	g.physics.ApplyBoundaryPolicy(g.world)
	g.collision.Resolve(g.world, g.lastGameTime, g.frame)
	g.spawning.Update(g.lastGameTime, g.scoring.Level(), g.world)

	if err := g.bus.Flush(); err != nil {
		// Overflow is a wiring bug; drop the tick's remaining work and
		// keep the process alive
		g.log.Error("event flush aborted", zap.Error(err))
	}
}

func (s *playingState) HandleInput(ev input.Event) {
	g := s.game
	switch ev.Kind {
	case input.KindMove:
		g.steer(ev.Dir)
	case input.KindFire:
		g.fire()
	case input.KindLaunchMissile:
		g.launchMissile()
	case input.KindPause:
		g.TogglePause()
	case input.KindQuit:
		g.RequestQuit()
	}
}

// pausedState gates the simulation without touching it; game time is
// frozen by the clock, so resuming continues mid-motion
type pausedState struct {
	game *Game
}

func (s *pausedState) ID() StateID { return StatePaused }
func (s *pausedState) OnEnter()    {}
func (s *pausedState) OnExit()     {}

func (s *pausedState) Update(time.Duration) {}

func (s *pausedState) HandleInput(ev input.Event) {
	switch ev.Kind {
	case input.KindPause:
		s.game.TogglePause()
	case input.KindQuit:
		s.game.RequestQuit()
	}
}

// levelTransitionState is the short breather after a level change
type levelTransitionState struct {
	game      *Game
	remaining time.Duration
}

func (s *levelTransitionState) ID() StateID { return StateLevelTransition }

func (s *levelTransitionState) OnEnter() {
	s.remaining = parameter.LevelTransitionDuration
}

func (s *levelTransitionState) OnExit() {}

func (s *levelTransitionState) Update(dt time.Duration) {
	s.remaining -= dt
	if s.remaining <= 0 {
		s.game.transition(StatePlaying)
	}
}

func (s *levelTransitionState) HandleInput(ev input.Event) {
	if ev.Kind == input.KindQuit {
		s.game.RequestQuit()
	}
}

// gameOverState waits for a restart or a return to the menu
type gameOverState struct {
	game *Game
}

func (s *gameOverState) ID() StateID { return StateGameOver }
func (s *gameOverState) OnEnter()    {}
func (s *gameOverState) OnExit()     {}

func (s *gameOverState) Update(time.Duration) {}

func (s *gameOverState) HandleInput(ev input.Event) {
	switch ev.Kind {
	case input.KindConfirm, input.KindFire:
		s.game.StartSession()
	case input.KindQuit:
		s.game.transition(StateMenu)
	}
}

// victoryState mirrors gameOverState after the final boss falls
type victoryState struct {
	game *Game
}

func (s *victoryState) ID() StateID { return StateVictory }
func (s *victoryState) OnEnter()    {}
func (s *victoryState) OnExit()     {}

func (s *victoryState) Update(time.Duration) {}

func (s *victoryState) HandleInput(ev input.Event) {
	switch ev.Kind {
	case input.KindConfirm, input.KindFire:
		s.game.StartSession()
	case input.KindQuit:
		s.game.transition(StateMenu)
	}
}
