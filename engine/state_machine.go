package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/nova-strike/input"
)

// ErrInvalidTransition is returned when the target state is not in the
// current state's adjacency set. The machine is unchanged on rejection.
var ErrInvalidTransition = errors.New("invalid state transition")

// StateID names a game state
type StateID uint8

const (
	StateMenu StateID = iota
	StatePlaying
	StatePaused
	StateLevelTransition
	StateGameOver
	StateVictory
)

var stateNames = [...]string{
	StateMenu:            "menu",
	StatePlaying:         "playing",
	StatePaused:          "paused",
	StateLevelTransition: "level_transition",
	StateGameOver:        "game_over",
	StateVictory:         "victory",
}

func (s StateID) String() string {
	if int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// State is one node of the machine. Update and HandleInput run only
// while the state is active; OnEnter/OnExit bracket activation.
type State interface {
	ID() StateID
	OnEnter()
	OnExit()
	Update(dt time.Duration)
	HandleInput(ev input.Event)
}

// TransitionListener observes completed transitions. Listeners run
// synchronously after OnEnter; they may publish events but must not
// transition re-entrantly.
type TransitionListener func(from, to StateID)

// StateMachine holds named states and a validated transition graph.
// Exactly one state is active at all times once Start has run.
type StateMachine struct {
	states    map[StateID]State
	allowed   map[StateID]map[StateID]struct{}
	current   StateID
	started   bool
	listeners []TransitionListener
}

// NewStateMachine creates an empty machine; callers add states, wire the
// adjacency table and Start it
func NewStateMachine() *StateMachine {
	return &StateMachine{
		states:  make(map[StateID]State),
		allowed: make(map[StateID]map[StateID]struct{}),
	}
}

// AddState registers a state node
func (m *StateMachine) AddState(s State) {
	m.states[s.ID()] = s
}

// Allow adds from→to to the adjacency table
func (m *StateMachine) Allow(from, to StateID) {
	set, ok := m.allowed[from]
	if !ok {
		set = make(map[StateID]struct{})
		m.allowed[from] = set
	}
	set[to] = struct{}{}
}

// OnTransition registers a global transition listener
func (m *StateMachine) OnTransition(l TransitionListener) {
	m.listeners = append(m.listeners, l)
}

// Start activates the initial state and fires its OnEnter
func (m *StateMachine) Start(initial StateID) error {
	s, ok := m.states[initial]
	if !ok {
		return fmt.Errorf("unknown initial state %s", initial)
	}
	m.current = initial
	m.started = true
	s.OnEnter()
	return nil
}

// Current returns the active state id
func (m *StateMachine) Current() StateID {
	return m.current
}

// CanTransition reports whether target is reachable from the active state
func (m *StateMachine) CanTransition(target StateID) bool {
	set, ok := m.allowed[m.current]
	if !ok {
		return false
	}
	_, ok = set[target]
	return ok
}

// TransitionTo moves to target: current OnExit, swap, target OnEnter,
// then transition listeners in registration order. Fails with
// ErrInvalidTransition when target is not adjacent; the active state is
// unchanged on failure.
func (m *StateMachine) TransitionTo(target StateID) error {
	if !m.started {
		return fmt.Errorf("state machine not started")
	}
	next, ok := m.states[target]
	if !ok {
		return fmt.Errorf("%w: unknown state %s", ErrInvalidTransition, target)
	}
	if !m.CanTransition(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, target)
	}

	from := m.current
	m.states[from].OnExit()
	m.current = target
	next.OnEnter()

	for _, l := range m.listeners {
		l(from, target)
	}
	return nil
}

// Update delegates to the active state
func (m *StateMachine) Update(dt time.Duration) {
	if !m.started {
		return
	}
	m.states[m.current].Update(dt)
}

// HandleInput delegates to the active state
func (m *StateMachine) HandleInput(ev input.Event) {
	if !m.started {
		return
	}
	m.states[m.current].HandleInput(ev)
}
