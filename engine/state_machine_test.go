package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/nova-strike/input"
)

// recordState appends lifecycle calls to a shared trace slice
type recordState struct {
	id    StateID
	trace *[]string
}

func (r *recordState) ID() StateID { return r.id }

func (r *recordState) OnEnter() {
	*r.trace = append(*r.trace, "enter:"+r.id.String())
}

func (r *recordState) OnExit() {
	*r.trace = append(*r.trace, "exit:"+r.id.String())
}

func (r *recordState) Update(dt time.Duration) {
	*r.trace = append(*r.trace, "update:"+r.id.String())
}

func (r *recordState) HandleInput(ev input.Event) {
	*r.trace = append(*r.trace, "input:"+r.id.String())
}

func newTestMachine(trace *[]string, ids ...StateID) *StateMachine {
	m := NewStateMachine()
	for _, id := range ids {
		m.AddState(&recordState{id: id, trace: trace})
	}
	return m
}

func TestStateMachineStartFiresOnEnter(t *testing.T) {
	var trace []string
	m := newTestMachine(&trace, StateMenu, StatePlaying)

	require.NoError(t, m.Start(StateMenu))
	require.Equal(t, StateMenu, m.Current())
	require.Equal(t, []string{"enter:menu"}, trace)
}

func TestStateMachineStartUnknownState(t *testing.T) {
	var trace []string
	m := newTestMachine(&trace, StateMenu)

	require.Error(t, m.Start(StatePlaying))
}

func TestStateMachineTransitionHookOrder(t *testing.T) {
	var trace []string
	m := newTestMachine(&trace, StateMenu, StatePlaying)
	m.Allow(StateMenu, StatePlaying)

	m.OnTransition(func(from, to StateID) {
		trace = append(trace, "listener:"+from.String()+"->"+to.String())
	})

	require.NoError(t, m.Start(StateMenu))
	require.NoError(t, m.TransitionTo(StatePlaying))

	require.Equal(t, []string{
		"enter:menu",
		"exit:menu",
		"enter:playing",
		"listener:menu->playing",
	}, trace)
	require.Equal(t, StatePlaying, m.Current())
}

func TestStateMachineRejectsNonAdjacent(t *testing.T) {
	var trace []string
	m := newTestMachine(&trace, StateMenu, StatePlaying, StateVictory)
	m.Allow(StateMenu, StatePlaying)

	require.NoError(t, m.Start(StateMenu))
	trace = trace[:0]

	err := m.TransitionTo(StateVictory)
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.Equal(t, StateMenu, m.Current(), "state unchanged on rejection")
	require.Empty(t, trace, "no hooks fire on rejection")
}

func TestStateMachineRejectsUnknownTarget(t *testing.T) {
	var trace []string
	m := newTestMachine(&trace, StateMenu)
	m.Allow(StateMenu, StatePlaying)

	require.NoError(t, m.Start(StateMenu))

	err := m.TransitionTo(StatePlaying)
	require.ErrorIs(t, err, ErrInvalidTransition)
	require.Equal(t, StateMenu, m.Current())
}

func TestStateMachineSelfTransitionNeedsEdge(t *testing.T) {
	var trace []string
	m := newTestMachine(&trace, StatePlaying)

	require.NoError(t, m.Start(StatePlaying))
	require.ErrorIs(t, m.TransitionTo(StatePlaying), ErrInvalidTransition)
}

func TestStateMachineListenersRunInRegistrationOrder(t *testing.T) {
	var trace []string
	m := newTestMachine(&trace, StateMenu, StatePlaying)
	m.Allow(StateMenu, StatePlaying)

	m.OnTransition(func(from, to StateID) { trace = append(trace, "first") })
	m.OnTransition(func(from, to StateID) { trace = append(trace, "second") })

	require.NoError(t, m.Start(StateMenu))
	trace = trace[:0]
	require.NoError(t, m.TransitionTo(StatePlaying))

	require.Equal(t, []string{"exit:menu", "enter:playing", "first", "second"}, trace)
}

func TestStateMachineDelegatesToActiveState(t *testing.T) {
	var trace []string
	m := newTestMachine(&trace, StateMenu, StatePlaying)
	m.Allow(StateMenu, StatePlaying)

	require.NoError(t, m.Start(StateMenu))
	trace = trace[:0]

	m.Update(16 * time.Millisecond)
	m.HandleInput(input.Event{Kind: input.KindConfirm})
	require.Equal(t, []string{"update:menu", "input:menu"}, trace)

	require.NoError(t, m.TransitionTo(StatePlaying))
	trace = trace[:0]

	m.Update(16 * time.Millisecond)
	require.Equal(t, []string{"update:playing"}, trace)
}

func TestStateMachineNotStarted(t *testing.T) {
	var trace []string
	m := newTestMachine(&trace, StateMenu, StatePlaying)
	m.Allow(StateMenu, StatePlaying)

	require.Error(t, m.TransitionTo(StatePlaying))
	m.Update(time.Millisecond)
	m.HandleInput(input.Event{})
	require.Empty(t, trace)
}
