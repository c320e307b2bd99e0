package legs

import (
	"testing"

	"github.com/0x49b/quadruped"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStates = []quadruped.BehaviorState{
	quadruped.Deactivated,
	quadruped.Rest,
	quadruped.Trot,
	quadruped.Hop,
	quadruped.FinishHop,
}

func TestTransitionTable(t *testing.T) {
	type eg struct {
		from quadruped.BehaviorState
		on   Event
		to   quadruped.BehaviorState
	}

	examples := []eg{
		{quadruped.Deactivated, EventActivate, quadruped.Rest},
		{quadruped.Rest, EventActivate, quadruped.Deactivated},

		{quadruped.Rest, EventTrot, quadruped.Trot},
		{quadruped.Trot, EventTrot, quadruped.Rest},
		{quadruped.Hop, EventTrot, quadruped.Trot},
		{quadruped.FinishHop, EventTrot, quadruped.Trot},

		{quadruped.Rest, EventHop, quadruped.Hop},
		{quadruped.Hop, EventHop, quadruped.FinishHop},
		{quadruped.FinishHop, EventHop, quadruped.Rest},
		{quadruped.Trot, EventHop, quadruped.Hop},
	}

	for _, x := range examples {
		act, err := Transition(x.from, x.on)
		assert.NoError(t, err, "%v on %v", x.from, x.on)
		assert.Equal(t, x.to, act, "%v on %v", x.from, x.on)
	}
}

func TestTransitionNoEvent(t *testing.T) {
	for _, s := range allStates {
		act, err := Transition(s, EventNone)
		assert.NoError(t, err)
		assert.Equal(t, s, act)

		next, e, err := NextState(s, quadruped.Command{})
		assert.NoError(t, err)
		assert.Equal(t, EventNone, e)
		assert.Equal(t, s, next)
	}
}

func TestTransitionMissing(t *testing.T) {
	type eg struct {
		from quadruped.BehaviorState
		on   Event
	}

	examples := []eg{
		{quadruped.Trot, EventActivate},
		{quadruped.Hop, EventActivate},
		{quadruped.FinishHop, EventActivate},
		{quadruped.Deactivated, EventTrot},
		{quadruped.Deactivated, EventHop},
	}

	for _, x := range examples {
		act, err := Transition(x.from, x.on)
		require.Error(t, err)
		assert.Equal(t, x.from, act, "state must not change")
		assert.Equal(t, ErrNoTransition, errors.Cause(err))
		assert.ErrorIs(t, err, ErrNoTransition)

		var te *TransitionError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, x.from, te.State)
		assert.Equal(t, x.on, te.Event)
	}
}

func TestEventPriority(t *testing.T) {
	type eg struct {
		cmd quadruped.Command
		exp Event
	}

	examples := []eg{
		{quadruped.Command{}, EventNone},
		{quadruped.Command{HopEvent: true}, EventHop},
		{quadruped.Command{TrotEvent: true, HopEvent: true}, EventTrot},
		{quadruped.Command{ActivateEvent: true, TrotEvent: true}, EventActivate},
		{quadruped.Command{ActivateEvent: true, TrotEvent: true, HopEvent: true}, EventActivate},
	}

	for i, x := range examples {
		assert.Equal(t, x.exp, EventFor(x.cmd), "example %d", i+1)
	}

	// Rest has entries for all three, so the winner decides.
	next, _, err := NextState(quadruped.Rest, quadruped.Command{TrotEvent: true, HopEvent: true})
	assert.NoError(t, err)
	assert.Equal(t, quadruped.Trot, next)

	// The winner is honored even if a loser had a valid transition.
	next, _, err = NextState(quadruped.Trot, quadruped.Command{ActivateEvent: true, HopEvent: true})
	assert.Error(t, err)
	assert.Equal(t, quadruped.Trot, next)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "activate", EventActivate.String())
	assert.Equal(t, "Event(9)", Event(9).String())
	err := &TransitionError{State: quadruped.Hop, Event: EventActivate}
	assert.Equal(t, "no activate transition from HOP", err.Error())
}
