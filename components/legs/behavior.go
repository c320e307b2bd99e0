package legs

import (
	"fmt"

	"github.com/0x49b/quadruped"
	"github.com/pkg/errors"
)

// Event is a single operator request to change behavior.
type Event int

const (
	EventNone Event = iota
	EventActivate
	EventTrot
	EventHop
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventActivate:
		return "activate"
	case EventTrot:
		return "trot"
	case EventHop:
		return "hop"
	}

	return fmt.Sprintf("Event(%d)", int(e))
}

// ErrNoTransition is the cause of every TransitionError.
var ErrNoTransition = errors.New("no transition")

// TransitionError is returned when an event arrives in a state which has no
// transition for it. The state is left as it was.
type TransitionError struct {
	State quadruped.BehaviorState
	Event Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("no %s transition from %s", e.Event, e.State)
}

// Cause returns ErrNoTransition, for errors.Cause.
func (e *TransitionError) Cause() error {
	return ErrNoTransition
}

func (e *TransitionError) Unwrap() error {
	return ErrNoTransition
}

// EventFor returns the event which the command carries. At most one event is
// honored per tick: activate beats trot, which beats hop.
func EventFor(cmd quadruped.Command) Event {
	switch {
	case cmd.ActivateEvent:
		return EventActivate
	case cmd.TrotEvent:
		return EventTrot
	case cmd.HopEvent:
		return EventHop
	}

	return EventNone
}

type edge struct {
	from quadruped.BehaviorState
	on   Event
}

// Transition returns the state which follows s when e happens. EventNone never
// changes the state. A pair with no transition returns s and a
// *TransitionError.
func Transition(s quadruped.BehaviorState, e Event) (quadruped.BehaviorState, error) {
	switch (edge{s, e}) {

	// activate
	case edge{quadruped.Deactivated, EventActivate}:
		return quadruped.Rest, nil
	case edge{quadruped.Rest, EventActivate}:
		return quadruped.Deactivated, nil

	// trot
	case edge{quadruped.Rest, EventTrot}:
		return quadruped.Trot, nil
	case edge{quadruped.Trot, EventTrot}:
		return quadruped.Rest, nil
	case edge{quadruped.Hop, EventTrot}:
		return quadruped.Trot, nil
	case edge{quadruped.FinishHop, EventTrot}:
		return quadruped.Trot, nil

	// hop
	case edge{quadruped.Rest, EventHop}:
		return quadruped.Hop, nil
	case edge{quadruped.Hop, EventHop}:
		return quadruped.FinishHop, nil
	case edge{quadruped.FinishHop, EventHop}:
		return quadruped.Rest, nil
	case edge{quadruped.Trot, EventHop}:
		return quadruped.Hop, nil
	}

	if e == EventNone {
		return s, nil
	}

	return s, &TransitionError{State: s, Event: e}
}

// NextState applies the highest priority event of cmd to s.
func NextState(s quadruped.BehaviorState, cmd quadruped.Command) (quadruped.BehaviorState, Event, error) {
	e := EventFor(cmd)
	next, err := Transition(s, e)
	return next, e, err
}
