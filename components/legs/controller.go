package legs

import (
	"fmt"

	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "legs",
})

// Controller turns commands into joint angles, one tick at a time. It holds no
// per-tick state of its own; everything which persists lives in the
// quadruped.State passed to Run.
type Controller struct {
	config *config.Config

	gait   GaitSchedule
	stance StancePlanner
	swing  SwingPlanner
	ik     InverseKinematics

	// Precomputed from the config, which never changes.
	defaultStance mgl64.Mat3x4
	swingTicks    float64
}

// New returns a controller. The config must already have been validated.
func New(cfg *config.Config, gait GaitSchedule, stance StancePlanner, swing SwingPlanner, ik InverseKinematics) *Controller {
	return &Controller{
		config:        cfg,
		gait:          gait,
		stance:        stance,
		swing:         swing,
		ik:            ik,
		defaultStance: cfg.DefaultStance(),
		swingTicks:    float64(cfg.SwingTicks()),
	}
}

// Run advances the state by one tick. It applies at most one behavior
// transition, plans the feet for the resulting behavior, and solves for the
// joint angles (except when deactivated).
//
// If the command carries an event which the current behavior has no
// transition for, the event is dropped, the tick is run as if there had been
// no event, and a *TransitionError is returned.
func (c *Controller) Run(state *quadruped.State, cmd quadruped.Command) error {
	next, event, terr := NextState(state.BehaviorState, cmd)
	if terr != nil {
		log.WithFields(logrus.Fields{
			"state": state.BehaviorState,
			"event": event,
			"tick":  state.Ticks,
		}).Warn("ignoring event")
	} else if next != state.BehaviorState {
		log.Infof("state=%v (was %v, on %v)", next, state.BehaviorState, event)
	}

	state.BehaviorState = next

	var err error

	switch state.BehaviorState {
	case quadruped.Deactivated:

	case quadruped.Trot:
		feet, contacts := c.stepGait(state, cmd)
		rotated := Compensate(feet, cmd.Roll, cmd.Pitch, state.QuatOrientation)

		state.FootLocations = feet
		state.ContactModes = contacts
		state.JointAngles = c.ik.Solve(rotated, c.config)

	case quadruped.Hop:
		state.FootLocations = c.hopFeet()
		state.JointAngles = c.ik.Solve(state.FootLocations, c.config)

	case quadruped.FinishHop:
		state.FootLocations = c.finishHopFeet()
		state.JointAngles = c.ik.Solve(state.FootLocations, c.config)

	case quadruped.Rest:
		yaw := c.restingYaw(state.SmoothedYaw, cmd.YawRate)
		feet, rotated := c.restFeet(yaw, cmd)

		state.SmoothedYaw = yaw
		state.FootLocations = feet
		state.JointAngles = c.ik.Solve(rotated, c.config)

	default:
		err = fmt.Errorf("unknown state: %#v", state.BehaviorState)
	}

	state.Ticks += 1
	state.Pitch = cmd.Pitch
	state.Roll = cmd.Roll
	state.Height = cmd.Height

	if err != nil {
		return err
	}

	return terr
}
