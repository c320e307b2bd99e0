package quadruped

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "quadruped",
})

// Runner advances a State by one tick.
type Runner interface {
	Run(state *State, cmd Command) error
}

// Output receives the joint angles after every tick in which the robot is
// active. Usually servos.
type Output interface {
	Boot() error
	Write(angles JointAngles) error
}

// Component is ticked once per frame, after the controller, whatever the
// behavior state. Battery checks and telemetry live here.
type Component interface {
	Boot() error
	Tick(now time.Time, state *State) error
}

// Booter is implemented by sources which need to start something (a reader
// goroutine, a connection) before the first tick.
type Booter interface {
	Boot() error
}

type Robot struct {
	State *State

	Source      CommandSource
	Orientation OrientationSource
	Controller  Runner

	Outputs    []Output
	Components []Component

	// Components can set this to true to indicate that the robot should shut
	// down.
	Shutdown bool
}

// NewRobot creates a robot with no outputs or components.
func NewRobot(state *State, src CommandSource, ori OrientationSource, ctrl Runner) *Robot {
	return &Robot{
		State:       state,
		Source:      src,
		Orientation: ori,
		Controller:  ctrl,
		Outputs:     []Output{},
		Components:  []Component{},
	}
}

// AddOutput registers an output to receive joint angles every active tick.
func (r *Robot) AddOutput(o Output) {
	r.Outputs = append(r.Outputs, o)
}

// Add registers a component to receive ticks every frame.
func (r *Robot) Add(c Component) {
	r.Components = append(r.Components, c)
}

// Boot boots the sources (if they need it), then each output and component,
// stopping at the first error.
func (r *Robot) Boot() error {
	for _, v := range []interface{}{r.Source, r.Orientation} {
		if b, ok := v.(Booter); ok {
			err := b.Boot()
			if err != nil {
				return errors.Wrapf(err, "while booting %T", v)
			}
		}
	}

	for _, o := range r.Outputs {
		err := o.Boot()
		if err != nil {
			return errors.Wrapf(err, "while booting %T", o)
		}
	}

	for _, c := range r.Components {
		err := c.Boot()
		if err != nil {
			return errors.Wrapf(err, "while booting %T", c)
		}
	}

	return nil
}

// Tick runs one frame: read the newest command and orientation, run the
// controller, write the joint angles (unless deactivated), then tick the
// components.
//
// The controller's error is returned, but only after the rest of the frame
// has run, since the controller has already updated the state by then. Output
// and component errors are returned in preference to it.
func (r *Robot) Tick(now time.Time) error {
	cmd := r.Source.Command()
	r.State.QuatOrientation = r.Orientation.Orientation()

	cerr := r.Controller.Run(r.State, cmd)
	log.Debugf("tick: %s", r.State)

	if r.State.BehaviorState != Deactivated {
		for _, o := range r.Outputs {
			err := o.Write(r.State.JointAngles)
			if err != nil {
				return errors.Wrapf(err, "while writing to %T", o)
			}
		}
	}

	for _, c := range r.Components {
		err := c.Tick(now, r.State)
		if err != nil {
			return errors.Wrapf(err, "while ticking %T", c)
		}
	}

	return cerr
}
