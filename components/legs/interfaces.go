package legs

import (
	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/config"
	"github.com/go-gl/mathgl/mgl64"
)

// GaitSchedule decides which feet are on the ground at a given tick.
type GaitSchedule interface {

	// Contacts returns the stance (true) or swing (false) flag of each leg.
	Contacts(ticks int) quadruped.ContactModes

	// SubphaseTicks returns the number of ticks since the start of the phase
	// containing ticks.
	SubphaseTicks(ticks int) int
}

// StancePlanner moves a foot which is on the ground.
type StancePlanner interface {
	NextFootLocation(leg int, state *quadruped.State, cmd quadruped.Command) mgl64.Vec3
}

// SwingPlanner moves a foot which is in the air. The proportion is in [0, 1),
// and is how far through the swing the foot is.
type SwingPlanner interface {
	NextFootLocation(swingProportion float64, leg int, state *quadruped.State, cmd quadruped.Command) mgl64.Vec3
}

// InverseKinematics converts body-frame foot positions into joint angles. It
// must be deterministic, and return something for any foot positions the
// controller can produce.
type InverseKinematics interface {
	Solve(feet mgl64.Mat3x4, cfg *config.Config) quadruped.JointAngles
}

// InverseKinematicsFunc adapts a plain function to InverseKinematics.
type InverseKinematicsFunc func(feet mgl64.Mat3x4, cfg *config.Config) quadruped.JointAngles

func (f InverseKinematicsFunc) Solve(feet mgl64.Mat3x4, cfg *config.Config) quadruped.JointAngles {
	return f(feet, cfg)
}
