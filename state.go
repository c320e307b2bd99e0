package quadruped

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// BehaviorState is the locomotion mode of the robot.
type BehaviorState int

const (
	Deactivated BehaviorState = iota
	Rest
	Trot
	Hop
	FinishHop
)

var behaviorStateNames = [...]string{
	Deactivated: "DEACTIVATED",
	Rest:        "REST",
	Trot:        "TROT",
	Hop:         "HOP",
	FinishHop:   "FINISHHOP",
}

func (s BehaviorState) String() string {
	if !s.Valid() {
		return fmt.Sprintf("BehaviorState(%d)", int(s))
	}

	return behaviorStateNames[s]
}

// Valid returns true if s is one of the five known states.
func (s BehaviorState) Valid() bool {
	return s >= Deactivated && s <= FinishHop
}

// ContactModes holds one flag per leg: true if the foot is on the ground
// (stance), false if it is in the air (swing).
type ContactModes [4]bool

// JointAngles holds the abduction, hip, and knee angles (rows, in radians) of
// each leg (columns).
type JointAngles = mgl64.Mat3x4

// State is everything the controller remembers between ticks. It's owned by
// the caller and mutated in place by each call to Controller.Run.
type State struct {
	BehaviorState BehaviorState

	// Number of times the controller has run. Never decreases.
	Ticks int

	// Foot positions in the body frame, one column per leg (front right, front
	// left, back right, back left). These are the planned positions, before the
	// body rotation is applied.
	FootLocations mgl64.Mat3x4

	// Output of the inverse kinematics, as of the last tick which produced one.
	JointAngles JointAngles

	// Measured body orientation. Written by the IMU, read by the controller.
	QuatOrientation mgl64.Quat

	// Yaw applied to the body while resting, filtered from the yaw command.
	SmoothedYaw float64

	// The last commanded body pose, cached for anyone who wants it.
	Pitch  float64
	Roll   float64
	Height float64

	// Which feet were down on the last trotting tick.
	ContactModes ContactModes
}

// NewState returns a deactivated state with the feet at the given stance and
// height, and a level orientation.
func NewState(defaultStance mgl64.Mat3x4, height float64) *State {
	feet := defaultStance
	for c := 0; c < 4; c++ {
		feet.Set(2, c, feet.At(2, c)+height)
	}

	return &State{
		BehaviorState:   Deactivated,
		FootLocations:   feet,
		QuatOrientation: mgl64.QuatIdent(),
		Height:          height,
		ContactModes:    ContactModes{true, true, true, true},
	}
}

func (s *State) String() string {
	return fmt.Sprintf("&State{%s t=%d h=%+.3f r=%+.3f p=%+.3f yaw=%+.3f}", s.BehaviorState, s.Ticks, s.Height, s.Roll, s.Pitch, s.SmoothedYaw)
}
