package legs

import (
	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/config"
	"github.com/0x49b/quadruped/math3d"
	"github.com/go-gl/mathgl/mgl64"
)

// Deterministic stand-ins for the controller's collaborators.

type fixedGait struct {
	contacts quadruped.ContactModes
	subphase int
}

func (g fixedGait) Contacts(ticks int) quadruped.ContactModes {
	return g.contacts
}

func (g fixedGait) SubphaseTicks(ticks int) int {
	return g.subphase
}

// stanceMarker returns (1, leg, 0) for every foot, and records which legs it
// was asked about.
type stanceMarker struct {
	legs []int
}

func (s *stanceMarker) NextFootLocation(leg int, state *quadruped.State, cmd quadruped.Command) mgl64.Vec3 {
	s.legs = append(s.legs, leg)
	return mgl64.Vec3{1, float64(leg), 0}
}

// swingMarker returns (2, leg, proportion) for every foot.
type swingMarker struct {
	legs        []int
	proportions []float64
}

func (s *swingMarker) NextFootLocation(p float64, leg int, state *quadruped.State, cmd quadruped.Command) mgl64.Vec3 {
	s.legs = append(s.legs, leg)
	s.proportions = append(s.proportions, p)
	return mgl64.Vec3{2, float64(leg), p}
}

func (s *stanceMarker) reset() { s.legs = s.legs[:0] }

func (s *swingMarker) reset() {
	s.legs = s.legs[:0]
	s.proportions = s.proportions[:0]
}

// passthroughIK returns the feet it was given as the joint angles, so tests can
// see exactly what the controller asked to solve.
var passthroughIK = InverseKinematicsFunc(func(feet mgl64.Mat3x4, cfg *config.Config) quadruped.JointAngles {
	return feet
})

func quatFromEuler(roll, pitch, yaw float64) mgl64.Quat {
	return mgl64.Mat4ToQuat(math3d.EulerToMat(roll, pitch, yaw).Mat4())
}

func testFeet() mgl64.Mat3x4 {
	return math3d.FootMatrix(
		mgl64.Vec3{0.1, -0.09, -0.16},
		mgl64.Vec3{0.1, 0.09, -0.16},
		mgl64.Vec3{-0.1, -0.09, -0.16},
		mgl64.Vec3{-0.1, 0.09, -0.16},
	)
}
