package legs

import (
	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/math3d"
	"github.com/go-gl/mathgl/mgl64"
)

const (

	// Crouch (m) while hopping, relative to the default stance.
	hopHeight = -0.09

	// Deeper crouch to settle into after a hop.
	finishHopHeight = -0.22
)

func (c *Controller) hopFeet() mgl64.Mat3x4 {
	return math3d.OffsetZ(c.defaultStance, hopHeight)
}

func (c *Controller) finishHopFeet() mgl64.Mat3x4 {
	return math3d.OffsetZ(c.defaultStance, finishHopHeight)
}

// restFeet returns the unrotated foot locations at the commanded height, and
// the same feet rotated into the commanded body pose.
func (c *Controller) restFeet(smoothedYaw float64, cmd quadruped.Command) (mgl64.Mat3x4, mgl64.Mat3x4) {
	feet := math3d.OffsetZ(c.defaultStance, cmd.Height)
	rotated := math3d.Rotate(math3d.EulerToMat(cmd.Roll, cmd.Pitch, smoothedYaw), feet)
	return feet, rotated
}
