package legs

import (
	"github.com/0x49b/quadruped/math3d"
	"github.com/0x49b/quadruped/utils"
	"github.com/go-gl/mathgl/mgl64"
)

const (

	// The largest measured tilt (radians, roll or pitch) which is corrected.
	// Anything beyond is treated as this much, so a bad reading can't throw
	// the feet out of reach.
	MaxTilt = 0.4

	// Proportion of the measured tilt which is cancelled out.
	CorrectionFactor = 0.8
)

// TiltCompensation returns the angle by which the feet are counter-rotated to
// correct a measured roll or pitch.
func TiltCompensation(angle float64) float64 {
	return CorrectionFactor * utils.Clip(angle, -MaxTilt, MaxTilt)
}

// Compensate tilts the feet by the commanded roll and pitch, then rotates them
// back by the (clipped, scaled) measured roll and pitch. The order matters:
// the correction is expressed in the already-tilted frame.
func Compensate(feet mgl64.Mat3x4, roll, pitch float64, orientation mgl64.Quat) mgl64.Mat3x4 {
	tilted := math3d.Rotate(math3d.EulerToMat(roll, pitch, 0), feet)

	q, ok := math3d.SafeQuat(orientation)
	if !ok {
		log.Debugf("ignoring invalid orientation: %v", orientation)
	}

	measured := math3d.QuatToEuler(q)
	r := math3d.EulerToMat(TiltCompensation(measured.Roll), TiltCompensation(measured.Pitch), 0)

	return math3d.Rotate(r.Transpose(), tilted)
}
