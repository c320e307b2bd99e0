package math3d

import (
	"fmt"
	"math"

	"github.com/0x49b/quadruped/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// Below this, the x/y column of a rotation matrix is considered degenerate and
// yaw can no longer be separated from roll.
const gimbalEpsilon = 4 * 2.220446049250313e-16

// EulerAngles are static-frame x-y-z rotations, in radians.
type EulerAngles struct {
	Roll  float64 // x
	Pitch float64 // y
	Yaw   float64 // z
}

var (
	IdentityOrientation = EulerAngles{}
)

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{r=%+.2f° p=%+.2f° y=%+.2f°}", utils.Deg(ea.Roll), utils.Deg(ea.Pitch), utils.Deg(ea.Yaw))
}

// Mat3 returns the rotation matrix for these angles.
func (ea EulerAngles) Mat3() mgl64.Mat3 {
	return EulerToMat(ea.Roll, ea.Pitch, ea.Yaw)
}

// EulerToMat returns the rotation matrix which rolls about the static X axis,
// then pitches about Y, then yaws about Z. That is: Rz * Ry * Rx.
func EulerToMat(roll, pitch, yaw float64) mgl64.Mat3 {
	return mgl64.Rotate3DZ(yaw).Mul3(mgl64.Rotate3DY(pitch)).Mul3(mgl64.Rotate3DX(roll))
}

// MatToEuler decomposes a rotation matrix built by EulerToMat. When pitch is at
// +/-90 degrees the yaw is folded into the roll, and reported as zero.
func MatToEuler(m mgl64.Mat3) EulerAngles {
	cy := math.Sqrt(m.At(0, 0)*m.At(0, 0) + m.At(1, 0)*m.At(1, 0))
	if cy > gimbalEpsilon {
		return EulerAngles{
			Roll:  math.Atan2(m.At(2, 1), m.At(2, 2)),
			Pitch: math.Atan2(-m.At(2, 0), cy),
			Yaw:   math.Atan2(m.At(1, 0), m.At(0, 0)),
		}
	}

	return EulerAngles{
		Roll:  math.Atan2(-m.At(1, 2), m.At(1, 1)),
		Pitch: math.Atan2(-m.At(2, 0), cy),
		Yaw:   0,
	}
}

// QuatToEuler returns the roll, pitch, and yaw of a unit quaternion. Callers
// holding untrusted sensor data should pass it through SafeQuat first.
func QuatToEuler(q mgl64.Quat) EulerAngles {
	return MatToEuler(q.Mat4().Mat3())
}
