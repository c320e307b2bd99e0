package imu

import (
	"github.com/0x49b/quadruped/math3d"
	"github.com/go-gl/mathgl/mgl64"
)

// FakeIMU is an OrientationSource which reports a fixed attitude, for running
// without an IMU attached.
type FakeIMU struct {
	q mgl64.Quat
}

// Level returns an IMU which always reports the body as level.
func Level() *FakeIMU {
	return &FakeIMU{mgl64.QuatIdent()}
}

// Tilted returns an IMU which always reports the given roll and pitch.
func Tilted(roll, pitch float64) *FakeIMU {
	return &FakeIMU{mgl64.Mat4ToQuat(math3d.EulerToMat(roll, pitch, 0).Mat4())}
}

func (f *FakeIMU) Orientation() mgl64.Quat {
	return f.q
}
