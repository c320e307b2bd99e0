package math3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestEulerToMat(t *testing.T) {
	type eg struct {
		ea  EulerAngles
		in  mgl64.Vec3
		exp mgl64.Vec3
	}

	examples := []eg{
		{EulerAngles{0, 0, 0}, mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}},
		{EulerAngles{0, 0, math.Pi / 2}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
		{EulerAngles{math.Pi / 2, 0, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
		{EulerAngles{0, math.Pi / 2, 0}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}},

		// Roll is applied first, then yaw: y -> z stays on z.
		{EulerAngles{math.Pi / 2, 0, math.Pi / 2}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
	}

	for i, x := range examples {
		act := x.ea.Mat3().Mul3x1(x.in)
		for j := 0; j < 3; j++ {
			assert.InDelta(t, x.exp[j], act[j], 1e-9, "example %d, component %d", i+1, j)
		}
	}
}

func TestQuatToEulerRoundTrip(t *testing.T) {
	examples := []EulerAngles{
		{0, 0, 0},
		{0.1, 0.2, 0.3},
		{-0.4, 0.35, -1.2},
		{1.0, -0.7, 2.5},
		{-2.9, 0.1, 0.05},
	}

	for i, ea := range examples {
		q := mgl64.Mat4ToQuat(ea.Mat3().Mat4())
		act := QuatToEuler(q)
		assert.InDelta(t, ea.Roll, act.Roll, 1e-9, "example %d roll", i+1)
		assert.InDelta(t, ea.Pitch, act.Pitch, 1e-9, "example %d pitch", i+1)
		assert.InDelta(t, ea.Yaw, act.Yaw, 1e-9, "example %d yaw", i+1)
	}
}

func TestMatToEulerGimbalLock(t *testing.T) {
	m := EulerToMat(0.3, math.Pi/2, 0)
	act := MatToEuler(m)
	assert.InDelta(t, math.Pi/2, act.Pitch, 1e-6)
	assert.Equal(t, 0.0, act.Yaw)
}

func TestEulerAnglesString(t *testing.T) {
	ea := EulerAngles{Roll: math.Pi / 2}
	assert.Equal(t, "&Euler{r=+90.00° p=+0.00° y=+0.00°}", ea.String())
}
