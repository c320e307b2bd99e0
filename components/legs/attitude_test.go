package legs

import (
	"math"
	"testing"

	"github.com/0x49b/quadruped/math3d"
	"github.com/0x49b/quadruped/math3d/mathtest"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestTiltCompensation(t *testing.T) {
	type eg struct {
		in  float64
		exp float64
	}

	examples := []eg{
		{0, 0},
		{0.1, 0.08},
		{-0.25, -0.2},
		{0.4, 0.32},
		{0.6, 0.32},
		{-1.5, -0.32},
	}

	for _, x := range examples {
		assert.InDelta(t, x.exp, TiltCompensation(x.in), 1e-12, "in=%v", x.in)
	}
}

func TestCompensateRoll(t *testing.T) {
	feet := testFeet()

	for _, roll := range []float64{-0.7, -0.4, -0.1, 0, 0.2, 0.4, 0.9} {
		act := Compensate(feet, 0, 0, quatFromEuler(roll, 0, 0))
		comp := 0.8 * math.Max(-0.4, math.Min(0.4, roll))
		exp := math3d.Rotate(mgl64.Rotate3DX(-comp), feet)
		mathtest.AssertMatInDelta(t, exp, act, 1e-9, "roll %v", roll)
	}
}

func TestCompensatePitch(t *testing.T) {
	feet := testFeet()

	for _, pitch := range []float64{-0.7, -0.4, -0.1, 0, 0.2, 0.4, 0.9} {
		act := Compensate(feet, 0, 0, quatFromEuler(0, pitch, 0))
		comp := 0.8 * math.Max(-0.4, math.Min(0.4, pitch))
		exp := math3d.Rotate(mgl64.Rotate3DY(-comp), feet)
		mathtest.AssertMatInDelta(t, exp, act, 1e-9, "pitch %v", pitch)
	}
}

func TestCompensateIgnoresYaw(t *testing.T) {
	feet := testFeet()
	act := Compensate(feet, 0, 0, quatFromEuler(0, 0, 1.1))
	mathtest.AssertMatInDelta(t, feet, act, 1e-9)
}

func TestCompensateOrder(t *testing.T) {
	feet := testFeet()
	cmdRoll := 0.3
	measuredPitch := 0.25

	act := Compensate(feet, cmdRoll, 0, quatFromEuler(0, measuredPitch, 0))

	tilt := mgl64.Rotate3DX(cmdRoll)
	correct := mgl64.Rotate3DY(TiltCompensation(measuredPitch)).Transpose()

	exp := correct.Mul3(tilt).Mul3x4(feet)
	mathtest.AssertMatInDelta(t, exp, act, 1e-9)

	// The other order is a different answer, so the test above means something.
	// The commutator of the two rotations is a yaw of about roll*pitch, which
	// moves these feet by several millimeters.
	wrong := tilt.Mul3(correct).Mul3x4(feet)
	assert.False(t, mathtest.MatInDelta(wrong, act, 1e-3))
}

func TestCompensateInvalidOrientation(t *testing.T) {
	feet := testFeet()
	nan := math.NaN()
	bad := []mgl64.Quat{
		{W: nan, V: mgl64.Vec3{0, 0, 0}},
		{W: 0, V: mgl64.Vec3{0, 0, 0}},
		{W: 5, V: mgl64.Vec3{1, 0, 0}},
	}

	exp := math3d.Rotate(math3d.EulerToMat(0.1, -0.2, 0), feet)
	for _, q := range bad {
		act := Compensate(feet, 0.1, -0.2, q)
		mathtest.AssertMatInDelta(t, exp, act, 1e-12, "q=%v", q)
	}
}
