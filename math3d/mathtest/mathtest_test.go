package mathtest

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// recorder is a TestingT which remembers whether it was failed.
type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.failed = true
}

func TestInDelta(t *testing.T) {
	type eg struct {
		exp []float64
		act []float64
		ok  bool
	}

	// cos(π/2) against an exact zero is the reason this package exists.
	examples := []eg{
		{[]float64{0, 1}, []float64{math.Cos(math.Pi / 2), 1}, true},
		{[]float64{0, 1}, []float64{1e-8, 1}, false},
		{[]float64{0}, []float64{math.NaN()}, false},
		{[]float64{0}, []float64{0, 0}, false},
		{[]float64{}, []float64{}, true},
	}

	for i, x := range examples {
		assert.Equal(t, x.ok, InDelta(x.exp, x.act, 1e-9), "example %d", i+1)
	}
}

func TestAssertMatInDelta(t *testing.T) {
	exp := mgl64.Mat3x4{0, 1, 0, -1, 0, 0, 0, 0, 1, -1, 1, 0}
	act := mgl64.Rotate3DZ(math.Pi / 2).Mul3x4(mgl64.Mat3x4{1, 0, 0, 0, 1, 0, 0, 0, 1, 1, 1, 0})

	assert.True(t, AssertMatInDelta(t, exp, act, 1e-9))

	act.Set(2, 3, 0.5)
	assert.False(t, MatInDelta(exp, act, 1e-9))

	r := &recorder{}
	assert.False(t, AssertMatInDelta(r, exp, act, 1e-9))
	assert.True(t, r.failed)
}

func TestAssertVecInDelta(t *testing.T) {
	act := mgl64.Rotate3DZ(math.Pi / 2).Mul3x1(mgl64.Vec3{1, 0, 0})
	assert.True(t, AssertVecInDelta(t, mgl64.Vec3{0, 1, 0}, act, 1e-9))

	r := &recorder{}
	assert.False(t, AssertVecInDelta(r, mgl64.Vec3{1, 0, 0}, act, 1e-9))
	assert.True(t, r.failed)
}
