package kinematics

import (
	"math"
	"testing"

	"github.com/0x49b/quadruped/config"
	"github.com/0x49b/quadruped/math3d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func finite(t *testing.T, m mgl64.Mat3x4) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			v := m.At(r, c)
			assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "m%d%d is %v", r, c, v)
		}
	}
}

func TestSolveDefaultStance(t *testing.T) {
	cfg := config.Default()
	feet := math3d.OffsetZ(cfg.DefaultStance(), cfg.DefaultZRef)
	a := Solve(feet, cfg)
	finite(t, a)

	// Right legs mirror left legs.
	assert.InDelta(t, -a.At(0, 1), a.At(0, 0), 1e-9)
	assert.InDelta(t, a.At(1, 1), a.At(1, 0), 1e-9)
	assert.InDelta(t, a.At(2, 1), a.At(2, 0), 1e-9)

	// Front legs match back legs, because the stance is centered on the hips.
	for r := 0; r < 3; r++ {
		assert.InDelta(t, a.At(r, 0), a.At(r, 2), 1e-9, "row %d", r)
		assert.InDelta(t, a.At(r, 1), a.At(r, 3), 1e-9, "row %d", r)
	}

	// The knee is always bent backwards relative to the hip.
	for c := 0; c < 4; c++ {
		assert.Less(t, a.At(2, c), a.At(1, c), "leg %d", c)
	}
}

func TestSolveDeterministic(t *testing.T) {
	cfg := config.Default()
	feet := math3d.OffsetZ(cfg.DefaultStance(), -0.12)
	assert.Equal(t, Solve(feet, cfg), Solve(feet, cfg))
}

func TestSolveUnreachable(t *testing.T) {
	cfg := config.Default()

	// A metre below the body is well out of reach.
	far := math3d.OffsetZ(cfg.DefaultStance(), -1.0)
	finite(t, Solve(far, cfg))
}

func TestSss(t *testing.T) {
	type eg struct {
		a, b, c float64
		exp     float64
	}

	examples := []eg{
		{1, 1, 1, math.Pi / 3},
		{5, 3, 4, math.Acos(0)},

		// Impossible triangles are clipped rather than NaN.
		{10, 1, 1, math.Acos(-maxCos)},
		{0, 1, 1, math.Acos(maxCos)},
	}

	for i, x := range examples {
		assert.InDelta(t, x.exp, sss(x.a, x.b, x.c), 1e-9, "example %d", i+1)
	}
}
