package math3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// How far from unit length a measured orientation may drift before it is
// considered garbage rather than rounding error.
const quatLengthTolerance = 0.1

// SafeQuat returns a normalized copy of q, and true. If q contains NaN or Inf,
// or is too far from unit length to be an orientation, the identity is
// returned instead, and false.
func SafeQuat(q mgl64.Quat) (mgl64.Quat, bool) {
	for _, f := range [4]float64{q.W, q.V[0], q.V[1], q.V[2]} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return mgl64.QuatIdent(), false
		}
	}

	l := q.Len()
	if math.Abs(l-1) > quatLengthTolerance {
		return mgl64.QuatIdent(), false
	}

	return q.Normalize(), true
}
