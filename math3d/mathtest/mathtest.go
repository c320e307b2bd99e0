// Package mathtest has assertions for comparing mgl64 values in tests.
//
// mgl64's ApproxEqualThreshold compares against the square of the threshold
// whenever either side is exactly zero, which is much stricter than intended
// for rotated vectors (cos(π/2) is not zero). These compare every element by
// absolute difference.
package mathtest

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

// InDelta returns true if exp and act are the same length, and every element
// of act is within delta of the same element of exp. NaN is never within
// delta of anything.
func InDelta(exp, act []float64, delta float64) bool {
	if len(exp) != len(act) {
		return false
	}

	for i := range exp {
		if !(math.Abs(exp[i]-act[i]) <= delta) {
			return false
		}
	}

	return true
}

// MatInDelta is InDelta for foot and joint matrices.
func MatInDelta(exp, act mgl64.Mat3x4, delta float64) bool {
	return InDelta(exp[:], act[:], delta)
}

// AssertMatInDelta fails the test unless MatInDelta.
func AssertMatInDelta(t assert.TestingT, exp, act mgl64.Mat3x4, delta float64, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	if MatInDelta(exp, act, delta) {
		return true
	}

	return assert.Fail(t, fmt.Sprintf("Matrices differ by more than %v\nexpected: %v\nactual:   %v", delta, exp, act), msgAndArgs...)
}

// AssertVecInDelta fails the test unless every element of act is within delta
// of exp.
func AssertVecInDelta(t assert.TestingT, exp, act mgl64.Vec3, delta float64, msgAndArgs ...interface{}) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	if InDelta(exp[:], act[:], delta) {
		return true
	}

	return assert.Fail(t, fmt.Sprintf("Vectors differ by more than %v\nexpected: %v\nactual:   %v", delta, exp, act), msgAndArgs...)
}
