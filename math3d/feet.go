package math3d

import (
	"github.com/go-gl/mathgl/mgl64"
)

// NumLegs is the number of columns in a foot matrix.
const NumLegs = 4

// OffsetZ returns a copy of m with dz added to the Z (third) row of every
// column.
func OffsetZ(m mgl64.Mat3x4, dz float64) mgl64.Mat3x4 {
	for c := 0; c < NumLegs; c++ {
		m.Set(2, c, m.At(2, c)+dz)
	}

	return m
}

// Rotate returns r * m, i.e. every foot rotated about the body origin.
func Rotate(r mgl64.Mat3, m mgl64.Mat3x4) mgl64.Mat3x4 {
	return r.Mul3x4(m)
}

// FootMatrix builds a 3x4 matrix from four column vectors, one per leg.
func FootMatrix(fr, fl, br, bl mgl64.Vec3) mgl64.Mat3x4 {
	m := mgl64.Mat3x4{}
	m.SetCol(0, fr)
	m.SetCol(1, fl)
	m.SetCol(2, br)
	m.SetCol(3, bl)
	return m
}
