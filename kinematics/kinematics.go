// Package kinematics solves for the joint angles of a Pupper-style leg: an
// abduction joint at the hip, then an upper and lower leg on the same plane.
package kinematics

import (
	"math"

	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/config"
	"github.com/0x49b/quadruped/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

// Arccos arguments are clipped to this, so that unreachable targets produce a
// fully extended (or folded) leg rather than NaN.
const maxCos = 0.99

var log = logrus.WithFields(logrus.Fields{
	"pkg": "kinematics",
})

// Solve returns the abduction, hip, and knee angles (rows) of each leg
// (columns) which put the feet at the given body-frame positions.
func Solve(feet mgl64.Mat3x4, cfg *config.Config) quadruped.JointAngles {
	origins := cfg.LegOrigins()
	offsets := cfg.AbductionOffsets()
	angles := quadruped.JointAngles{}

	for leg := 0; leg < 4; leg++ {
		v := feet.Col(leg).Sub(origins.Col(leg))
		angles.SetCol(leg, solveLeg(v, offsets[leg], cfg.UpperLegLength, cfg.LowerLegLength))
	}

	return angles
}

// solveLeg returns the joint angles of a single leg, given the foot position
// relative to the hip.
func solveLeg(v mgl64.Vec3, abductionOffset, upper, lower float64) mgl64.Vec3 {
	x, y, z := v[0], v[1], v[2]

	// Looking along the X axis, the foot is somewhere on the (y,z) plane. The
	// abduction joint swings the rest of the leg around X, and the leg plane is
	// offset from that axis by abductionOffset.
	//
	//   (hip)--offset--+
	//                   \
	//                    \  R_hip_foot_yz
	//                     \
	//                    (foot)
	//
	rBodyFootYZ := math.Hypot(y, z)
	rHipFootYZ := math.Sqrt(math.Max(rBodyFootYZ*rBodyFootYZ-abductionOffset*abductionOffset, 0))

	phi := math.Acos(utils.Clip(abductionOffset/rBodyFootYZ, -maxCos, maxCos))
	abduction := phi + math.Atan2(z, y)

	// Within the leg plane, the upper and lower leg form a triangle with the
	// line from hip to foot. Solve the inner angles with the law of cos.
	theta := math.Atan2(-x, rHipFootYZ)
	rHipFoot := math.Hypot(rHipFootYZ, x)

	trident := sss(lower, upper, rHipFoot)
	hip := theta + trident

	beta := sss(rHipFoot, upper, lower)
	knee := hip - (math.Pi - beta)

	if math.IsNaN(abduction) || math.IsNaN(hip) || math.IsNaN(knee) {
		log.Errorf("invalid angles for foot %v: abduction=%0.2f, hip=%0.2f, knee=%0.2f", v, abduction, hip, knee)
	}

	return mgl64.Vec3{abduction, hip, knee}
}

// sss returns the angle (in radians) opposite side a, given the length of
// sides a, b, and c. The cosine is clipped, so impossible triangles return
// their nearest possible angle.
// See: http://en.wikipedia.org/wiki/Solution_of_triangles
func sss(a, b, c float64) float64 {
	return math.Acos(utils.Clip(((b*b)+(c*c)-(a*a))/(2*b*c), -maxCos, maxCos))
}
