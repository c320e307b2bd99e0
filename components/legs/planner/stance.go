// Package planner contains the per-leg trajectory generators used while
// trotting: one for feet on the ground, one for feet in the air.
package planner

import (
	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/config"
	"github.com/0x49b/quadruped/math3d"
	"github.com/go-gl/mathgl/mgl64"
)

// Stance moves planted feet backwards (relative to the body) at the commanded
// velocity, turns them about the body origin at the commanded yaw rate, and
// pulls them towards the commanded height.
type Stance struct {
	config *config.Config
}

func NewStance(cfg *config.Config) *Stance {
	return &Stance{config: cfg}
}

// delta returns the translation and rotation to apply to a planted foot this
// tick.
func (s *Stance) delta(leg int, state *quadruped.State, cmd quadruped.Command) (mgl64.Vec3, mgl64.Mat3) {
	z := state.FootLocations.At(2, leg)
	v := mgl64.Vec3{
		-cmd.HorizontalVelocity[0],
		-cmd.HorizontalVelocity[1],
		(state.Height - z) / s.config.ZTimeConstant,
	}

	dp := v.Mul(s.config.DT)
	dr := math3d.EulerToMat(0, 0, -cmd.YawRate*s.config.DT)
	return dp, dr
}

func (s *Stance) NextFootLocation(leg int, state *quadruped.State, cmd quadruped.Command) mgl64.Vec3 {
	foot := state.FootLocations.Col(leg)
	dp, dr := s.delta(leg, state, cmd)
	return dr.Mul3x1(foot).Add(dp)
}
