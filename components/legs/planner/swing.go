package planner

import (
	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/config"
	"github.com/0x49b/quadruped/math3d"
	"github.com/go-gl/mathgl/mgl64"
)

// Swing lifts a foot in a triangular arc of ZClearance, while moving it
// horizontally towards a touchdown point chosen so that it lands ahead of the
// body by half (Alpha) the distance it will travel during the next stance.
type Swing struct {
	config        *config.Config
	defaultStance mgl64.Mat3x4
	stanceTime    float64
	swingTime     float64
}

func NewSwing(cfg *config.Config) *Swing {
	return &Swing{
		config:        cfg,
		defaultStance: cfg.DefaultStance(),
		stanceTime:    float64(cfg.StanceTicks()) * cfg.DT,
		swingTime:     float64(cfg.SwingTicks()) * cfg.DT,
	}
}

// Touchdown returns the point (at z=0) where the given foot should land.
func (s *Swing) Touchdown(leg int, cmd quadruped.Command) mgl64.Vec3 {
	d := cmd.HorizontalVelocity.Mul(s.config.Alpha * s.stanceTime)
	theta := s.config.Beta * s.stanceTime * cmd.YawRate
	r := math3d.EulerToMat(0, 0, theta)
	return r.Mul3x1(s.defaultStance.Col(leg)).Add(mgl64.Vec3{d[0], d[1], 0})
}

// Height returns how far above the stance height the foot should be, at the
// given proportion of the swing. It peaks at ZClearance half way through.
func (s *Swing) Height(p float64) float64 {
	if p < 0.5 {
		return p / 0.5 * s.config.ZClearance
	}

	return s.config.ZClearance * (1 - (p-0.5)/0.5)
}

func (s *Swing) NextFootLocation(p float64, leg int, state *quadruped.State, cmd quadruped.Command) mgl64.Vec3 {
	p = mgl64.Clamp(p, 0, 1)
	foot := state.FootLocations.Col(leg)
	td := s.Touchdown(leg, cmd)

	// Never less than one tick, so the last tick of a swing lands exactly on the
	// touchdown point instead of dividing by zero.
	timeLeft := max(s.swingTime*(1-p), s.config.DT)

	v := td.Sub(foot).Mul(1 / timeLeft)
	return mgl64.Vec3{
		foot[0] + v[0]*s.config.DT,
		foot[1] + v[1]*s.config.DT,
		s.Height(p) + cmd.Height,
	}
}
