package gamepad

import (
	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/config"
	"github.com/0x49b/quadruped/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// Input is the state of a generic twin-stick controller, normalized so that
// the mapping to commands doesn't depend on where it came from.
type Input struct {

	// Sticks, in [-1, 1]. Positive Y is away from the operator, positive X is
	// to the right.
	LX float64 `json:"lx"`
	LY float64 `json:"ly"`
	RX float64 `json:"rx"`
	RY float64 `json:"ry"`

	// Analog triggers, in [0, 1].
	L2 float64 `json:"l2"`
	R2 float64 `json:"r2"`

	// Dpad, vertical axis only: 1 is up, -1 is down.
	DpadY int `json:"dpady"`

	// Buttons, held state. Each becomes one event per press.
	Activate bool `json:"activate"`
	Trot     bool `json:"trot"`
	Hop      bool `json:"hop"`
}

// Mapper converts a stream of Inputs (one per tick) into Commands. It's not
// safe for concurrent use; the latches and height are per-stream state.
type Mapper struct {
	config *config.Config

	activate Latch
	trot     Latch
	hop      Latch

	height float64
}

func NewMapper(cfg *config.Config) *Mapper {
	return &Mapper{
		config: cfg,
		height: cfg.DefaultZRef,
	}
}

// Command returns the command for this tick. The left stick drives, the right
// stick yaws and pitches, the triggers roll, and the dpad moves the body up
// (more negative height) and down.
func (m *Mapper) Command(in Input) quadruped.Command {
	c := m.config

	dz := float64(in.DpadY) * c.ZSpeed * c.DT
	m.height = utils.Clip(m.height-dz, c.MinHeight, c.MaxHeight)

	return quadruped.Command{
		ActivateEvent: m.activate.Run(in.Activate),
		TrotEvent:     m.trot.Run(in.Trot),
		HopEvent:      m.hop.Run(in.Hop),

		HorizontalVelocity: mgl64.Vec2{
			axis(in.LY) * c.MaxXVelocity,
			-axis(in.LX) * c.MaxYVelocity,
		},

		YawRate: -axis(in.RX) * c.MaxYawRate,
		Pitch:   axis(in.RY) * c.MaxPitch,
		Roll:    (trigger(in.R2) - trigger(in.L2)) * c.MaxRoll,
		Height:  m.height,
	}
}

func axis(v float64) float64 {
	return utils.Clip(v, -1, 1)
}

func trigger(v float64) float64 {
	return utils.Clip(v, 0, 1)
}
