// Package config holds the immutable robot configuration. It is loaded once,
// validated, and then shared read-only by every component.
package config

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// ErrInvalidConfig is the cause of every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full robot configuration. Fields ending in Time are seconds;
// angles are radians; lengths are meters.
type Config struct {

	// Seconds per control tick.
	DT float64 `koanf:"dt"`

	// Command limits.
	MaxXVelocity float64 `koanf:"max_x_velocity"`
	MaxYVelocity float64 `koanf:"max_y_velocity"`
	MaxYawRate   float64 `koanf:"max_yaw_rate"`
	MaxPitch     float64 `koanf:"max_pitch"`
	MaxRoll      float64 `koanf:"max_roll"`

	// How fast the dpad moves the body up and down (m/s), and how far.
	ZSpeed    float64 `koanf:"z_speed"`
	MinHeight float64 `koanf:"min_height"`
	MaxHeight float64 `koanf:"max_height"`

	// Yaw of the body while resting, driven by the yaw rate command.
	MaxStanceYaw     float64 `koanf:"max_stance_yaw"`
	MaxStanceYawRate float64 `koanf:"max_stance_yaw_rate"`
	YawTimeConstant  float64 `koanf:"yaw_time_constant"`

	// Stance geometry. The default stance is a rectangle of half-length DeltaX
	// and half-width DeltaY, shifted forwards by XShift.
	DeltaX      float64 `koanf:"delta_x"`
	DeltaY      float64 `koanf:"delta_y"`
	XShift      float64 `koanf:"x_shift"`
	DefaultZRef float64 `koanf:"default_z_ref"`

	// Stance planner.
	ZTimeConstant float64 `koanf:"z_time_constant"`

	// Swing planner.
	ZClearance float64 `koanf:"z_clearance"`
	Alpha      float64 `koanf:"alpha"` // velocity feedforward of the touchdown point
	Beta       float64 `koanf:"beta"`  // yaw feedforward of the touchdown point

	// Gait schedule. Rows are legs, columns are the four phases of the cycle:
	// overlap, swing, overlap, swing. 1 is stance, 0 is swing.
	ContactPhases [4][4]int `koanf:"contact_phases"`
	OverlapTime   float64   `koanf:"overlap_time"`
	SwingTime     float64   `koanf:"swing_time"`

	// Leg geometry, used by inverse kinematics.
	LegFB           float64 `koanf:"leg_fb"`
	LegLR           float64 `koanf:"leg_lr"`
	AbductionOffset float64 `koanf:"abduction_offset"`
	UpperLegLength  float64 `koanf:"upper_leg_length"`
	LowerLegLength  float64 `koanf:"lower_leg_length"`

	Hardware Hardware `koanf:"hardware"`
}

// Hardware is everything the control core does not care about.
type Hardware struct {
	SerialPort string `koanf:"serial_port"`
	BaudRate   uint   `koanf:"baud_rate"`

	// Dynamixel ID of the first (abduction) servo of each leg. The hip and knee
	// are the next two IDs.
	ServoBaseIDs [4]int `koanf:"servo_base_ids"`

	Joystick    string  `koanf:"joystick"`
	NatsURL     string  `koanf:"nats_url"`
	NatsSubject string  `koanf:"nats_subject"`
	MetricsAddr string  `koanf:"metrics_addr"`
	MinVoltage  float64 `koanf:"min_voltage"`
}

// Default returns the configuration of a stock Pupper.
func Default() *Config {
	return &Config{
		DT: 0.01,

		MaxXVelocity: 0.4,
		MaxYVelocity: 0.3,
		MaxYawRate:   2.0,
		MaxPitch:     30.0 * math.Pi / 180.0,
		MaxRoll:      20.0 * math.Pi / 180.0,

		ZSpeed:    0.03,
		MinHeight: -0.22,
		MaxHeight: -0.06,

		MaxStanceYaw:     1.2,
		MaxStanceYawRate: 2.0,
		YawTimeConstant:  0.3,

		DeltaX:      0.1,
		DeltaY:      0.09,
		XShift:      0.0,
		DefaultZRef: -0.16,

		ZTimeConstant: 0.02,

		ZClearance: 0.07,
		Alpha:      0.5,
		Beta:       0.5,

		ContactPhases: [4][4]int{
			{1, 1, 1, 0},
			{1, 0, 1, 1},
			{1, 0, 1, 1},
			{1, 1, 1, 0},
		},
		OverlapTime: 0.10,
		SwingTime:   0.11,

		LegFB:           0.10,
		LegLR:           0.04,
		AbductionOffset: 0.03,
		UpperLegLength:  0.08,
		LowerLegLength:  0.11,

		Hardware: Hardware{
			SerialPort:   "/dev/ttyACM0",
			BaudRate:     1000000,
			ServoBaseIDs: [4]int{10, 20, 30, 40},
			Joystick:     "/dev/input/event0",
			NatsSubject:  "pupper.joystick",
			MetricsAddr:  ":9100",
			MinVoltage:   9.6,
		},
	}
}

// ticks converts a duration in seconds into a whole number of control ticks.
// A small epsilon keeps e.g. 0.11/0.01 from truncating to 10.
func (c *Config) ticks(seconds float64) int {
	return int(seconds/c.DT + 1e-9)
}

// OverlapTicks is the number of ticks in which all four feet are down.
func (c *Config) OverlapTicks() int {
	return c.ticks(c.OverlapTime)
}

// SwingTicks is the number of ticks a foot spends in the air.
func (c *Config) SwingTicks() int {
	return c.ticks(c.SwingTime)
}

// StanceTicks is the number of ticks a foot spends on the ground per cycle.
func (c *Config) StanceTicks() int {
	return 2*c.OverlapTicks() + c.SwingTicks()
}

// PhaseTicks returns the length of each of the four gait phases.
func (c *Config) PhaseTicks() [4]int {
	o, s := c.OverlapTicks(), c.SwingTicks()
	return [4]int{o, s, o, s}
}

// PhaseLength is the number of ticks in a full gait cycle.
func (c *Config) PhaseLength() int {
	return 2*c.OverlapTicks() + 2*c.SwingTicks()
}

// DefaultStance returns the neutral foot positions (at z=0), one column per
// leg: front right, front left, back right, back left.
func (c *Config) DefaultStance() mgl64.Mat3x4 {
	x, y := c.DeltaX, c.DeltaY
	return mgl64.Mat3x4{
		x + c.XShift, -y, 0,
		x + c.XShift, y, 0,
		-x + c.XShift, -y, 0,
		-x + c.XShift, y, 0,
	}
}

// LegOrigins returns the position of each hip relative to the body center.
func (c *Config) LegOrigins() mgl64.Mat3x4 {
	fb, lr := c.LegFB, c.LegLR
	return mgl64.Mat3x4{
		fb, -lr, 0,
		fb, lr, 0,
		-fb, -lr, 0,
		-fb, lr, 0,
	}
}

// AbductionOffsets returns the signed lateral offset of each foot from its
// abduction axis. Right legs are negative.
func (c *Config) AbductionOffsets() [4]float64 {
	a := c.AbductionOffset
	return [4]float64{-a, a, -a, a}
}

// Validate returns an error if the config could not drive the robot. This
// must be called before the first tick; nothing downstream re-checks.
func (c *Config) Validate() error {
	if !(c.DT > 0) {
		return errors.Wrapf(ErrInvalidConfig, "dt must be positive, got %v", c.DT)
	}

	if c.SwingTicks() <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "swing_time %v is shorter than one tick (dt=%v)", c.SwingTime, c.DT)
	}

	if c.OverlapTicks() < 0 {
		return errors.Wrapf(ErrInvalidConfig, "overlap_time must not be negative, got %v", c.OverlapTime)
	}

	// The resting yaw target divides by this, and the yaw command can't be
	// known until the loop is running, so a zero is always rejected.
	if c.MaxYawRate == 0 {
		return errors.Wrap(ErrInvalidConfig, "max_yaw_rate must not be zero")
	}

	if c.MaxStanceYaw < 0 || c.MaxStanceYawRate < 0 {
		return errors.Wrap(ErrInvalidConfig, "max_stance_yaw and max_stance_yaw_rate must not be negative")
	}

	if !(c.YawTimeConstant > 0) {
		return errors.Wrapf(ErrInvalidConfig, "yaw_time_constant must be positive, got %v", c.YawTimeConstant)
	}

	if !(c.ZTimeConstant > 0) {
		return errors.Wrapf(ErrInvalidConfig, "z_time_constant must be positive, got %v", c.ZTimeConstant)
	}

	for leg, phases := range c.ContactPhases {
		for phase, v := range phases {
			if v != 0 && v != 1 {
				return errors.Wrapf(ErrInvalidConfig, "contact_phases[%d][%d] must be 0 or 1, got %d", leg, phase, v)
			}
		}
	}

	if !(c.UpperLegLength > 0) || !(c.LowerLegLength > 0) {
		return errors.Wrap(ErrInvalidConfig, "leg segment lengths must be positive")
	}

	if c.MinHeight > c.MaxHeight {
		return errors.Wrapf(ErrInvalidConfig, "min_height %v is above max_height %v", c.MinHeight, c.MaxHeight)
	}

	return nil
}
