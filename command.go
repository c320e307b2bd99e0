package quadruped

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Command is what the operator wants this tick. The three events are edge
// triggered: they are true for exactly one tick per button press.
type Command struct {
	ActivateEvent bool
	TrotEvent     bool
	HopEvent      bool

	// Body-frame velocity (m/s) in X (forward) and Y (left).
	HorizontalVelocity mgl64.Vec2

	// Radians per second about Z.
	YawRate float64

	// Body pose. Height is the Z of the feet relative to the body, so it is
	// negative when standing.
	Roll   float64
	Pitch  float64
	Height float64
}

// CommandSource produces one Command per tick. Implementations must return
// immediately, with the newest command they have.
type CommandSource interface {
	Command() Command
}

// OrientationSource reports the measured body orientation.
type OrientationSource interface {
	Orientation() mgl64.Quat
}
