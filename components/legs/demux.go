package legs

import (
	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/math3d"
	"github.com/go-gl/mathgl/mgl64"
)

// stepGait returns the next location of each foot, by asking the stance
// planner about the feet which the gait schedule says are down, and the swing
// planner about the rest. It doesn't modify the state.
func (c *Controller) stepGait(state *quadruped.State, cmd quadruped.Command) (mgl64.Mat3x4, quadruped.ContactModes) {
	contacts := c.gait.Contacts(state.Ticks)
	feet := mgl64.Mat3x4{}

	for leg := 0; leg < math3d.NumLegs; leg++ {
		var loc mgl64.Vec3

		if contacts[leg] {
			loc = c.stance.NextFootLocation(leg, state, cmd)
		} else {
			p := float64(c.gait.SubphaseTicks(state.Ticks)) / c.swingTicks
			loc = c.swing.NextFootLocation(p, leg, state, cmd)
		}

		feet.SetCol(leg, loc)
	}

	return feet, contacts
}
