package legs

import (
	"github.com/0x49b/quadruped/utils"
)

// ClippedFirstOrderFilter returns the rate at which a first order system with
// time constant tau would move from input towards target, limited to maxRate.
// Integrate it by multiplying by dt.
func ClippedFirstOrderFilter(input, target, maxRate, tau float64) float64 {
	rate := (target - input) / tau
	return utils.Clip(rate, -maxRate, maxRate)
}

// restingYaw advances the smoothed yaw by one tick towards the yaw implied by
// the yaw rate command. The result never leaves [-MaxStanceYaw, MaxStanceYaw].
func (c *Controller) restingYaw(smoothed, yawRate float64) float64 {
	maxYaw := c.config.MaxStanceYaw
	target := utils.Clip(-maxYaw*(yawRate/c.config.MaxYawRate), -maxYaw, maxYaw)

	smoothed += c.config.DT * ClippedFirstOrderFilter(smoothed, target, c.config.MaxStanceYawRate, c.config.YawTimeConstant)
	return utils.Clip(smoothed, -maxYaw, maxYaw)
}
