package voltage

import (
	"time"

	"github.com/0x49b/quadruped"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "voltage",
})

const (

	// Time between voltage checks. These are pretty quick, but not instant.
	// Running at low voltage for too long will damage the battery, so it
	// should be checked pretty regularly.
	interval = 5 * time.Second
)

// ErrLowVoltage is the cause of the error returned when the battery is too
// low to keep running.
var ErrLowVoltage = errors.New("low voltage")

type HasVoltage interface {
	Voltage() (float64, error)
}

type VoltageCheck struct {
	t       time.Time
	minimum float64
	HasVoltage
}

func New(servo HasVoltage, minimum float64) *VoltageCheck {
	return &VoltageCheck{
		time.Time{},
		minimum,
		servo,
	}
}

// Boot checks the voltage once, so the robot refuses to start on a flat
// battery.
func (vc *VoltageCheck) Boot() error {
	return vc.CheckVoltage(time.Now())
}

func (vc *VoltageCheck) Tick(now time.Time, state *quadruped.State) error {
	if vc.NeedsVoltageCheck(now) {
		return vc.CheckVoltage(now)
	}

	return nil
}

// NeedsVoltageCheck returns true if it's been a while since we checked the
// voltage level. The timeout is pretty arbitrary.
func (vc *VoltageCheck) NeedsVoltageCheck(now time.Time) bool {
	return now.Sub(vc.t) > interval
}

// CheckVoltage fetches the voltage level of an arbitrary servo, and returns an
// error if it's too low. In this case, the program should be terminated as soon
// as possible to preserve the battery.
func (vc *VoltageCheck) CheckVoltage(now time.Time) error {
	val, err := vc.Voltage()
	vc.t = now
	if err != nil {
		return errors.Wrap(err, "while reading voltage")
	}

	log.Infof("voltage: %.2fv", val)

	if val < vc.minimum {
		return errors.Wrapf(ErrLowVoltage, "%.2fv (minimum %.2fv)", val, vc.minimum)
	}

	return nil
}
