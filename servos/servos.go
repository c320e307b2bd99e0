// Package servos drives the twelve leg servos of the robot, over a Dynamixel
// network.
package servos

import (
	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/utils"
	"github.com/adammck/dynamixel/network"
	"github.com/adammck/dynamixel/servo"
	"github.com/adammck/dynamixel/servo/ax"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "servos",
})

// Servo is the part of *servo.Servo which the legs use.
type Servo interface {
	MoveTo(angle float64) error
	SetTorqueEnable(enabled bool) error
	SetLED(state bool) error
}

// New returns a Servo (with sensible defaults) on the given network.
func New(n *network.Network, ID int) (*servo.Servo, error) {
	s, err := ax.New(n, ID)
	if err != nil {
		return nil, err
	}

	// Don't bother sending ACKs for writes. We must do this first, to ensure
	// that the servos are in the expected state before sending other commands.
	err = s.SetReturnLevel(1)
	if err != nil {
		return nil, errors.Wrap(err, "while setting return level")
	}

	err = s.Ping()
	if err != nil {
		return nil, errors.Wrap(err, "while pinging")
	}

	err = s.SetReturnDelayTime(0)
	if err != nil {
		return nil, errors.Wrap(err, "while setting return delay")
	}

	err = s.SetTorqueEnable(true)
	if err != nil {
		return nil, errors.Wrap(err, "while enabling torque")
	}

	err = s.SetMovingSpeed(1023)
	if err != nil {
		return nil, errors.Wrap(err, "while setting move speed")
	}

	return s, nil
}

// Legs is a quadruped.Output which moves three servos per leg: abduction, hip,
// and knee. Leg i uses IDs base+1, base+2, base+3, where base is the ith entry
// of the base IDs.
type Legs struct {
	network *network.Network
	baseIDs [4]int

	// Indexed by [leg][joint]. Nil until booted.
	servos [4][3]Servo
}

func NewLegs(n *network.Network, baseIDs [4]int) *Legs {
	return &Legs{
		network: n,
		baseIDs: baseIDs,
	}
}

// IDs returns the servo ID of every joint, in the same order as the rows and
// columns of JointAngles.
func (l *Legs) IDs() [4][3]int {
	ids := [4][3]int{}
	for leg, base := range l.baseIDs {
		for joint := 0; joint < 3; joint++ {
			ids[leg][joint] = base + joint + 1
		}
	}

	return ids
}

// Boot initializes every servo, and returns an error if any of them fail to
// respond. Servos which were initialized before the failure are relaxed.
func (l *Legs) Boot() error {
	for leg, ids := range l.IDs() {
		for joint, id := range ids {
			log.Infof("initializing servo #%d", id)
			s, err := New(l.network, id)
			if err != nil {
				l.Relax()
				return errors.Wrapf(err, "servo #%d", id)
			}

			l.servos[leg][joint] = s
		}
	}

	return nil
}

// Write moves every servo to its joint angle, in one buffered transaction.
func (l *Legs) Write(angles quadruped.JointAngles) error {
	return utils.Sync(l.network, func() error {
		return l.move(angles)
	})
}

func (l *Legs) move(angles quadruped.JointAngles) error {
	for leg := range l.servos {
		for joint, s := range l.servos[leg] {
			if s == nil {
				continue
			}

			err := s.MoveTo(utils.Deg(angles.At(joint, leg)))
			if err != nil {
				return errors.Wrapf(err, "while moving leg %d joint %d", leg, joint)
			}
		}
	}

	return nil
}

// Relax powers off all servos. This should be called before terminating the
// program, to ensure that servos don't stay powered up indefinitely. Errors
// are logged rather than returned, so one dead servo doesn't keep the others
// powered.
func (l *Legs) Relax() {
	for leg := range l.servos {
		for joint, s := range l.servos[leg] {
			if s == nil {
				continue
			}

			err := s.SetTorqueEnable(false)
			if err != nil {
				log.Warnf("while relaxing leg %d joint %d: %v", leg, joint, err)
			}

			s.SetLED(false)
		}
	}
}

// Voltage reads the input voltage from the first servo.
func (l *Legs) Voltage() (float64, error) {
	s, ok := l.servos[0][0].(*servo.Servo)
	if !ok || s == nil {
		return 0, errors.New("servos not booted")
	}

	return s.Voltage()
}
