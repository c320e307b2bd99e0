// Package gamepad turns controller input into commands: a PS3 sixaxis read
// from an evdev device, or normalized Input from anywhere else.
package gamepad

import (
	"io"
	"sync"

	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/config"
	"github.com/adammck/sixaxis"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "gamepad",
})

const (

	// Full deflection of a stick.
	stickMax = 127.0

	// Full pressure of a trigger.
	triggerMax = 255.0
)

// Gamepad is a CommandSource backed by a sixaxis. L1 activates, R1 trots,
// cross hops. Start requests a shutdown.
type Gamepad struct {

	// The sixaxis updates its fields from its own goroutine, between reads
	// from the device. Those reads go through a lockedReader on mu, so the
	// fields must only be read with mu held.
	mu sync.Mutex
	sa *sixaxis.SA

	// Only touched by Command, on the control loop.
	mapper *Mapper

	// Called (every tick) while start is held.
	OnStart func()
}

func New(r io.Reader, cfg *config.Config) *Gamepad {
	g := &Gamepad{
		mapper: NewMapper(cfg),
	}

	g.sa = sixaxis.New(&lockedReader{r: r, mu: &g.mu})
	return g
}

func (g *Gamepad) Boot() error {
	log.Info("reading controller")
	go g.sa.Run()
	return nil
}

func (g *Gamepad) Command() quadruped.Command {
	g.mu.Lock()
	in := g.input()
	start := g.sa.Start
	g.mu.Unlock()

	if start && g.OnStart != nil {
		log.Info("pressed START")
		g.OnStart()
	}

	return g.mapper.Command(in)
}

// input reads the current state of the sixaxis. The caller must hold mu.
// Note that the Y axes of the sticks are negative when pushed away.
func (g *Gamepad) input() Input {
	in := Input{
		LX: float64(g.sa.LeftStick.X) / stickMax,
		LY: float64(-g.sa.LeftStick.Y) / stickMax,
		RX: float64(g.sa.RightStick.X) / stickMax,
		RY: float64(-g.sa.RightStick.Y) / stickMax,
		L2: float64(g.sa.L2) / triggerMax,
		R2: float64(g.sa.R2) / triggerMax,

		Activate: g.sa.L1 > 0,
		Trot:     g.sa.R1 > 0,
		Hop:      g.sa.Cross > 0,
	}

	if g.sa.Up > 0 {
		in.DpadY = 1
	}

	if g.sa.Down > 0 {
		in.DpadY = -1
	}

	return in
}
