// Package remote receives joystick input over NATS, for driving the robot
// from another machine.
package remote

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/components/gamepad"
	"github.com/0x49b/quadruped/config"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "remote",
})

// Remote is a CommandSource fed by JSON-encoded gamepad.Input messages. Only
// the newest message matters, except that button presses are remembered until
// the next tick, so a press and release between two ticks isn't lost.
type Remote struct {
	url     string
	subject string

	conn *nats.Conn
	sub  *nats.Subscription

	// Only touched by Command, on the control loop.
	mapper *gamepad.Mapper

	mu       sync.Mutex
	latest   gamepad.Input
	pressed  gamepad.Input
	received int
}

func New(cfg *config.Config) *Remote {
	return &Remote{
		url:     cfg.Hardware.NatsURL,
		subject: cfg.Hardware.NatsSubject,
		mapper:  gamepad.NewMapper(cfg),
	}
}

// Boot connects and subscribes. If the server isn't up yet, the connection
// keeps retrying in the background; the robot stands still until then.
func (r *Remote) Boot() error {
	nc, err := nats.Connect(r.url,
		nats.Name("quadruped"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(1*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warnf("disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Infof("reconnected to %s", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return errors.Wrapf(err, "while connecting to %s", r.url)
	}

	sub, err := nc.Subscribe(r.subject, r.handle)
	if err != nil {
		nc.Close()
		return errors.Wrapf(err, "while subscribing to %s", r.subject)
	}

	// Make sure the server has the subscription before anyone publishes. If
	// not connected yet, it's sent on connect.
	if nc.IsConnected() {
		err = nc.Flush()
		if err != nil {
			log.Warnf("while flushing subscription: %v", err)
		}
	}

	log.Infof("subscribed to %s on %s", r.subject, r.url)
	r.conn = nc
	r.sub = sub
	return nil
}

func (r *Remote) handle(msg *nats.Msg) {
	var in gamepad.Input
	err := json.Unmarshal(msg.Data, &in)
	if err != nil {
		log.Warnf("dropping bad message: %v", err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pressed.Activate = r.pressed.Activate || (in.Activate && !r.latest.Activate)
	r.pressed.Trot = r.pressed.Trot || (in.Trot && !r.latest.Trot)
	r.pressed.Hop = r.pressed.Hop || (in.Hop && !r.latest.Hop)
	r.latest = in
	r.received += 1
}

// Command returns the command for this tick, built from the newest message.
// It never waits for one.
func (r *Remote) Command() quadruped.Command {
	r.mu.Lock()
	in := r.latest
	in.Activate = r.pressed.Activate
	in.Trot = r.pressed.Trot
	in.Hop = r.pressed.Hop
	r.pressed = gamepad.Input{}
	r.mu.Unlock()

	return r.mapper.Command(in)
}

// Received returns the number of valid messages handled so far.
func (r *Remote) Received() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.received
}

func (r *Remote) Close() error {
	if r.conn == nil {
		return nil
	}

	err := r.sub.Unsubscribe()
	r.conn.Close()
	return err
}
