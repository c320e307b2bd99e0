package utils

import (
	"math"

	"github.com/adammck/dynamixel/network"
)

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// Clip constrains v to [lo, hi].
func Clip(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}

// Sync runs the given function while the network is in buffered mode, then
// initiates any movements at once by sending ACTION. The network is always
// returned to unbuffered mode, but ACTION is only sent if f succeeded.
func Sync(n *network.Network, f func() error) error {
	n.SetBuffered(true)
	err := f()
	n.SetBuffered(false)
	if err != nil {
		return err
	}

	return n.Action()
}
