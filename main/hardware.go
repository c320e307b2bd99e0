package main

import (
	"io"

	"github.com/0x49b/quadruped/config"
	"github.com/adammck/dynamixel/network"
	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"
)

// openNetwork opens the serial port, and returns a Dynamixel network on it.
// The caller must close the port.
func openNetwork(hw config.Hardware) (*network.Network, io.Closer, error) {
	opts := serial.OpenOptions{
		PortName:              hw.SerialPort,
		BaudRate:              hw.BaudRate,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       0,
		InterCharacterTimeout: 100,
	}

	log.Infof("opening serial port %s", hw.SerialPort)
	port, err := serial.Open(opts)
	if err != nil {
		return nil, nil, errors.Wrap(err, "while opening serial port")
	}

	n := network.New(port)
	n.Flush()
	return n, port, nil
}
