package serial

import (
	"bytes"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "fake/serial",
})

// FakeSerial is a serial port with nothing attached. Reads return nothing, and
// writes are kept for inspection.
type FakeSerial struct {
	written bytes.Buffer
}

func (s *FakeSerial) Read(p []byte) (n int, err error) {
	log.Debugf("read %d bytes", len(p))
	return 0, nil
}

func (s *FakeSerial) Write(p []byte) (n int, err error) {
	log.Debugf("write: %v", p)
	return s.written.Write(p)
}

func (s *FakeSerial) Close() error {
	log.Debugf("close")
	return nil
}

// Written returns everything written so far.
func (s *FakeSerial) Written() []byte {
	return s.written.Bytes()
}
