package voltage

// FakeVoltage is a battery which reads whatever it's told to.
type FakeVoltage struct {
	voltage float64
	reads   int

	// Returned from every read, if set.
	Err error
}

func New(voltage float64) *FakeVoltage {
	return &FakeVoltage{voltage: voltage}
}

func (s *FakeVoltage) Voltage() (float64, error) {
	s.reads += 1
	return s.voltage, s.Err
}

func (s *FakeVoltage) Set(voltage float64) {
	s.voltage = voltage
}

// Reads returns the number of times Voltage was called.
func (s *FakeVoltage) Reads() int {
	return s.reads
}
