package gamepad

// Latch turns a held button into a single event: Run returns true only on the
// first call after the button goes down.
type Latch struct {
	val bool
}

func (l *Latch) Run(v bool) bool {
	r := v && !l.val
	l.val = v
	return r
}
