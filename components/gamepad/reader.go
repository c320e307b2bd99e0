package gamepad

import (
	"io"
	"sync"
)

// lockedReader hands a mutex back and forth with whoever reads from it. The
// mutex is released while blocked in Read, and held from the moment Read
// returns until the next call. A goroutine which reads events and then
// updates its own fields therefore only writes them with the mutex held, so
// anyone else holding the mutex sees a consistent snapshot.
//
// After a read error the mutex is left unlocked, since the reader is expected
// to give up.
type lockedReader struct {
	r    io.Reader
	mu   *sync.Mutex
	held bool
}

func (l *lockedReader) Read(p []byte) (int, error) {
	if l.held {
		l.held = false
		l.mu.Unlock()
	}

	n, err := l.r.Read(p)
	if err != nil {
		return n, err
	}

	l.mu.Lock()
	l.held = true
	return n, nil
}
