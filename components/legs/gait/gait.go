package gait

import (
	"github.com/0x49b/quadruped"
	"github.com/0x49b/quadruped/config"
)

const (
	numLegs   = 4
	numPhases = 4
)

// Frame is where a single tick falls within the gait cycle.
type Frame struct {
	Phase    int // index into the contact phase table
	Subphase int // ticks since the start of that phase
}

type Frames []Frame

// Schedule is a trotting gait: a fixed table of which legs are down in each
// phase, and how many ticks each phase lasts. It's precomputed for a single
// cycle at construction, so lookups are just a modulo and an index.
type Schedule struct {
	contacts [numPhases]quadruped.ContactModes
	frames   Frames
}

// New builds the schedule described by the config's contact phases and
// overlap/swing times. The config must be valid.
func New(cfg *config.Config) *Schedule {
	s := &Schedule{}

	for phase := 0; phase < numPhases; phase++ {
		for leg := 0; leg < numLegs; leg++ {
			s.contacts[phase][leg] = cfg.ContactPhases[leg][phase] == 1
		}
	}

	s.frames = make(Frames, 0, cfg.PhaseLength())
	for phase, n := range cfg.PhaseTicks() {
		for i := 0; i < n; i++ {
			s.frames = append(s.frames, Frame{Phase: phase, Subphase: i})
		}
	}

	return s
}

// Length returns the number of ticks in a full cycle of the gait.
func (s *Schedule) Length() int {
	return len(s.frames)
}

// Frame returns the phase and subphase of the given tick. This is just to
// spare the caller from wrapping the tick around the cycle.
func (s *Schedule) Frame(ticks int) Frame {
	n := len(s.frames)
	i := ticks % n
	if i < 0 {
		i += n
	}

	return s.frames[i]
}

// PhaseIndex returns the index of the phase which the tick falls in.
func (s *Schedule) PhaseIndex(ticks int) int {
	return s.Frame(ticks).Phase
}

// SubphaseTicks returns the number of ticks since the start of the current
// phase.
func (s *Schedule) SubphaseTicks(ticks int) int {
	return s.Frame(ticks).Subphase
}

// Contacts returns which legs are on the ground at the given tick.
func (s *Schedule) Contacts(ticks int) quadruped.ContactModes {
	return s.contacts[s.PhaseIndex(ticks)]
}
