// Package metrics exports the state of the control loop to Prometheus.
package metrics

import (
	"time"

	"github.com/0x49b/quadruped"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is a component which records the state after every tick.
//
// Metrics:
//   - quadruped_ticks_total - Ticks run by the controller
//   - quadruped_tick_duration_seconds - Time spent in each tick
//   - quadruped_behavior_state - 1 for the current behavior state, 0 for the rest
//   - quadruped_transitions_total{from,to} - Behavior state changes
//   - quadruped_rejected_events_total - Events with no transition from the current state
//   - quadruped_feet_in_contact - Feet on the ground, as of the last trotting tick
//   - quadruped_body_height_meters - Commanded height
type Metrics struct {
	Ticks          prometheus.Counter
	TickDuration   prometheus.Histogram
	BehaviorState  *prometheus.GaugeVec
	Transitions    *prometheus.CounterVec
	RejectedEvents prometheus.Counter
	FeetInContact  prometheus.Gauge
	Height         prometheus.Gauge

	last quadruped.BehaviorState
	seen bool
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Ticks: f.NewCounter(prometheus.CounterOpts{
			Name: "quadruped_ticks_total",
			Help: "Total number of control ticks run",
		}),

		TickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "quadruped_tick_duration_seconds",
			Help:    "Duration of each control tick in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 10),
		}),

		BehaviorState: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "quadruped_behavior_state",
			Help: "Current behavior state (1 for the active state)",
		}, []string{"state"}),

		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "quadruped_transitions_total",
			Help: "Total number of behavior state changes",
		}, []string{"from", "to"}),

		RejectedEvents: f.NewCounter(prometheus.CounterOpts{
			Name: "quadruped_rejected_events_total",
			Help: "Total number of events ignored by the current behavior state",
		}),

		FeetInContact: f.NewGauge(prometheus.GaugeOpts{
			Name: "quadruped_feet_in_contact",
			Help: "Number of feet on the ground",
		}),

		Height: f.NewGauge(prometheus.GaugeOpts{
			Name: "quadruped_body_height_meters",
			Help: "Commanded foot height relative to the body",
		}),
	}
}

func (m *Metrics) Boot() error {
	return nil
}

func (m *Metrics) Tick(now time.Time, state *quadruped.State) error {
	m.Ticks.Inc()

	s := state.BehaviorState
	if m.seen && s != m.last {
		m.Transitions.WithLabelValues(m.last.String(), s.String()).Inc()
	}

	if !m.seen || s != m.last {
		for _, x := range []quadruped.BehaviorState{quadruped.Deactivated, quadruped.Rest, quadruped.Trot, quadruped.Hop, quadruped.FinishHop} {
			v := 0.0
			if x == s {
				v = 1
			}
			m.BehaviorState.WithLabelValues(x.String()).Set(v)
		}
	}

	m.last = s
	m.seen = true

	n := 0
	for _, c := range state.ContactModes {
		if c {
			n += 1
		}
	}

	m.FeetInContact.Set(float64(n))
	m.Height.Set(state.Height)
	return nil
}

// ObserveTick records how long a tick took.
func (m *Metrics) ObserveTick(d time.Duration) {
	m.TickDuration.Observe(d.Seconds())
}

// Rejected counts an event which the controller ignored.
func (m *Metrics) Rejected() {
	m.RejectedEvents.Inc()
}
