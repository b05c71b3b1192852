// Package metrics exposes dispatch and state-stack counters to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/younwookim/gamebox/internal/application/event"
	"github.com/younwookim/gamebox/internal/application/state"
)

// Metrics holds the gamebox collectors. It implements dispatch.Observer and
// state.TransitionObserver.
type Metrics struct {
	EventsDispatched *prometheus.CounterVec
	HandlersInvoked  *prometheus.CounterVec
	HandlerErrors    *prometheus.CounterVec
	Transitions      *prometheus.CounterVec
	StackDepth       prometheus.Gauge
	TickDuration     prometheus.Histogram
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EventsDispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gamebox_events_dispatched_total",
				Help: "Total number of events dispatched to the current state by category",
			},
			[]string{"category"},
		),
		HandlersInvoked: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gamebox_handlers_invoked_total",
				Help: "Total number of handlers resolved for dispatched events by category",
			},
			[]string{"category"},
		),
		HandlerErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gamebox_handler_errors_total",
				Help: "Total number of handler errors by category",
			},
			[]string{"category"},
		),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gamebox_state_transitions_total",
				Help: "Total number of state stack transitions by kind",
			},
			[]string{"kind"},
		),
		StackDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gamebox_state_stack_depth",
			Help: "Number of states on the stack",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gamebox_tick_duration_seconds",
			Help:    "Wall time spent in one update tick",
			Buckets: []float64{.0005, .001, .002, .004, .008, .016, .033, .066},
		}),
	}

	reg.MustRegister(
		m.EventsDispatched,
		m.HandlersInvoked,
		m.HandlerErrors,
		m.Transitions,
		m.StackDepth,
		m.TickDuration,
	)
	return m
}

// ObserveDispatch records one dispatched event and the handlers it reached
func (m *Metrics) ObserveDispatch(category event.Category, handlers int) {
	label := category.String()
	m.EventsDispatched.WithLabelValues(label).Inc()
	m.HandlersInvoked.WithLabelValues(label).Add(float64(handlers))
}

// ObserveHandlerError records a handler returning an error
func (m *Metrics) ObserveHandlerError(category event.Category) {
	m.HandlerErrors.WithLabelValues(category.String()).Inc()
}

// ObserveTransition records a completed stack transition and the resulting depth
func (m *Metrics) ObserveTransition(t state.Transition, depth int) {
	m.Transitions.WithLabelValues(t.String()).Inc()
	m.StackDepth.Set(float64(depth))
}

// ObserveTick records the duration of one update tick
func (m *Metrics) ObserveTick(d time.Duration) {
	m.TickDuration.Observe(d.Seconds())
}
