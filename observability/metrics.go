package observability

import (
	"circuits-lab/domain/signal"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "circuits"

// Metrics counts what the transmitter puts on the wire. A nil *Metrics is
// valid and records nothing, so components can run without a registry.
type Metrics struct {
	Emissions *prometheus.CounterVec
	Packets   prometheus.Counter
	Timeouts  prometheus.Counter
	Dropped   prometheus.Counter
	Retries   prometheus.Counter
	Exhausted prometheus.Counter
}

// NewMetrics registers the transmitter metrics on reg.
// Pass prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Emissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signal",
			Name:      "emissions_total",
			Help:      "Role changes requested on the signal channel",
		}, []string{"code", "ok"}),

		Packets: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "framer",
			Name:      "packets_total",
			Help:      "Packets closed by an END signal",
		}),

		Timeouts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "framer",
			Name:      "timeouts_total",
			Help:      "Packets abandoned because the bit gap exceeded the channel timeout",
		}),

		Dropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "framer",
			Name:      "dropped_characters_total",
			Help:      "Characters skipped because the alphabet has no index for them",
		}),

		Retries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transport",
			Name:      "retries_total",
			Help:      "Requests retried after a transient connection failure",
		}),

		Exhausted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transport",
			Name:      "exhausted_total",
			Help:      "Requests given up after the retry budget was spent",
		}),
	}
}

func (m *Metrics) ObserveEmission(code signal.Code, ok bool) {
	if m == nil {
		return
	}
	m.Emissions.WithLabelValues(code.String(), strconv.FormatBool(ok)).Inc()
}

func (m *Metrics) ObservePacket() {
	if m == nil {
		return
	}
	m.Packets.Inc()
}

func (m *Metrics) ObserveTimeout() {
	if m == nil {
		return
	}
	m.Timeouts.Inc()
}

func (m *Metrics) ObserveDropped(n int) {
	if m == nil || n == 0 {
		return
	}
	m.Dropped.Add(float64(n))
}

func (m *Metrics) ObserveRetry() {
	if m == nil {
		return
	}
	m.Retries.Inc()
}

func (m *Metrics) ObserveExhausted() {
	if m == nil {
		return
	}
	m.Exhausted.Inc()
}
