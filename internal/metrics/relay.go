package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "relaybot"

// Relay holds the relay counters. A nil *Relay is a no-op.
type Relay struct {
	updates  *prometheus.CounterVec
	relayed  *prometheus.CounterVec
	rejected *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func NewRelay(reg prometheus.Registerer) *Relay {
	m := &Relay{
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Inbound updates by route.",
		}, []string{"route"}),
		relayed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relayed_total",
			Help:      "Items relayed by direction and content kind.",
		}, []string{"direction", "kind"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_total",
			Help:      "Items not relayed by reason.",
		}, []string{"reason"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delivery_failures_total",
			Help:      "Failed outbound sends by direction.",
		}, []string{"direction"}),
	}
	reg.MustRegister(m.updates, m.relayed, m.rejected, m.failures)
	return m
}

func (m *Relay) Update(route string) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(route).Inc()
}

func (m *Relay) Relayed(direction, kind string) {
	if m == nil {
		return
	}
	m.relayed.WithLabelValues(direction, kind).Inc()
}

func (m *Relay) Rejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Relay) DeliveryFailed(direction string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(direction).Inc()
}
