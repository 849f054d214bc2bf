package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRelay_Counters(t *testing.T) {
	m := NewRelay(prometheus.NewRegistry())

	m.Update("user_message")
	m.Update("user_message")
	m.Relayed("to_operator", "photo")
	m.Rejected("size_limit")
	m.DeliveryFailed("user")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.updates.WithLabelValues("user_message")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.relayed.WithLabelValues("to_operator", "photo")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejected.WithLabelValues("size_limit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("user")))
}

func TestRelay_NilIsNoop(t *testing.T) {
	var m *Relay
	assert.NotPanics(t, func() {
		m.Update("control")
		m.Relayed("to_user", "text")
		m.Rejected("unsupported")
		m.DeliveryFailed("operator")
	})
}

func TestNewRegistry_ServesRelayMetrics(t *testing.T) {
	reg := NewRegistry()
	m := NewRelay(reg)
	m.Update("control")

	n, err := testutil.GatherAndCount(reg, "relaybot_updates_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
