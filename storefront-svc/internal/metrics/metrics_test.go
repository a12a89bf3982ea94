package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorefrontCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStorefront(reg)

	m.OrderSubmitted("success")
	m.OrderSubmitted("success")
	m.PinAttempt("mismatch")
	m.ConciergeReply("")
	m.ServiceRequested("WATER")
	m.ObserveCall("create_order", 120*time.Millisecond)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	assert.Equal(t, 2.0, counterValue(t, mfs, "storefront_orders_total", "outcome", "success"))
	assert.Equal(t, 1.0, counterValue(t, mfs, "storefront_pin_attempts_total", "outcome", "mismatch"))
	assert.Equal(t, 1.0, counterValue(t, mfs, "storefront_concierge_replies_total", "outcome", "unknown"))
	assert.Equal(t, 1.0, counterValue(t, mfs, "storefront_service_requests_total", "type", "WATER"))
}

func TestNilStorefrontIsNoop(t *testing.T) {
	var m *Storefront
	assert.NotPanics(t, func() {
		m.OrderSubmitted("success")
		m.PinAttempt("authorized")
		m.ConciergeReply("error")
		m.ServiceRequested("BILL")
		m.ObserveCall("x", time.Second)
	})
	assert.NotPanics(t, func() { NewStorefront(nil).OrderSubmitted("success") })
}

func counterValue(t *testing.T, mfs []*dto.MetricFamily, name, label, value string) float64 {
	t.Helper()
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == label && pair.GetValue() == value {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{%s=%q} not found", name, label, value)
	return 0
}
