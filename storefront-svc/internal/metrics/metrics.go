package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Storefront holds the counters of the guest and staff flows. A nil
// *Storefront is valid and records nothing.
type Storefront struct {
	orders           *prometheus.CounterVec
	pinAttempts      *prometheus.CounterVec
	conciergeReplies *prometheus.CounterVec
	serviceRequests  *prometheus.CounterVec
	externalCalls    *prometheus.HistogramVec
}

func NewStorefront(reg prometheus.Registerer) *Storefront {
	if reg == nil {
		return &Storefront{}
	}
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_orders_total",
		Help: "Order submissions by outcome.",
	}, []string{"outcome"})
	pinAttempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_pin_attempts_total",
		Help: "Staff gate verifications by outcome.",
	}, []string{"outcome"})
	conciergeReplies := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_concierge_replies_total",
		Help: "Concierge replies by outcome.",
	}, []string{"outcome"})
	serviceRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_service_requests_total",
		Help: "Table service requests by type.",
	}, []string{"type"})
	externalCalls := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_external_call_seconds",
		Help:    "Duration of calls to external collaborators.",
		Buckets: prometheus.DefBuckets,
	}, []string{"call"})
	reg.MustRegister(orders, pinAttempts, conciergeReplies, serviceRequests, externalCalls)
	return &Storefront{
		orders:           orders,
		pinAttempts:      pinAttempts,
		conciergeReplies: conciergeReplies,
		serviceRequests:  serviceRequests,
		externalCalls:    externalCalls,
	}
}

func (m *Storefront) OrderSubmitted(outcome string) {
	if m == nil || m.orders == nil {
		return
	}
	m.orders.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (m *Storefront) PinAttempt(outcome string) {
	if m == nil || m.pinAttempts == nil {
		return
	}
	m.pinAttempts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (m *Storefront) ConciergeReply(outcome string) {
	if m == nil || m.conciergeReplies == nil {
		return
	}
	m.conciergeReplies.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func (m *Storefront) ServiceRequested(kind string) {
	if m == nil || m.serviceRequests == nil {
		return
	}
	m.serviceRequests.WithLabelValues(normalizeLabel(kind)).Inc()
}

func (m *Storefront) ObserveCall(call string, d time.Duration) {
	if m == nil || m.externalCalls == nil {
		return
	}
	m.externalCalls.WithLabelValues(normalizeLabel(call)).Observe(d.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
