package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records cart persistence and pricing outcomes.
type CartMetrics struct {
	slotFailures     *prometheus.CounterVec
	couponRejections *prometheus.CounterVec
	ordersPlaced     prometheus.Counter
}

// NewCartMetrics registers the cart metrics on the provided registerer.
// A nil registerer yields a recorder that drops every observation.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	slotFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_slot_failures_total",
		Help: "Cart persistence slot failures by operation.",
	}, []string{"op"})
	couponRejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coupon_rejections_total",
		Help: "Rejected coupon applications by reason.",
	}, []string{"reason"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders accepted by the order service.",
	})
	reg.MustRegister(slotFailures, couponRejections, ordersPlaced)
	return &CartMetrics{
		slotFailures:     slotFailures,
		couponRejections: couponRejections,
		ordersPlaced:     ordersPlaced,
	}
}

func (m *CartMetrics) IncSlotFailure(op string) {
	if m == nil || m.slotFailures == nil {
		return
	}
	m.slotFailures.WithLabelValues(normalizeLabel(op)).Inc()
}

func (m *CartMetrics) IncCouponRejection(reason string) {
	if m == nil || m.couponRejections == nil {
		return
	}
	m.couponRejections.WithLabelValues(normalizeLabel(reason)).Inc()
}

func (m *CartMetrics) IncOrdersPlaced() {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
