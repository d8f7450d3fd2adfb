package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartMetricsRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCartMetrics(reg)

	m.IncSlotFailure("save")
	m.IncSlotFailure("save")
	m.IncSlotFailure("")
	m.IncCouponRejection("invalid")
	m.IncOrdersPlaced()

	assert.Equal(t, 2.0, counterValue(t, reg, "cart_slot_failures_total", "op", "save"))
	assert.Equal(t, 1.0, counterValue(t, reg, "cart_slot_failures_total", "op", "unknown"))
	assert.Equal(t, 1.0, counterValue(t, reg, "coupon_rejections_total", "reason", "invalid"))
	assert.Equal(t, 1.0, counterValue(t, reg, "orders_placed_total", "", ""))
}

func TestCartMetricsNilSafe(t *testing.T) {
	var m *CartMetrics
	m.IncSlotFailure("load")
	m.IncCouponRejection("invalid")
	m.IncOrdersPlaced()

	NewCartMetrics(nil).IncOrdersPlaced()
}

func counterValue(t *testing.T, reg *prometheus.Registry, name, label, value string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if label == "" || hasLabel(metric, label, value) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	t.Fatalf("metric %s{%s=%q} not found", name, label, value)
	return 0
}

func hasLabel(metric *dto.Metric, name, value string) bool {
	for _, pair := range metric.GetLabel() {
		if pair.GetName() == name && pair.GetValue() == value {
			return true
		}
	}
	return false
}
