package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) (*PrometheusMetrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, ok := NewPrometheusMetrics(reg).(*PrometheusMetrics)
	require.True(t, ok)
	return m, reg
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.IncrementCounter(MetricDetectionRun, map[string]string{"outcome": "created"})
	m.IncrementCounter(MetricDetectionRun, map[string]string{"outcome": "created"})
	m.IncrementCounter(MetricDetectionRun, map[string]string{"outcome": "none"})
	m.IncrementCounter(MetricSubscriptionCanceled, nil)
	m.IncrementCounter(MetricEventPublished, map[string]string{"type": "budget.over_limit", "status": "failed"})
	m.IncrementCounter(MetricExportGenerated, map[string]string{"format": "csv"})
	m.IncrementCounter(MetricDemoDataOperation, map[string]string{"operation": "seed"})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.detectionRuns.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.detectionRuns.WithLabelValues("none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.subscriptionsCanceled))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsPublished.WithLabelValues("budget.over_limit", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exportsGenerated.WithLabelValues("csv")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.demoDataOperations.WithLabelValues("seed")))
}

func TestPrometheusMetrics_DashboardCacheIgnoresMissingResult(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.IncrementCounter(MetricDashboardCache, nil)
	count, err := testutil.GatherAndCount(reg, "dashboard_cache_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	m.IncrementCounter(MetricDashboardCache, map[string]string{"result": "hit"})
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dashboardCache.WithLabelValues("hit")))
}

func TestPrometheusMetrics_Gauges(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.RecordGauge(MetricBudgetsOverLimit, 3, nil)
	m.RecordGauge(MetricSafeToSpend, 191.27, nil)
	m.RecordGauge(MetricCircuitBreakerState, float64(StateOpen), map[string]string{"service": "events"})

	assert.Equal(t, 3.0, testutil.ToFloat64(m.budgetsOverLimit))
	assert.Equal(t, 191.27, testutil.ToFloat64(m.safeToSpend))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.circuitBreakerState.WithLabelValues("events")))
}

func TestPrometheusMetrics_Durations(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.RecordProcessingTime(MetricBudgetRefreshTime, 12*time.Millisecond)
	m.RecordProcessingTime("unknown.metric", time.Second)

	count, err := testutil.GatherAndCount(reg, "budget_refresh_duration_milliseconds", "dashboard_build_duration_milliseconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
