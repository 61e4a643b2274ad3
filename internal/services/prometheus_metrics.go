package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricDetectionRun         = "subscription.detection.run"
	MetricDetectionDuration    = "subscription.detection"
	MetricDetectionProposals   = "subscription.detection.proposals"
	MetricSubscriptionCanceled = "subscription.canceled"
	MetricBudgetRefreshWrite   = "budget.refresh.write"
	MetricBudgetRefreshTime    = "budget.refresh"
	MetricBudgetsOverLimit     = "budget.over_limit"
	MetricBudgetsCreated       = "budget.created"
	MetricDashboardCache       = "dashboard.cache"
	MetricDashboardBuild       = "dashboard.build"
	MetricSafeToSpend          = "dashboard.safe_to_spend"
	MetricEventPublished       = "event.published"
	MetricCircuitBreakerState  = "circuit_breaker.state"
	MetricExportGenerated      = "export.generated"
	MetricDemoDataOperation    = "demo_data.operation"
)

type PrometheusMetrics struct {
	detectionRuns         *prometheus.CounterVec
	detectionDuration     prometheus.Histogram
	detectionProposals    prometheus.Gauge
	subscriptionsCanceled prometheus.Counter
	budgetRefreshWrites   prometheus.Counter
	budgetRefreshDuration prometheus.Histogram
	budgetsOverLimit      prometheus.Gauge
	budgetsCreated        prometheus.Counter
	dashboardCache        *prometheus.CounterVec
	dashboardDuration     prometheus.Histogram
	safeToSpend           prometheus.Gauge
	eventsPublished       *prometheus.CounterVec
	circuitBreakerState   *prometheus.GaugeVec
	exportsGenerated      *prometheus.CounterVec
	demoDataOperations    *prometheus.CounterVec
}

// NewPrometheusMetrics registers the domain collectors with reg. Passing
// prometheus.DefaultRegisterer exposes them on the /metrics endpoint.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		detectionRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subscription_detection_runs_total",
				Help: "Total number of recurring-charge detection runs",
			},
			[]string{"outcome"},
		),
		detectionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "subscription_detection_duration_milliseconds",
				Help:    "Recurring-charge detection duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		detectionProposals: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "subscription_detection_last_proposals",
				Help: "Number of subscriptions proposed by the last detection run",
			},
		),
		subscriptionsCanceled: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "subscriptions_canceled_total",
				Help: "Total number of subscriptions canceled",
			},
		),
		budgetRefreshWrites: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_refresh_writes_total",
				Help: "Total number of budget current_spend values rewritten",
			},
		),
		budgetRefreshDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_refresh_duration_milliseconds",
				Help:    "Budget spend refresh duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		budgetsOverLimit: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "budgets_over_limit",
				Help: "Current-month budgets whose spend reached the limit",
			},
		),
		budgetsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budgets_created_total",
				Help: "Total number of budgets created with default limits",
			},
		),
		dashboardCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_cache_requests_total",
				Help: "Dashboard cache lookups by result",
			},
			[]string{"result"},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_build_duration_milliseconds",
				Help:    "Dashboard build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		safeToSpend: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "safe_to_spend_today",
				Help: "Last computed safe-to-spend amount for today",
			},
		),
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_events_published_total",
				Help: "Domain events handed to the publisher",
			},
			[]string{"type", "status"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		exportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exports_generated_total",
				Help: "Total number of exports generated",
			},
			[]string{"format"},
		),
		demoDataOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "demo_data_operations_total",
				Help: "Demo data seeds, wipes and bank connects",
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricDetectionRun:
		m.detectionRuns.WithLabelValues(tags["outcome"]).Inc()
	case MetricSubscriptionCanceled:
		m.subscriptionsCanceled.Inc()
	case MetricBudgetRefreshWrite:
		m.budgetRefreshWrites.Inc()
	case MetricBudgetsCreated:
		m.budgetsCreated.Inc()
	case MetricDashboardCache:
		if result := tags["result"]; result != "" {
			m.dashboardCache.WithLabelValues(result).Inc()
		}
	case MetricEventPublished:
		m.eventsPublished.WithLabelValues(tags["type"], tags["status"]).Inc()
	case MetricExportGenerated:
		m.exportsGenerated.WithLabelValues(tags["format"]).Inc()
	case MetricDemoDataOperation:
		m.demoDataOperations.WithLabelValues(tags["operation"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricDetectionDuration:
		m.detectionDuration.Observe(float64(duration.Milliseconds()))
	case MetricBudgetRefreshTime:
		m.budgetRefreshDuration.Observe(float64(duration.Milliseconds()))
	case MetricDashboardBuild:
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricDetectionProposals:
		m.detectionProposals.Set(value)
	case MetricBudgetsOverLimit:
		m.budgetsOverLimit.Set(value)
	case MetricSafeToSpend:
		m.safeToSpend.Set(value)
	case MetricCircuitBreakerState:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
