package services

import (
	"context"
	"log/slog"
	"time"

	"finance-hub/internal/models"

	"github.com/google/uuid"
)

type ActivityLogger struct {
	logger *slog.Logger
}

func NewActivityLogger(logger *slog.Logger) ActivityLoggerInterface {
	return &ActivityLogger{
		logger: logger,
	}
}

func (al *ActivityLogger) LogSubscriptionsDetected(ctx context.Context, proposals int, durationMs int64) {
	al.logger.InfoContext(ctx, "subscriptions detected",
		slog.String("event_type", "subscriptions_detected"),
		slog.Int("proposals", proposals),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActivityLogger) LogSubscriptionCanceled(ctx context.Context, subscriptionID uuid.UUID, name string) {
	al.logger.InfoContext(ctx, "subscription canceled",
		slog.String("event_type", "subscription_canceled"),
		slog.String("subscription_id", subscriptionID.String()),
		slog.String("name", name),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActivityLogger) LogBudgetSpendRefreshed(ctx context.Context, monthYear string, refreshed int, durationMs int64) {
	al.logger.InfoContext(ctx, "budget spend refreshed",
		slog.String("event_type", "budget_spend_refreshed"),
		slog.String("month_year", monthYear),
		slog.Int("refreshed", refreshed),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActivityLogger) LogBudgetsCreated(ctx context.Context, monthYear string, created int) {
	al.logger.InfoContext(ctx, "missing budgets created",
		slog.String("event_type", "budgets_created"),
		slog.String("month_year", monthYear),
		slog.Int("created", created),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActivityLogger) LogBudgetOverLimit(ctx context.Context, budgetID uuid.UUID, category string, spend, limit string) {
	al.logger.WarnContext(ctx, "budget over limit",
		slog.String("event_type", "budget_over_limit"),
		slog.String("budget_id", budgetID.String()),
		slog.String("category", category),
		slog.String("current_spend", spend),
		slog.String("monthly_limit", limit),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActivityLogger) LogDemoDataSeeded(ctx context.Context, counts models.RecordCounts) {
	al.logger.InfoContext(ctx, "demo data seeded",
		slog.String("event_type", "demo_data_seeded"),
		slog.Int64("accounts", counts.Accounts),
		slog.Int64("transactions", counts.Transactions),
		slog.Int64("subscriptions", counts.Subscriptions),
		slog.Int64("budgets", counts.Budgets),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActivityLogger) LogDataWiped(ctx context.Context) {
	al.logger.WarnContext(ctx, "all data wiped",
		slog.String("event_type", "data_wiped"),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActivityLogger) LogDemoBankConnected(ctx context.Context, accounts int) {
	al.logger.InfoContext(ctx, "demo bank connected",
		slog.String("event_type", "demo_bank_connected"),
		slog.Int("accounts", accounts),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActivityLogger) LogExportGenerated(ctx context.Context, format string, records int) {
	al.logger.InfoContext(ctx, "export generated",
		slog.String("event_type", "export_generated"),
		slog.String("format", format),
		slog.Int("records", records),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActivityLogger) LogEventPublishFailed(ctx context.Context, eventType string, errorMsg string) {
	al.logger.WarnContext(ctx, "event publish failed",
		slog.String("event_type", "event_publish_failed"),
		slog.String("domain_event", eventType),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *ActivityLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if traceID, ok := ctx.Value("trace_id").(string); ok {
		return traceID
	}

	return ""
}
