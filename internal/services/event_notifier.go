package services

import (
	"context"
	"time"

	"finance-hub/internal/events"
	"finance-hub/internal/models"
)

const eventsServiceName = "events"

type eventNotifier struct {
	publisher      events.Publisher
	circuitBreaker CircuitBreakerInterface
	activityLogger ActivityLoggerInterface
	metrics        MetricsRecorderInterface
}

// NewEventNotifier creates a notifier that publishes through publisher while
// the circuit breaker is closed. Publish failures are logged and counted,
// never returned.
func NewEventNotifier(
	publisher events.Publisher,
	circuitBreaker CircuitBreakerInterface,
	activityLogger ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
) EventNotifierInterface {
	return &eventNotifier{
		publisher:      publisher,
		circuitBreaker: circuitBreaker,
		activityLogger: activityLogger,
		metrics:        metrics,
	}
}

// NewEventCircuitBreaker creates the breaker guarding the event publisher,
// reporting transitions to the activity log and the state gauge.
func NewEventCircuitBreaker(activityLogger ActivityLoggerInterface, metrics MetricsRecorderInterface) CircuitBreakerInterface {
	config := DefaultCircuitBreakerConfig()
	config.OnStateChange = func(from, to models.CircuitBreakerState) {
		activityLogger.LogCircuitBreakerStateChange(context.Background(), eventsServiceName, from.String(), to.String())
		metrics.RecordGauge(MetricCircuitBreakerState, float64(to), map[string]string{
			"service": eventsServiceName,
		})
	}
	return NewCircuitBreaker(config)
}

func (n *eventNotifier) Notify(ctx context.Context, eventType string, payload interface{}) {
	if n.circuitBreaker.IsOpen() {
		n.recordPublish(eventType, "skipped")
		return
	}

	event, err := events.NewEvent(eventType, time.Now(), payload)
	if err != nil {
		n.activityLogger.LogEventPublishFailed(ctx, eventType, err.Error())
		n.recordPublish(eventType, "encode_failed")
		return
	}

	if err := n.publisher.Publish(ctx, event); err != nil {
		n.circuitBreaker.RecordFailure()
		n.activityLogger.LogEventPublishFailed(ctx, eventType, err.Error())
		n.recordPublish(eventType, "failed")
		return
	}

	n.circuitBreaker.RecordSuccess()
	n.recordPublish(eventType, "success")
}

func (n *eventNotifier) recordPublish(eventType, status string) {
	n.metrics.IncrementCounter(MetricEventPublished, map[string]string{
		"type":   eventType,
		"status": status,
	})
}
