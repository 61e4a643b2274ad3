package services

import (
	"context"
	"log/slog"
	"time"

	"finance-hub/internal/aggregator"
	"finance-hub/internal/events"
	"finance-hub/internal/models"
	"finance-hub/internal/repositories"

	"github.com/google/uuid"
)

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepositoryInterface
	loader           snapshotLoader
	notifier         EventNotifierInterface
	activityLogger   ActivityLoggerInterface
	metrics          MetricsRecorderInterface
	logger           *slog.Logger
	now              func() time.Time
}

// NewSubscriptionService creates a subscription service
func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	notifier EventNotifierInterface,
	activityLogger ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SubscriptionServiceInterface {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		loader: snapshotLoader{
			transactionRepo:  transactionRepo,
			subscriptionRepo: subscriptionRepo,
		},
		notifier:       notifier,
		activityLogger: activityLogger,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *subscriptionService) ListSubscriptions(sortKey string) ([]models.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.List(sortKey)
	if err != nil {
		return nil, storeError(err, nil, nil, "list subscriptions")
	}
	return subscriptions, nil
}

func (s *subscriptionService) CreateSubscription(subscription *models.Subscription) (*models.Subscription, error) {
	if err := subscription.Validate(); err != nil {
		return nil, validationError(err)
	}
	if err := s.subscriptionRepo.Create(subscription); err != nil {
		return nil, storeError(err, nil, nil, "create subscription")
	}
	return subscription, nil
}

// CancelSubscription moves a subscription to the canceled state. Canceling
// twice is rejected; there is no way back to active.
func (s *subscriptionService) CancelSubscription(ctx context.Context, id uuid.UUID) (*models.Subscription, error) {
	subscription, err := s.subscriptionRepo.GetByID(id)
	if err != nil {
		return nil, storeError(err, repositories.ErrSubscriptionNotFound, ErrSubscriptionNotFound, "get subscription")
	}

	if err := subscription.Cancel(); err != nil {
		return nil, err
	}

	updated, err := s.subscriptionRepo.Update(id, map[string]interface{}{"is_canceled": true})
	if err != nil {
		return nil, storeError(err, repositories.ErrSubscriptionNotFound, ErrSubscriptionNotFound, "cancel subscription")
	}

	s.activityLogger.LogSubscriptionCanceled(ctx, updated.ID, updated.Name)
	s.metrics.IncrementCounter(MetricSubscriptionCanceled, nil)
	s.notifier.Notify(ctx, events.TypeSubscriptionCanceled, map[string]interface{}{
		"subscription_id": updated.ID,
		"name":            updated.Name,
		"monthly_cost":    updated.MonthlyCost,
	})
	return updated, nil
}

func (s *subscriptionService) DeleteSubscription(id uuid.UUID) error {
	if err := s.subscriptionRepo.Delete(id); err != nil {
		return storeError(err, repositories.ErrSubscriptionNotFound, ErrSubscriptionNotFound, "delete subscription")
	}
	return nil
}

// GetCancelGuide returns cancellation steps for a subscription, canceled or not
func (s *subscriptionService) GetCancelGuide(id uuid.UUID) (*models.CancelGuide, error) {
	subscription, err := s.subscriptionRepo.GetByID(id)
	if err != nil {
		return nil, storeError(err, repositories.ErrSubscriptionNotFound, ErrSubscriptionNotFound, "get subscription")
	}
	guide := aggregator.CancelGuideFor(*subscription)
	return &guide, nil
}

// DetectSubscriptions runs recurring-charge detection over the stored
// transactions and persists every proposal with one bulk create. It returns
// the created subscriptions, which is empty when nothing new was found.
func (s *subscriptionService) DetectSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	startTime := time.Now()

	snap, err := s.loader.load(ctx, withTransactions|withSubscriptions)
	if err != nil {
		s.logger.Error("failed to load records for detection", "error", err)
		return nil, err
	}

	proposals := aggregator.DetectRecurring(snap.Transactions, snap.Subscriptions, s.now())
	s.metrics.RecordGauge(MetricDetectionProposals, float64(len(proposals)), nil)

	if len(proposals) == 0 {
		s.recordDetection(ctx, "none", 0, startTime)
		return []models.Subscription{}, nil
	}

	created, err := s.subscriptionRepo.BulkCreate(proposals)
	if err != nil {
		s.metrics.IncrementCounter(MetricDetectionRun, map[string]string{"outcome": "failed"})
		return nil, storeError(err, nil, nil, "save detected subscriptions")
	}

	s.recordDetection(ctx, "created", len(created), startTime)

	names := make([]string, 0, len(created))
	for _, subscription := range created {
		names = append(names, subscription.Name)
	}
	s.notifier.Notify(ctx, events.TypeSubscriptionsDetected, map[string]interface{}{
		"count": len(created),
		"names": names,
	})
	return created, nil
}

func (s *subscriptionService) recordDetection(ctx context.Context, outcome string, created int, startTime time.Time) {
	duration := time.Since(startTime)
	s.activityLogger.LogSubscriptionsDetected(ctx, created, duration.Milliseconds())
	s.metrics.RecordProcessingTime(MetricDetectionDuration, duration)
	s.metrics.IncrementCounter(MetricDetectionRun, map[string]string{"outcome": outcome})
}

func (s *subscriptionService) GetSummary(ctx context.Context) (*models.SubscriptionSummary, error) {
	snap, err := s.loader.load(ctx, withSubscriptions)
	if err != nil {
		return nil, err
	}
	summary := aggregator.SummarizeSubscriptions(snap.Subscriptions, s.now())
	return &summary, nil
}
