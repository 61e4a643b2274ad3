package repositories

import (
	"errors"

	"finance-hub/internal/models"

	"gorm.io/gorm"
)

var ErrSubscriptionNotFound = errors.New("subscription not found")

// subscriptionRepository implements SubscriptionRepositoryInterface
type subscriptionRepository struct {
	*recordStore[models.Subscription]
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepositoryInterface {
	return &subscriptionRepository{
		recordStore: newRecordStore[models.Subscription](db, "subscriptions", ErrSubscriptionNotFound,
			"name", "monthly_cost", "next_renewal_date", "category", "created_at"),
	}
}
