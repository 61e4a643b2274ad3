package dto

import (
	"finance-hub/internal/models"

	"github.com/google/uuid"
)

// CreateSubscriptionRequest represents the request payload for adding a subscription by hand
type CreateSubscriptionRequest struct {
	Name                    string         `json:"name" validate:"required,max=255"`
	MonthlyCost             LenientDecimal `json:"monthly_cost"`
	NextRenewalDate         models.Date    `json:"next_renewal_date"`
	Category                string         `json:"category" validate:"required,subscription_category"`
	IsCanceled              bool           `json:"is_canceled"`
	DetectedFromTransaction *uuid.UUID     `json:"detected_from_transaction"`
}

// ToModel converts the request into an unsaved subscription
func (r CreateSubscriptionRequest) ToModel() *models.Subscription {
	return &models.Subscription{
		Name:                    r.Name,
		MonthlyCost:             r.MonthlyCost.Decimal,
		NextRenewalDate:         r.NextRenewalDate,
		Category:                r.Category,
		IsCanceled:              r.IsCanceled,
		DetectedFromTransaction: r.DetectedFromTransaction,
	}
}

// DetectSubscriptionsResponse lists the subscriptions created by a detection run
type DetectSubscriptionsResponse struct {
	Subscriptions []models.Subscription `json:"subscriptions"`
	Count         int                   `json:"count"`
	Message       string                `json:"message"`
}
