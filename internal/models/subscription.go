package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusCanceled = "canceled"
)

var (
	ErrSubscriptionNameRequired    = errors.New("subscription name is required")
	ErrInvalidSubscriptionCategory = errors.New("invalid subscription category")
	ErrNegativeMonthlyCost         = errors.New("monthly cost cannot be negative")
	ErrRenewalDateRequired         = errors.New("next renewal date is required")
	ErrSubscriptionAlreadyCanceled = errors.New("subscription is already canceled")
)

// Subscription is a recurring charge. Its only lifecycle transition is
// active -> canceled, and a canceled subscription never becomes active again.
type Subscription struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name                    string          `gorm:"type:varchar(255);not null" json:"name"`
	MonthlyCost             decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"monthly_cost"`
	NextRenewalDate         Date            `gorm:"not null;index" json:"next_renewal_date"`
	Category                string          `gorm:"type:varchar(50);not null" json:"category"`
	IsCanceled              bool            `gorm:"not null;default:false" json:"is_canceled"`
	DetectedFromTransaction *uuid.UUID      `gorm:"type:uuid" json:"detected_from_transaction,omitempty"`
	CreatedAt               time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt               time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Subscription
func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// Validate validates the subscription fields
func (s *Subscription) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrSubscriptionNameRequired
	}
	if s.MonthlyCost.IsNegative() {
		return ErrNegativeMonthlyCost
	}
	if s.NextRenewalDate.IsEmpty() {
		return ErrRenewalDateRequired
	}
	if !IsValidSubscriptionCategory(s.Category) {
		return ErrInvalidSubscriptionCategory
	}
	return nil
}

// TableName specifies the table name for GORM
func (Subscription) TableName() string {
	return "subscriptions"
}

// Status returns the lifecycle state of the subscription
func (s *Subscription) Status() string {
	if s.IsCanceled {
		return SubscriptionStatusCanceled
	}
	return SubscriptionStatusActive
}

// IsActive reports whether the subscription still renews
func (s *Subscription) IsActive() bool {
	return !s.IsCanceled
}

// Cancel moves the subscription to the canceled state
func (s *Subscription) Cancel() error {
	if s.IsCanceled {
		return ErrSubscriptionAlreadyCanceled
	}
	s.IsCanceled = true
	return nil
}
