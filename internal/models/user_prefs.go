package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const DefaultCurrencySymbol = "$"

var ErrNegativeDailyGoal = errors.New("daily goal cannot be negative")

// UserPrefs holds the single set of user preferences. Only the first stored
// record is ever read.
type UserPrefs struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	MonthlyIncome        decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0" json:"monthly_income"`
	CurrencySymbol       string           `gorm:"type:varchar(8);not null;default:'$'" json:"currency_symbol"`
	NotificationsEnabled bool             `gorm:"not null" json:"notifications_enabled"`
	DailyGoal            *decimal.Decimal `gorm:"type:decimal(15,2)" json:"daily_goal,omitempty"`
	CreatedAt            time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for UserPrefs
func (p *UserPrefs) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CurrencySymbol == "" {
		p.CurrencySymbol = DefaultCurrencySymbol
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

// Validate validates the preference fields
func (p *UserPrefs) Validate() error {
	if p.DailyGoal != nil && p.DailyGoal.IsNegative() {
		return ErrNegativeDailyGoal
	}
	return nil
}

// TableName specifies the table name for GORM
func (UserPrefs) TableName() string {
	return "user_prefs"
}

// AggregationDefaults are the preferences assumed by the aggregator when none
// are stored: no income and the dollar sign.
func AggregationDefaults() UserPrefs {
	return UserPrefs{
		MonthlyIncome:        decimal.Zero,
		CurrencySymbol:       DefaultCurrencySymbol,
		NotificationsEnabled: true,
	}
}

// SettingsDefaults are the values pre-filled in the settings form when no
// preferences have been saved yet.
func SettingsDefaults() UserPrefs {
	zero := decimal.Zero
	return UserPrefs{
		MonthlyIncome:        decimal.NewFromInt(5000),
		CurrencySymbol:       DefaultCurrencySymbol,
		NotificationsEnabled: true,
		DailyGoal:            &zero,
	}
}
