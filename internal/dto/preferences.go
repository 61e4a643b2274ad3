package dto

import (
	"finance-hub/internal/models"
)

// SavePreferencesRequest represents the settings form. Omitted toggles stay enabled.
type SavePreferencesRequest struct {
	MonthlyIncome        LenientDecimal  `json:"monthly_income"`
	CurrencySymbol       string          `json:"currency_symbol" validate:"max=8"`
	NotificationsEnabled *bool           `json:"notifications_enabled"`
	DailyGoal            *LenientDecimal `json:"daily_goal"`
}

// ToModel converts the request into preferences ready to save
func (r SavePreferencesRequest) ToModel() *models.UserPrefs {
	prefs := &models.UserPrefs{
		MonthlyIncome:        r.MonthlyIncome.Decimal,
		CurrencySymbol:       r.CurrencySymbol,
		NotificationsEnabled: true,
	}
	if r.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *r.NotificationsEnabled
	}
	if r.DailyGoal != nil {
		goal := r.DailyGoal.Decimal
		prefs.DailyGoal = &goal
	}
	return prefs
}

// PreferencesResponse carries the preferences and whether they were ever saved
type PreferencesResponse struct {
	Preferences *models.UserPrefs `json:"preferences"`
	Stored      bool              `json:"stored"`
}
