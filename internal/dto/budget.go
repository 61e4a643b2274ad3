package dto

import (
	"finance-hub/internal/models"
)

// CreateBudgetRequest represents the request payload for creating a budget.
// An empty month_year means the current month.
type CreateBudgetRequest struct {
	Category     string         `json:"category" validate:"required,spending_category"`
	MonthlyLimit LenientDecimal `json:"monthly_limit"`
	MonthYear    string         `json:"month_year" validate:"omitempty,month_year"`
	CurrentSpend LenientDecimal `json:"current_spend"`
}

// ToModel converts the request into an unsaved budget for monthYear when the
// request names no month
func (r CreateBudgetRequest) ToModel(currentMonth string) *models.Budget {
	monthYear := r.MonthYear
	if monthYear == "" {
		monthYear = currentMonth
	}
	return &models.Budget{
		Category:     r.Category,
		MonthlyLimit: r.MonthlyLimit.Decimal,
		MonthYear:    monthYear,
		CurrentSpend: r.CurrentSpend.Decimal,
	}
}

// UpdateBudgetLimitRequest changes the monthly limit of a budget
type UpdateBudgetLimitRequest struct {
	MonthlyLimit LenientDecimal `json:"monthly_limit"`
}

// CreateMissingBudgetsResponse lists the budgets added with default limits
type CreateMissingBudgetsResponse struct {
	Budgets []models.Budget `json:"budgets"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
}
