package repositories

import (
	"errors"

	"finance-hub/internal/models"

	"gorm.io/gorm"
)

var ErrBudgetNotFound = errors.New("budget not found")

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	*recordStore[models.Budget]
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		recordStore: newRecordStore[models.Budget](db, "budgets", ErrBudgetNotFound,
			"category", "month_year", "monthly_limit", "current_spend", "created_at"),
	}
}

// ListByMonth lists the budgets of one YYYY-MM month ordered by category
func (r *budgetRepository) ListByMonth(monthYear string) ([]models.Budget, error) {
	return r.find(r.db.Model(&models.Budget{}).Where("month_year = ?", monthYear), "category")
}
