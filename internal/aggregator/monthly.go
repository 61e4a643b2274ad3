package aggregator

import (
	"time"

	"finance-hub/internal/models"

	"github.com/shopspring/decimal"
)

var (
	hundred        = decimal.NewFromInt(100)
	warningPercent = decimal.NewFromInt(80)
	overPercent    = decimal.NewFromInt(100)
)

// MonthWindow is the first through last calendar day of a month, inclusive.
type MonthWindow struct {
	Start models.Date
	End   models.Date
}

// CurrentMonth returns the window of the month containing now.
func CurrentMonth(now time.Time) MonthWindow {
	start := models.NewDate(now.Year(), now.Month(), 1)
	end := models.NewDate(now.Year(), now.Month(), DaysInMonth(now))
	return MonthWindow{Start: start, End: end}
}

// Contains reports whether d falls within the window.
func (w MonthWindow) Contains(d models.Date) bool {
	return d.Between(w.Start, w.End)
}

// MonthYear formats the window as YYYY-MM.
func (w MonthWindow) MonthYear() string {
	return w.Start.Format(models.MonthYearLayout)
}

// DaysInMonth returns the number of days of the month containing now.
func DaysInMonth(now time.Time) int {
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysRemaining counts today and every following day of the month. It is 1
// on the last day of the month.
func DaysRemaining(now time.Time) int {
	return DaysInMonth(now) - now.Day() + 1
}

// MonthlyTotals sums income and expenses dated in the current month. Expenses
// are reported as a positive amount.
func MonthlyTotals(transactions []models.Transaction, now time.Time) models.MonthlyTotals {
	window := CurrentMonth(now)
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		if !window.Contains(t.Date) {
			continue
		}
		switch {
		case t.IsIncome():
			income = income.Add(t.Amount)
		case t.IsExpense():
			expenses = expenses.Add(t.Amount.Abs())
		}
	}

	return models.MonthlyTotals{
		Income:   income,
		Expenses: expenses,
		NetFlow:  income.Sub(expenses),
	}
}

// BudgetSpend is the recomputed spend of one current-month budget.
type BudgetSpend struct {
	Budget  models.Budget
	Spend   decimal.Decimal
	Changed bool
}

// CurrentMonthBudgets filters budgets to the month containing now.
func CurrentMonthBudgets(budgets []models.Budget, now time.Time) []models.Budget {
	monthYear := models.MonthYearOf(now)
	var current []models.Budget
	for _, b := range budgets {
		if b.MonthYear == monthYear {
			current = append(current, b)
		}
	}
	return current
}

// SpendByCategory recomputes current_spend for every current-month budget.
// Changed is set only when the computed value differs from the stored one,
// which is the signal that a write is needed. The returned budgets carry the
// recomputed spend.
func SpendByCategory(budgets []models.Budget, transactions []models.Transaction, now time.Time) []BudgetSpend {
	window := CurrentMonth(now)
	spent := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		if !t.IsExpense() || !window.Contains(t.Date) {
			continue
		}
		spent[t.Category] = spent[t.Category].Add(t.Amount.Abs())
	}

	current := CurrentMonthBudgets(budgets, now)
	result := make([]BudgetSpend, 0, len(current))
	for _, b := range current {
		spend := spent[b.Category]
		changed := !spend.Equal(b.CurrentSpend)
		b.CurrentSpend = spend
		result = append(result, BudgetSpend{Budget: b, Spend: spend, Changed: changed})
	}
	return result
}

// BudgetTotals sums limits and spend over a set of budgets.
type BudgetTotals struct {
	TotalBudget decimal.Decimal
	TotalSpent  decimal.Decimal
	Remaining   decimal.Decimal
}

// SummarizeBudgets totals the given budgets. Remaining may be negative.
func SummarizeBudgets(budgets []models.Budget) BudgetTotals {
	totalBudget := decimal.Zero
	totalSpent := decimal.Zero
	for _, b := range budgets {
		totalBudget = totalBudget.Add(b.MonthlyLimit)
		totalSpent = totalSpent.Add(b.CurrentSpend)
	}
	return BudgetTotals{
		TotalBudget: totalBudget,
		TotalSpent:  totalSpent,
		Remaining:   totalBudget.Sub(totalSpent),
	}
}

// SafeToSpend is the daily amount left for the rest of the month once this
// month's expenses are taken out of the monthly income. It never goes below 0.
func SafeToSpend(monthlyIncome, monthlyExpenses decimal.Decimal, now time.Time) decimal.Decimal {
	daysRemaining := DaysRemaining(now)
	if daysRemaining <= 0 {
		return decimal.Zero
	}

	remaining := monthlyIncome.Sub(monthlyExpenses)
	daily := remaining.DivRound(decimal.NewFromInt(int64(daysRemaining)), 2)
	if daily.IsNegative() {
		return decimal.Zero
	}
	return daily
}

// BudgetStatus is the classification of a budget's spend against its limit.
type BudgetStatus struct {
	Status            string
	Percentage        decimal.Decimal
	DisplayPercentage decimal.Decimal
}

// ClassifyBudget derives the status from the raw percentage; the display
// percentage is clamped to 100. A zero limit with any spend counts as over.
func ClassifyBudget(b models.Budget) BudgetStatus {
	var pct decimal.Decimal
	switch {
	case b.MonthlyLimit.IsPositive():
		pct = b.CurrentSpend.Div(b.MonthlyLimit).Mul(hundred)
	case b.CurrentSpend.IsPositive():
		pct = overPercent
	default:
		pct = decimal.Zero
	}

	status := models.BudgetStatusGood
	switch {
	case pct.GreaterThanOrEqual(overPercent):
		status = models.BudgetStatusOver
	case pct.GreaterThanOrEqual(warningPercent):
		status = models.BudgetStatusWarning
	}

	return BudgetStatus{
		Status:            status,
		Percentage:        pct.Round(2),
		DisplayPercentage: decimal.Min(pct, hundred).Round(2),
	}
}
