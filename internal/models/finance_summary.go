package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyTotals contains income and expenses of one calendar month
type MonthlyTotals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	NetFlow  decimal.Decimal `json:"net_flow"`
}

// Dashboard is the home screen summary
type Dashboard struct {
	GeneratedAt             time.Time       `json:"generated_at"`
	CurrencySymbol          string          `json:"currency_symbol"`
	TotalBalance            decimal.Decimal `json:"total_balance"`
	Month                   string          `json:"month"`
	MonthlyTotals           MonthlyTotals   `json:"monthly_totals"`
	MonthlySubscriptionCost decimal.Decimal `json:"monthly_subscription_cost"`
	ActiveSubscriptionCount int             `json:"active_subscription_count"`
	SafeToSpendToday        decimal.Decimal `json:"safe_to_spend_today"`
	DaysRemainingInMonth    int             `json:"days_remaining_in_month"`
	TopAccounts             []Account       `json:"top_accounts"`
	RecentTransactions      []Transaction   `json:"recent_transactions"`
	ActiveSubscriptions     []Subscription  `json:"active_subscriptions"`
}

// BudgetLine is one budget together with its derived status
type BudgetLine struct {
	Budget            Budget          `json:"budget"`
	Percentage        decimal.Decimal `json:"percentage"`
	DisplayPercentage decimal.Decimal `json:"display_percentage"`
	Status            string          `json:"status"`
	Remaining         decimal.Decimal `json:"remaining"`
}

// BudgetOverview is the budgets screen for the current month
type BudgetOverview struct {
	MonthYear            string          `json:"month_year"`
	Budgets              []BudgetLine    `json:"budgets"`
	TotalBudget          decimal.Decimal `json:"total_budget"`
	TotalSpent           decimal.Decimal `json:"total_spent"`
	Remaining            decimal.Decimal `json:"remaining"`
	MonthlyExpenses      decimal.Decimal `json:"monthly_expenses"`
	SafeToSpendToday     decimal.Decimal `json:"safe_to_spend_today"`
	DaysRemainingInMonth int             `json:"days_remaining_in_month"`
	RefreshedCount       int             `json:"refreshed_count"`
	CurrencySymbol       string          `json:"currency_symbol"`
}

// SubscriptionSummary aggregates subscription costs and renewals
type SubscriptionSummary struct {
	MonthlyCost      decimal.Decimal `json:"monthly_cost"`
	AnnualCost       decimal.Decimal `json:"annual_cost"`
	ActiveCount      int             `json:"active_count"`
	CanceledCount    int             `json:"canceled_count"`
	UpcomingRenewals []Subscription  `json:"upcoming_renewals"`
}

// RecordCounts reports how many records of each kind are stored
type RecordCounts struct {
	Accounts      int64 `json:"accounts"`
	Transactions  int64 `json:"transactions"`
	Subscriptions int64 `json:"subscriptions"`
	Budgets       int64 `json:"budgets"`
}

// DataExport is the full JSON export document
type DataExport struct {
	ExportedAt    time.Time      `json:"exported_at"`
	Accounts      []Account      `json:"accounts"`
	Transactions  []Transaction  `json:"transactions"`
	Subscriptions []Subscription `json:"subscriptions"`
	Budgets       []Budget       `json:"budgets"`
	Preferences   *UserPrefs     `json:"preferences"`
}

// TransactionExplanation describes a stored transaction in plain words
type TransactionExplanation struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	Description   string    `json:"description"`
	Explanation   string    `json:"explanation"`
	Tip           string    `json:"tip"`
}

// CancelGuide tells how to cancel a subscription with its provider
type CancelGuide struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	Name           string    `json:"name"`
	Steps          string    `json:"steps"`
	URL            string    `json:"url"`
}
