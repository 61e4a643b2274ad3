package services_test

import (
	"time"

	"finance-hub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var evaluationTime = time.Date(2024, time.June, 15, 14, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return evaluationTime
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func daysAgo(n int) models.Date {
	return models.DateOf(evaluationTime).AddDays(-n)
}

func newTransaction(description, amount, category string, date models.Date) models.Transaction {
	return models.Transaction{
		ID:          uuid.New(),
		AccountID:   uuid.New(),
		Date:        date,
		Description: description,
		Amount:      dec(amount),
		Category:    category,
	}
}
