package aggregator

import (
	"sort"
	"time"

	"finance-hub/internal/models"

	"github.com/shopspring/decimal"
)

// RenewalHorizonDays is the look-ahead used for upcoming renewals
const RenewalHorizonDays = 7

var monthsPerYear = decimal.NewFromInt(12)

// ActiveSubscriptions keeps the non-canceled subscriptions, preserving order.
func ActiveSubscriptions(subscriptions []models.Subscription) []models.Subscription {
	active := []models.Subscription{}
	for _, s := range subscriptions {
		if s.IsActive() {
			active = append(active, s)
		}
	}
	return active
}

// UpcomingRenewals returns the active subscriptions renewing between today
// and today plus seven days, both inclusive, ordered by renewal date.
func UpcomingRenewals(subscriptions []models.Subscription, now time.Time) []models.Subscription {
	today := models.DateOf(now)
	horizon := today.AddDays(RenewalHorizonDays)

	upcoming := []models.Subscription{}
	for _, s := range subscriptions {
		if s.IsActive() && s.NextRenewalDate.Between(today, horizon) {
			upcoming = append(upcoming, s)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].NextRenewalDate.Before(upcoming[j].NextRenewalDate)
	})
	return upcoming
}

// MonthlySubscriptionCost sums monthly_cost over active subscriptions.
func MonthlySubscriptionCost(subscriptions []models.Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, s := range subscriptions {
		if s.IsActive() {
			total = total.Add(s.MonthlyCost)
		}
	}
	return total
}

// AnnualSubscriptionCost is twelve times the monthly cost.
func AnnualSubscriptionCost(subscriptions []models.Subscription) decimal.Decimal {
	return MonthlySubscriptionCost(subscriptions).Mul(monthsPerYear)
}

// TotalBalance is the signed sum of all account balances.
func TotalBalance(accounts []models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// SummarizeSubscriptions builds the subscription summary as of now.
func SummarizeSubscriptions(subscriptions []models.Subscription, now time.Time) models.SubscriptionSummary {
	active := ActiveSubscriptions(subscriptions)
	return models.SubscriptionSummary{
		MonthlyCost:      MonthlySubscriptionCost(subscriptions),
		AnnualCost:       AnnualSubscriptionCost(subscriptions),
		ActiveCount:      len(active),
		CanceledCount:    len(subscriptions) - len(active),
		UpcomingRenewals: UpcomingRenewals(subscriptions, now),
	}
}

// RecentTransactions returns up to n transactions, newest date first.
func RecentTransactions(transactions []models.Transaction, n int) []models.Transaction {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
