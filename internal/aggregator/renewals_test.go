package aggregator

import (
	"testing"

	"finance-hub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subscription(name, cost string, renewal models.Date, canceled bool) models.Subscription {
	return models.Subscription{
		Name:            name,
		MonthlyCost:     dec(cost),
		NextRenewalDate: renewal,
		Category:        models.SubscriptionCategoryOther,
		IsCanceled:      canceled,
	}
}

func TestUpcomingRenewals(t *testing.T) {
	subscriptions := []models.Subscription{
		subscription("Gym", "40.00", daysAgo(-7), false),
		subscription("Netflix", "15.99", daysAgo(0), false),
		subscription("Spotify", "9.99", daysAgo(-8), false),
		subscription("Hulu", "7.99", daysAgo(-2), true),
		subscription("Paper", "4.00", daysAgo(1), false),
	}

	upcoming := UpcomingRenewals(subscriptions, evaluationTime)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "Netflix", upcoming[0].Name)
	assert.Equal(t, "Gym", upcoming[1].Name)
}

func TestSubscriptionCosts(t *testing.T) {
	subscriptions := []models.Subscription{
		subscription("Netflix", "15.99", daysAgo(-27), false),
		subscription("Spotify", "9.99", daysAgo(-25), false),
		subscription("Hulu", "7.99", daysAgo(-2), true),
	}

	assert.True(t, dec("25.98").Equal(MonthlySubscriptionCost(subscriptions)))
	assert.True(t, dec("311.76").Equal(AnnualSubscriptionCost(subscriptions)))

	summary := SummarizeSubscriptions(subscriptions, evaluationTime)
	assert.Equal(t, 2, summary.ActiveCount)
	assert.Equal(t, 1, summary.CanceledCount)
	assert.Empty(t, summary.UpcomingRenewals)
}

func TestTotalBalanceIsSigned(t *testing.T) {
	accounts := []models.Account{
		{Name: "Demo Checking", Type: models.AccountTypeChecking, Balance: dec("1200")},
		{Name: "Demo Credit Card", Type: models.AccountTypeCreditCard, Balance: dec("-250")},
		{Name: "Savings", Type: models.AccountTypeSavings, Balance: dec("10000")},
	}

	assert.True(t, dec("10950").Equal(TotalBalance(accounts)))
	assert.True(t, TotalBalance(nil).IsZero())
}

func TestRecentTransactions(t *testing.T) {
	transactions := []models.Transaction{
		expense("Old", "-1", daysAgo(20)),
		expense("Newest", "-1", daysAgo(0)),
		expense("Middle", "-1", daysAgo(5)),
	}

	recent := RecentTransactions(transactions, 2)

	require.Len(t, recent, 2)
	assert.Equal(t, "Newest", recent[0].Description)
	assert.Equal(t, "Middle", recent[1].Description)
	assert.Equal(t, "Old", transactions[0].Description)
}
