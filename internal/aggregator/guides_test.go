package aggregator

import (
	"strings"
	"testing"

	"finance-hub/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestExplainTransaction(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		explanation string
		tipPrefix   string
	}{
		{"streaming video", "NETFLIX.COM", "This is a recurring payment for your Netflix video streaming subscription.", "Review your plan."},
		{"streaming music", "Spotify Premium", "This is a recurring payment for your Spotify music streaming subscription.", "Consider a Family or Duo plan"},
		{"coffee", "Starbucks #1234", "This is a purchase from a Starbucks coffee shop.", "Making coffee at home"},
		{"grocery chain", "Trader Joe's", "This is a purchase from a grocery store for food and household items.", "Always shop with a list"},
		{"grocery generic", "Weekly groceries", "This is a purchase from a grocery store for food and household items.", "Always shop with a list"},
		{"housing", "Monthly Rent", "This is a payment for your monthly housing rent.", "Housing is usually the largest expense."},
		{"income", "Direct Deposit", "This is income deposited into your account, likely from your employer.", "A great habit"},
		{"first rule wins", "Spotify at Starbucks", "This is a recurring payment for your Spotify music streaming subscription.", "Consider a Family or Duo plan"},
		{"unknown merchant", "Local Bakery", `This is a transaction for "Local Bakery".`, "Track similar expenses over time"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transaction := expense(tc.description, "-10", daysAgo(1))

			result := ExplainTransaction(transaction)

			assert.Equal(t, transaction.ID, result.TransactionID)
			assert.Equal(t, tc.description, result.Description)
			assert.Equal(t, tc.explanation, result.Explanation)
			assert.True(t, strings.HasPrefix(result.Tip, tc.tipPrefix), "tip was %q", result.Tip)
		})
	}
}

func TestCancelGuideFor(t *testing.T) {
	testCases := []struct {
		name        string
		subName     string
		url         string
		stepsPrefix string
	}{
		{"netflix", "Netflix", "https://www.netflix.com/cancelplan", "Go to Netflix.com"},
		{"spotify mixed case", "SPOTIFY Family", "https://www.spotify.com/account/subscription/cancel/", "Log in to spotify.com/account"},
		{"amazon prime", "Amazon Prime Video", "https://www.amazon.com/prime/central", "Go to your Amazon Prime membership page"},
		{"amazon without prime", "Amazon Music", "https://www.google.com/search?q=how+to+cancel+Amazon%20Music", "The easiest way to cancel 'Amazon Music'"},
		{"reserved characters", "AT&T / Fiber", "https://www.google.com/search?q=how+to+cancel+AT%26T%20%2F%20Fiber", "The easiest way to cancel 'AT&T / Fiber'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sub := subscription(tc.subName, "9.99", daysAgo(-10), false)
			sub.ID = uuid.New()

			guide := CancelGuideFor(sub)

			assert.Equal(t, sub.ID, guide.SubscriptionID)
			assert.Equal(t, tc.subName, guide.Name)
			assert.Equal(t, tc.url, guide.URL)
			assert.True(t, strings.HasPrefix(guide.Steps, tc.stepsPrefix), "steps were %q", guide.Steps)
		})
	}
}

func TestCancelGuideFor_FallbackStepsNameTheSearch(t *testing.T) {
	guide := CancelGuideFor(models.Subscription{Name: "Gym Plus"})

	assert.Equal(t,
		`The easiest way to cancel 'Gym Plus' is to search online for "how to cancel Gym Plus". Look for an official support or account page.`,
		guide.Steps)
}
