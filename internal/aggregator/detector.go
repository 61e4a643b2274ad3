// Package aggregator holds the pure finance computations: recurring-charge
// detection, monthly budget aggregation, subscription summaries and the
// plain-language transaction and cancellation guides. Nothing here performs
// I/O or reads the system clock; functions that depend on the date take the
// evaluation time explicitly.
package aggregator

import (
	"strings"
	"time"

	"finance-hub/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// DetectionWindowDays is how far back, inclusive, expenses are considered
	DetectionWindowDays = 90
	// RenewalLeadDays is the distance from evaluation to a proposal's renewal
	RenewalLeadDays = 30
)

// AmountTolerance is the largest allowed distance between a member's absolute
// amount and the group mean. The bound is inclusive.
var AmountTolerance = decimal.NewFromInt(2)

type classifierRule struct {
	keywords []string
	category string
}

// Keywords are checked in order; the first rule with a matching keyword wins.
var classifierRules = []classifierRule{
	{keywords: []string{"netflix", "hulu", "disney", "amazon prime"}, category: models.SubscriptionCategoryEntertainment},
	{keywords: []string{"spotify", "apple music"}, category: models.SubscriptionCategoryMusic},
	{keywords: []string{"adobe", "microsoft", "github"}, category: models.SubscriptionCategorySoftware},
	{keywords: []string{"gym", "fitness", "yoga"}, category: models.SubscriptionCategoryFitness},
	{keywords: []string{"news", "times", "post"}, category: models.SubscriptionCategoryNews},
}

// GroupKey normalizes a description for grouping: case-folded and trimmed of
// surrounding whitespace. Inner whitespace and punctuation are kept.
func GroupKey(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

// ClassifySubscription maps a group key to a subscription category.
func ClassifySubscription(key string) string {
	for _, rule := range classifierRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(key, keyword) {
				return rule.category
			}
		}
	}
	return models.SubscriptionCategoryOther
}

type transactionGroup struct {
	key     string
	members []models.Transaction
}

// DetectRecurring proposes subscriptions for expenses that repeat with a
// stable amount. Proposals are returned in the order their groups were first
// seen and are not persisted.
//
// Groups are formed by exact GroupKey equality, so unrelated merchants that
// share a description and similar amounts are merged into one proposal.
func DetectRecurring(transactions []models.Transaction, existing []models.Subscription, now time.Time) []models.Subscription {
	today := models.DateOf(now)
	windowStart := today.AddDays(-DetectionWindowDays)

	var groups []*transactionGroup
	index := make(map[string]*transactionGroup)

	for _, t := range transactions {
		if !t.IsExpense() || !t.Date.Between(windowStart, today) {
			continue
		}
		key := GroupKey(t.Description)
		group, ok := index[key]
		if !ok {
			group = &transactionGroup{key: key}
			index[key] = group
			groups = append(groups, group)
		}
		group.members = append(group.members, t)
	}

	var proposals []models.Subscription
	for _, group := range groups {
		if len(group.members) < 2 {
			continue
		}

		mean, stable := stableMean(group.members)
		if !stable {
			continue
		}

		if isKnownSubscription(group.key, existing) {
			continue
		}

		first := group.members[0]
		firstID := first.ID
		proposals = append(proposals, models.Subscription{
			Name:                    first.Description,
			MonthlyCost:             mean,
			NextRenewalDate:         today.AddDays(RenewalLeadDays),
			Category:                ClassifySubscription(group.key),
			IsCanceled:              false,
			DetectedFromTransaction: &firstID,
		})
	}

	return proposals
}

// stableMean returns the mean absolute amount and whether every member lies
// within AmountTolerance of it.
func stableMean(members []models.Transaction) (decimal.Decimal, bool) {
	sum := decimal.Zero
	for _, t := range members {
		sum = sum.Add(t.Amount.Abs())
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(members))))

	for _, t := range members {
		if t.Amount.Abs().Sub(mean).Abs().GreaterThan(AmountTolerance) {
			return mean, false
		}
	}
	return mean, true
}

// isKnownSubscription applies the bidirectional substring rule. Canceled
// subscriptions take part in the match as well.
func isKnownSubscription(key string, existing []models.Subscription) bool {
	for _, s := range existing {
		name := strings.ToLower(s.Name)
		if strings.Contains(name, key) || strings.Contains(key, name) {
			return true
		}
	}
	return false
}
