package aggregator

import (
	"fmt"
	"net/url"
	"strings"

	"finance-hub/internal/models"
)

type explanationRule struct {
	keywords    []string
	explanation string
	tip         string
}

// Checked in order against the lower-cased description; the first match wins.
var explanationRules = []explanationRule{
	{
		keywords:    []string{"netflix"},
		explanation: "This is a recurring payment for your Netflix video streaming subscription.",
		tip:         "Review your plan. Are you paying for 4K but only watching on your phone? You could downgrade to save money.",
	},
	{
		keywords:    []string{"spotify"},
		explanation: "This is a recurring payment for your Spotify music streaming subscription.",
		tip:         "Consider a Family or Duo plan if others in your household also use Spotify. It's often cheaper than individual accounts.",
	},
	{
		keywords:    []string{"starbucks"},
		explanation: "This is a purchase from a Starbucks coffee shop.",
		tip:         "Making coffee at home can save you over $100 a month. Consider it a small change with a big impact.",
	},
	{
		keywords:    []string{"groceries", "safeway", "trader joe"},
		explanation: "This is a purchase from a grocery store for food and household items.",
		tip:         "Always shop with a list to avoid impulse buys. Buying generic brands for staple items can also cut down your bill.",
	},
	{
		keywords:    []string{"rent"},
		explanation: "This is a payment for your monthly housing rent.",
		tip:         "Housing is usually the largest expense. Ensure it's not more than 30% of your take-home pay.",
	},
	{
		keywords:    []string{"paycheck", "deposit"},
		explanation: "This is income deposited into your account, likely from your employer.",
		tip:         "A great habit is to 'pay yourself first' by automatically transferring a portion of each paycheck to your savings.",
	},
}

const defaultTip = "Track similar expenses over time to see where your money is going and identify potential savings."

type cancelRule struct {
	keyword string
	steps   string
	url     string
}

var cancelRules = []cancelRule{
	{
		keyword: "netflix",
		steps:   "Go to Netflix.com, log in, navigate to 'Account', and click 'Cancel Membership'.",
		url:     "https://www.netflix.com/cancelplan",
	},
	{
		keyword: "spotify",
		steps:   "Log in to spotify.com/account, go to 'Your plan', and click 'CHANGE PLAN'. Scroll to Spotify Free and click 'CANCEL PREMIUM'.",
		url:     "https://www.spotify.com/account/subscription/cancel/",
	},
	{
		keyword: "amazon prime",
		steps:   "Go to your Amazon Prime membership page, click 'Manage Membership', then 'End Membership'.",
		url:     "https://www.amazon.com/prime/central",
	},
}

const cancelSearchURL = "https://www.google.com/search?q=how+to+cancel+"

// ExplainTransaction describes a transaction by keyword match on its
// description. Unknown merchants get a generic explanation quoting the
// description.
func ExplainTransaction(t models.Transaction) models.TransactionExplanation {
	result := models.TransactionExplanation{
		TransactionID: t.ID,
		Description:   t.Description,
		Explanation:   fmt.Sprintf("This is a transaction for \"%s\".", t.Description),
		Tip:           defaultTip,
	}

	lowered := strings.ToLower(t.Description)
	for _, rule := range explanationRules {
		if containsAny(lowered, rule.keywords) {
			result.Explanation = rule.explanation
			result.Tip = rule.tip
			break
		}
	}
	return result
}

// CancelGuideFor returns cancellation steps for a subscription. Providers
// without a known page fall back to a web search for the subscription name.
func CancelGuideFor(sub models.Subscription) models.CancelGuide {
	guide := models.CancelGuide{
		SubscriptionID: sub.ID,
		Name:           sub.Name,
	}

	lowered := strings.ToLower(sub.Name)
	for _, rule := range cancelRules {
		if strings.Contains(lowered, rule.keyword) {
			guide.Steps = rule.steps
			guide.URL = rule.url
			return guide
		}
	}

	guide.Steps = fmt.Sprintf("The easiest way to cancel '%s' is to search online for \"how to cancel %s\". "+
		"Look for an official support or account page.", sub.Name, sub.Name)
	guide.URL = cancelSearchURL + searchTermEscape(sub.Name)
	return guide
}

// searchTermEscape escapes a query value with spaces as %20
func searchTermEscape(term string) string {
	return strings.ReplaceAll(url.QueryEscape(term), "+", "%20")
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
