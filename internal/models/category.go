package models

// Transaction categories
const (
	CategoryGroceries      = "Groceries"
	CategoryRent           = "Rent"
	CategoryUtilities      = "Utilities"
	CategoryEntertainment  = "Entertainment"
	CategorySubscriptions  = "Subscriptions"
	CategoryTransportation = "Transportation"
	CategoryHealthcare     = "Healthcare"
	CategoryShopping       = "Shopping"
	CategoryDining         = "Dining"
	CategoryIncome         = "Income"
	CategoryOther          = "Other"
)

// Subscription categories
const (
	SubscriptionCategoryEntertainment = "Entertainment"
	SubscriptionCategorySoftware      = "Software"
	SubscriptionCategoryNews          = "News"
	SubscriptionCategoryFitness       = "Fitness"
	SubscriptionCategoryMusic         = "Music"
	SubscriptionCategoryShopping      = "Shopping"
	SubscriptionCategoryOther         = "Other"
)

// AllCategories returns every transaction category, Income included
func AllCategories() []string {
	return append(SpendingCategories(), CategoryIncome)
}

// SpendingCategories returns the categories a budget can be set for
func SpendingCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryRent,
		CategoryUtilities,
		CategoryEntertainment,
		CategorySubscriptions,
		CategoryTransportation,
		CategoryHealthcare,
		CategoryShopping,
		CategoryDining,
		CategoryOther,
	}
}

// AllSubscriptionCategories returns every subscription category
func AllSubscriptionCategories() []string {
	return []string{
		SubscriptionCategoryEntertainment,
		SubscriptionCategorySoftware,
		SubscriptionCategoryNews,
		SubscriptionCategoryFitness,
		SubscriptionCategoryMusic,
		SubscriptionCategoryShopping,
		SubscriptionCategoryOther,
	}
}

// IsValidCategory checks if a category string is a valid transaction category
func IsValidCategory(category string) bool {
	return contains(AllCategories(), category)
}

// IsSpendingCategory checks if a category can carry a budget
func IsSpendingCategory(category string) bool {
	return contains(SpendingCategories(), category)
}

// IsValidSubscriptionCategory checks if a category string is a valid subscription category
func IsValidSubscriptionCategory(category string) bool {
	return contains(AllSubscriptionCategories(), category)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
