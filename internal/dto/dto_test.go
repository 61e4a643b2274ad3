package dto

import (
	"encoding/json"
	"testing"

	"finance-hub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAccountRequest_FieldsOnlyCarriesPresentValues(t *testing.T) {
	var req UpdateAccountRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Joint Checking", "balance": "1500.25"}`), &req))

	fields := req.Fields()
	assert.Len(t, fields, 2)
	assert.Equal(t, "Joint Checking", fields["name"])
	assert.Equal(t, "1500.25", fields["balance"].(interface{ String() string }).String())
}

func TestCreateTransactionRequest_ToModel(t *testing.T) {
	var req CreateTransactionRequest
	body := `{
		"account_id": "0f8fad5b-d9cb-469f-a165-70867728950e",
		"date": "2024-06-03",
		"description": "Weekly groceries",
		"amount": "-84.20",
		"category": "Groceries"
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	transaction := req.ToModel()
	assert.Equal(t, "0f8fad5b-d9cb-469f-a165-70867728950e", transaction.AccountID.String())
	assert.Equal(t, "2024-06-03", transaction.Date.String())
	assert.True(t, transaction.IsExpense())
	assert.Nil(t, transaction.IsRecurring)
}

func TestTransactionListQuery_Filters(t *testing.T) {
	q := TransactionListQuery{Search: "uber", AccountID: "not-a-uuid", Type: models.TransactionTypeExpense}
	filters := q.Filters()
	assert.Nil(t, filters.AccountID)
	assert.Equal(t, "uber", filters.Search)

	q.AccountID = "0f8fad5b-d9cb-469f-a165-70867728950e"
	require.NotNil(t, q.Filters().AccountID)
}

func TestCreateBudgetRequest_DefaultsMonth(t *testing.T) {
	req := CreateBudgetRequest{Category: models.CategoryDining, MonthlyLimit: NewLenientDecimal(ParseLenientDecimal("250"))}
	assert.Equal(t, "2024-06", req.ToModel("2024-06").MonthYear)

	req.MonthYear = "2024-05"
	assert.Equal(t, "2024-05", req.ToModel("2024-06").MonthYear)
}

func TestSavePreferencesRequest_ToModel(t *testing.T) {
	var req SavePreferencesRequest
	require.NoError(t, json.Unmarshal([]byte(`{"monthly_income": "4,200", "daily_goal": 30}`), &req))

	prefs := req.ToModel()
	assert.Equal(t, "4", prefs.MonthlyIncome.String())
	assert.True(t, prefs.NotificationsEnabled)
	require.NotNil(t, prefs.DailyGoal)
	assert.Equal(t, "30", prefs.DailyGoal.String())
}
