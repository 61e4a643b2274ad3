package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RecordsTestSuite struct {
	suite.Suite
	faker *gofakeit.Faker
}

func TestRecordsSuite(t *testing.T) {
	suite.Run(t, new(RecordsTestSuite))
}

func (s *RecordsTestSuite) SetupTest() {
	s.faker = gofakeit.New(7)
}

func (s *RecordsTestSuite) fakeSubscription() Subscription {
	return Subscription{
		Name:            s.faker.Company(),
		MonthlyCost:     decimal.NewFromFloat(s.faker.Price(1, 60)).Round(2),
		NextRenewalDate: DateOf(s.faker.DateRange(time.Now(), time.Now().AddDate(0, 1, 0))),
		Category:        s.faker.RandomString(AllSubscriptionCategories()),
	}
}

func (s *RecordsTestSuite) TestSubscription_CancelIsOneWay() {
	sub := s.fakeSubscription()
	s.Require().NoError(sub.Validate())
	s.Equal(SubscriptionStatusActive, sub.Status())

	s.Require().NoError(sub.Cancel())
	s.Equal(SubscriptionStatusCanceled, sub.Status())
	s.False(sub.IsActive())

	s.ErrorIs(sub.Cancel(), ErrSubscriptionAlreadyCanceled)
	s.True(sub.IsCanceled)
}

func (s *RecordsTestSuite) TestSubscription_Validate() {
	testCases := []struct {
		name    string
		mutate  func(*Subscription)
		wantErr error
	}{
		{name: "blank name", mutate: func(sub *Subscription) { sub.Name = "" }, wantErr: ErrSubscriptionNameRequired},
		{name: "negative cost", mutate: func(sub *Subscription) { sub.MonthlyCost = decimal.NewFromInt(-1) }, wantErr: ErrNegativeMonthlyCost},
		{name: "missing renewal", mutate: func(sub *Subscription) { sub.NextRenewalDate = Date{} }, wantErr: ErrRenewalDateRequired},
		{name: "transaction category", mutate: func(sub *Subscription) { sub.Category = CategoryGroceries }, wantErr: ErrInvalidSubscriptionCategory},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sub := s.fakeSubscription()
			tc.mutate(&sub)
			s.ErrorIs(sub.Validate(), tc.wantErr)
		})
	}
}

func (s *RecordsTestSuite) TestBudget_Validate() {
	valid := Budget{
		Category:     CategoryDining,
		MonthlyLimit: decimal.NewFromInt(300),
		MonthYear:    "2024-03",
	}
	s.NoError(valid.Validate())

	testCases := []struct {
		name    string
		budget  Budget
		wantErr error
	}{
		{name: "income has no budget", budget: Budget{Category: CategoryIncome, MonthYear: "2024-03"}, wantErr: ErrInvalidBudgetCategory},
		{name: "month thirteen", budget: Budget{Category: CategoryRent, MonthYear: "2024-13"}, wantErr: ErrInvalidMonthYear},
		{name: "full date", budget: Budget{Category: CategoryRent, MonthYear: "2024-03-01"}, wantErr: ErrInvalidMonthYear},
		{name: "negative limit", budget: Budget{Category: CategoryRent, MonthYear: "2024-03", MonthlyLimit: decimal.NewFromInt(-5)}, wantErr: ErrNegativeMonthlyLimit},
		{name: "negative spend", budget: Budget{Category: CategoryRent, MonthYear: "2024-03", CurrentSpend: decimal.NewFromInt(-5)}, wantErr: ErrNegativeCurrentSpend},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.ErrorIs(tc.budget.Validate(), tc.wantErr)
		})
	}
}

func (s *RecordsTestSuite) TestBudget_MonthHelpers() {
	s.Equal("2024-01", MonthYearOf(time.Date(2024, time.January, 31, 23, 0, 0, 0, time.UTC)))
	s.True(IsValidMonthYear("1999-12"))
	s.False(IsValidMonthYear("24-03"))

	s.True(DefaultMonthlyLimit(CategoryRent).Equal(decimal.NewFromInt(1500)))
	s.True(DefaultMonthlyLimit(CategoryGroceries).Equal(decimal.NewFromInt(400)))
	s.True(DefaultMonthlyLimit(CategoryShopping).Equal(decimal.NewFromInt(200)))
}

func (s *RecordsTestSuite) TestUserPrefs_Defaults() {
	aggregation := AggregationDefaults()
	s.True(aggregation.MonthlyIncome.IsZero())
	s.Equal(DefaultCurrencySymbol, aggregation.CurrencySymbol)
	s.Nil(aggregation.DailyGoal)

	settings := SettingsDefaults()
	s.True(settings.MonthlyIncome.Equal(decimal.NewFromInt(5000)))
	s.Require().NotNil(settings.DailyGoal)
	s.True(settings.DailyGoal.IsZero())
	s.True(settings.NotificationsEnabled)
}

func (s *RecordsTestSuite) TestUserPrefs_BeforeCreate() {
	goal := decimal.NewFromInt(-1)
	prefs := UserPrefs{DailyGoal: &goal}
	s.ErrorIs(prefs.BeforeCreate(nil), ErrNegativeDailyGoal)

	prefs = UserPrefs{MonthlyIncome: decimal.NewFromInt(4200)}
	s.Require().NoError(prefs.BeforeCreate(nil))
	s.Equal(DefaultCurrencySymbol, prefs.CurrencySymbol)
}

func (s *RecordsTestSuite) TestDate_ParseAndCompare() {
	d, err := ParseDate(" 2024-02-28 ")
	s.Require().NoError(err)
	s.Equal("2024-02-28", d.String())
	s.Equal("2024-03-01", d.AddDays(2).String())

	s.True(d.Between(NewDate(2024, time.February, 28), NewDate(2024, time.March, 1)))
	s.False(d.Between(NewDate(2024, time.March, 1), NewDate(2024, time.March, 31)))

	_, err = ParseDate("02/28/2024")
	s.Error(err)
	s.Equal("", Date{}.String())
}

func (s *RecordsTestSuite) TestDate_JSON() {
	var payload struct {
		Date Date `json:"date"`
	}

	s.Require().NoError(json.Unmarshal([]byte(`{"date":"2024-05-06"}`), &payload))
	s.Equal(NewDate(2024, time.May, 6), payload.Date)

	s.Require().NoError(json.Unmarshal([]byte(`{"date":"2024-05-06T22:15:00Z"}`), &payload))
	s.Equal("2024-05-06", payload.Date.String())

	s.Require().NoError(json.Unmarshal([]byte(`{"date":null}`), &payload))
	s.True(payload.Date.IsEmpty())

	s.Error(json.Unmarshal([]byte(`{"date":"tomorrow"}`), &payload))

	out, err := json.Marshal(struct {
		Date Date `json:"date"`
	}{NewDate(2023, time.December, 31)})
	s.Require().NoError(err)
	s.JSONEq(`{"date":"2023-12-31"}`, string(out))
}

func (s *RecordsTestSuite) TestDate_Scan() {
	var d Date
	s.Require().NoError(d.Scan("2024-07-04 00:00:00+00:00"))
	s.Equal("2024-07-04", d.String())

	s.Require().NoError(d.Scan([]byte("2024-07-05")))
	s.Equal("2024-07-05", d.String())

	s.Require().NoError(d.Scan(time.Date(2024, time.July, 6, 15, 0, 0, 0, time.UTC)))
	s.Equal("2024-07-06", d.String())

	s.Require().NoError(d.Scan(nil))
	s.True(d.IsEmpty())

	s.Error(d.Scan(42))

	value, err := NewDate(2024, time.July, 4).Value()
	s.Require().NoError(err)
	s.Equal("2024-07-04", value)
}

func (s *RecordsTestSuite) TestCircuitBreakerState_String() {
	s.Equal("closed", CircuitBreakerState(0).String())
	s.Equal("open", CircuitBreakerState(1).String())
	s.Equal("half_open", CircuitBreakerState(2).String())
	s.Equal("unknown", CircuitBreakerState(9).String())
}
