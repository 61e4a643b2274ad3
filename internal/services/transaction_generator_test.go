package services

import (
	"testing"
	"time"

	"finance-hub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionGeneratorTestSuite struct {
	suite.Suite
	generator *transactionGenerator
	accountID uuid.UUID
	now       time.Time
}

func TestTransactionGeneratorSuite(t *testing.T) {
	suite.Run(t, new(TransactionGeneratorTestSuite))
}

func (s *TransactionGeneratorTestSuite) SetupTest() {
	s.generator = newSeededTransactionGenerator(42)
	s.accountID = uuid.New()
	s.now = time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)
}

// Merchant Pool Tests

func (s *TransactionGeneratorTestSuite) TestMerchantPool_UsesSpendingCategories() {
	merchants := s.generator.GetMerchantPool()
	s.GreaterOrEqual(len(merchants), 30)

	categories := make(map[string]bool)
	for _, merchant := range merchants {
		s.NotEmpty(merchant.Name)
		s.True(models.IsSpendingCategory(merchant.Category), "merchant %s", merchant.Name)
		categories[merchant.Category] = true
	}
	s.GreaterOrEqual(len(categories), 9)
}

func (s *TransactionGeneratorTestSuite) TestSelectRandomMerchant_ReturnsPoolMember() {
	pool := make(map[string]bool)
	for _, merchant := range s.generator.GetMerchantPool() {
		pool[merchant.Name] = true
	}

	for i := 0; i < 100; i++ {
		s.True(pool[s.generator.SelectRandomMerchant().Name])
	}
}

func (s *TransactionGeneratorTestSuite) TestSeededGeneratorsAgree() {
	other := newSeededTransactionGenerator(42)
	for i := 0; i < 20; i++ {
		s.Equal(s.generator.SelectRandomMerchant(), other.SelectRandomMerchant())
	}
}

// Amount Generation Tests

func (s *TransactionGeneratorTestSuite) TestGenerateAmount_CategoryRanges() {
	testCases := []struct {
		category string
		min, max decimal.Decimal
	}{
		{models.CategoryGroceries, decimal.NewFromInt(15), decimal.NewFromInt(250)},
		{models.CategoryDining, decimal.NewFromInt(8), decimal.NewFromInt(120)},
		{models.CategoryRent, decimal.NewFromInt(900), decimal.NewFromInt(2500)},
		{models.CategoryIncome, decimal.NewFromInt(500), decimal.NewFromInt(4000)},
		{models.CategoryOther, decimal.NewFromInt(10), decimal.NewFromInt(100)},
	}

	for _, tc := range testCases {
		s.Run(tc.category, func() {
			for i := 0; i < 50; i++ {
				amount := s.generator.GenerateAmount(tc.category)
				s.True(amount.GreaterThanOrEqual(tc.min), "%s below range: %s", tc.category, amount)
				s.True(amount.LessThanOrEqual(tc.max), "%s above range: %s", tc.category, amount)
				s.LessOrEqual(-amount.Exponent(), int32(2))
			}
		})
	}
}

// Date Tests

func (s *TransactionGeneratorTestSuite) TestGenerateDate_Inclusive() {
	start := models.NewDate(2024, 1, 1)
	end := models.NewDate(2024, 1, 3)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		date := s.generator.GenerateDate(start, end)
		s.True(date.Between(start, end))
		seen[date.String()] = true
	}
	s.Len(seen, 3)
}

func (s *TransactionGeneratorTestSuite) TestGenerateDate_SingleDay() {
	day := models.NewDate(2024, 2, 29)
	s.Equal(day, s.generator.GenerateDate(day, day))
}

// Batch Generation Tests

func (s *TransactionGeneratorTestSuite) TestGenerateTransactions_ShapeAndSigns() {
	other := uuid.New()
	transactions := s.generator.GenerateTransactions([]uuid.UUID{s.accountID, other}, 300, s.now)
	s.Len(transactions, 300)

	today := models.DateOf(s.now)
	start := today.AddDays(-generatorHistoryDays)

	var income, expenses int
	for _, t := range transactions {
		s.NoError(t.Validate())
		s.True(t.Date.Between(start, today))
		s.Contains([]uuid.UUID{s.accountID, other}, t.AccountID)

		if t.Category == models.CategoryIncome {
			income++
			s.True(t.Amount.IsPositive())
			s.Contains(t.Description, "Direct Deposit - ")
		} else {
			expenses++
			s.True(t.Amount.IsNegative())
		}
	}

	s.InDelta(0.15, float64(income)/300, 0.08)
	s.Greater(expenses, income)
}

func (s *TransactionGeneratorTestSuite) TestGenerateTransactions_Empty() {
	s.Empty(s.generator.GenerateTransactions([]uuid.UUID{s.accountID}, 0, s.now))
	s.Empty(s.generator.GenerateTransactions(nil, 10, s.now))
	s.NotNil(s.generator.GenerateTransactions(nil, 10, s.now))
}
