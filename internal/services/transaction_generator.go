package services

import (
	"sync"
	"time"

	"finance-hub/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	generatorHistoryDays = 60
	incomeShare          = 0.15
	unknownMerchantShare = 0.2
)

// MerchantInfo is a merchant the generator can charge and its category
type MerchantInfo struct {
	Name     string
	Category string
}

type transactionGenerator struct {
	mu           sync.Mutex
	merchantPool []MerchantInfo
	faker        *gofakeit.Faker
}

// NewTransactionGenerator creates a generator with a random seed
func NewTransactionGenerator() TransactionGeneratorInterface {
	return newSeededTransactionGenerator(0)
}

// newSeededTransactionGenerator creates a generator with a fixed seed; 0
// picks a random one
func newSeededTransactionGenerator(seed uint64) *transactionGenerator {
	return &transactionGenerator{
		merchantPool: initializeMerchantPool(),
		faker:        gofakeit.New(seed),
	}
}

func initializeMerchantPool() []MerchantInfo {
	return []MerchantInfo{
		{"Whole Foods Market", models.CategoryGroceries},
		{"Trader Joe's", models.CategoryGroceries},
		{"Safeway", models.CategoryGroceries},
		{"Kroger", models.CategoryGroceries},
		{"Costco Wholesale", models.CategoryGroceries},

		{"Starbucks", models.CategoryDining},
		{"Chipotle Mexican Grill", models.CategoryDining},
		{"Panera Bread", models.CategoryDining},
		{"Olive Garden", models.CategoryDining},
		{"Five Guys", models.CategoryDining},

		{"Uber", models.CategoryTransportation},
		{"Lyft", models.CategoryTransportation},
		{"Shell", models.CategoryTransportation},
		{"Chevron", models.CategoryTransportation},
		{"Metro Transit", models.CategoryTransportation},

		{"Amazon.com", models.CategoryShopping},
		{"Best Buy", models.CategoryShopping},
		{"Home Depot", models.CategoryShopping},
		{"IKEA", models.CategoryShopping},
		{"Nike", models.CategoryShopping},

		{"AMC Theaters", models.CategoryEntertainment},
		{"Regal Cinemas", models.CategoryEntertainment},
		{"PlayStation Network", models.CategoryEntertainment},

		{"Netflix", models.CategorySubscriptions},
		{"Spotify", models.CategorySubscriptions},
		{"Adobe Creative Cloud", models.CategorySubscriptions},

		{"PG&E", models.CategoryUtilities},
		{"Comcast Xfinity", models.CategoryUtilities},
		{"Water Department", models.CategoryUtilities},

		{"CVS Pharmacy", models.CategoryHealthcare},
		{"Walgreens", models.CategoryHealthcare},
		{"Kaiser Permanente", models.CategoryHealthcare},

		{"Property Management Co", models.CategoryRent},
	}
}

// GetMerchantPool returns the merchant pool
func (g *transactionGenerator) GetMerchantPool() []MerchantInfo {
	return g.merchantPool
}

// SelectRandomMerchant selects a random merchant from the pool
func (g *transactionGenerator) SelectRandomMerchant() MerchantInfo {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.merchantPool[g.faker.Number(0, len(g.merchantPool)-1)]
}

// GenerateAmount generates a positive amount typical for the category
func (g *transactionGenerator) GenerateAmount(category string) decimal.Decimal {
	minValue, maxValue := amountRange(category)

	g.mu.Lock()
	defer g.mu.Unlock()
	return decimal.NewFromFloat(g.faker.Price(minValue, maxValue)).Round(2)
}

func amountRange(category string) (float64, float64) {
	ranges := map[string][2]float64{
		models.CategoryGroceries:      {15.00, 250.00},
		models.CategoryDining:         {8.00, 120.00},
		models.CategoryTransportation: {10.00, 80.00},
		models.CategoryShopping:       {25.00, 450.00},
		models.CategoryEntertainment:  {10.00, 60.00},
		models.CategorySubscriptions:  {5.00, 30.00},
		models.CategoryUtilities:      {50.00, 250.00},
		models.CategoryHealthcare:     {20.00, 300.00},
		models.CategoryRent:           {900.00, 2500.00},
		models.CategoryIncome:         {500.00, 4000.00},
	}

	if r, exists := ranges[category]; exists {
		return r[0], r[1]
	}
	return 10.00, 100.00
}

// GenerateDate picks a calendar day between start and end, both inclusive
func (g *transactionGenerator) GenerateDate(start, end models.Date) models.Date {
	if !start.Before(end) {
		return start
	}
	days := int(end.Sub(start.Time).Hours() / 24)

	g.mu.Lock()
	defer g.mu.Unlock()
	return start.AddDays(g.faker.Number(0, days))
}

// GenerateTransactions creates count unsaved transactions dated within the
// last sixty days, spread over the given accounts. Most are expenses at known
// merchants; some are income and some are charges at unknown companies.
func (g *transactionGenerator) GenerateTransactions(accountIDs []uuid.UUID, count int, now time.Time) []models.Transaction {
	if count <= 0 || len(accountIDs) == 0 {
		return []models.Transaction{}
	}

	today := models.DateOf(now)
	start := today.AddDays(-generatorHistoryDays)

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactions = append(transactions, g.generateTransaction(accountIDs, start, today))
	}
	return transactions
}

func (g *transactionGenerator) generateTransaction(accountIDs []uuid.UUID, start, end models.Date) models.Transaction {
	g.mu.Lock()
	accountID := accountIDs[g.faker.Number(0, len(accountIDs)-1)]
	roll := g.faker.Float64Range(0, 1)
	company := g.faker.Company()
	g.mu.Unlock()

	date := g.GenerateDate(start, end)

	switch {
	case roll < incomeShare:
		return models.Transaction{
			AccountID:   accountID,
			Date:        date,
			Description: "Direct Deposit - " + company,
			Amount:      g.GenerateAmount(models.CategoryIncome),
			Category:    models.CategoryIncome,
		}
	case roll < incomeShare+unknownMerchantShare:
		return models.Transaction{
			AccountID:   accountID,
			Date:        date,
			Description: company,
			Amount:      g.GenerateAmount(models.CategoryOther).Neg(),
			Category:    models.CategoryOther,
		}
	}

	merchant := g.SelectRandomMerchant()
	return models.Transaction{
		AccountID:   accountID,
		Date:        date,
		Description: merchant.Name,
		Amount:      g.GenerateAmount(merchant.Category).Neg(),
		Category:    merchant.Category,
	}
}
