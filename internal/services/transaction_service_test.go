package services_test

import (
	"log/slog"
	"testing"

	"finance-hub/internal/models"
	"finance-hub/internal/repositories"
	"finance-hub/internal/repositories/repository_mocks"
	"finance-hub/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	service         services.TransactionServiceInterface
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceSuite))
}

func (s *TransactionServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.service = services.NewTransactionService(s.transactionRepo, slog.Default())
}

func (s *TransactionServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionServiceSuite) TestListTransactions_NoFiltersUsesPlainList() {
	s.transactionRepo.EXPECT().List("-date").Return([]models.Transaction{}, nil)

	transactions, err := s.service.ListTransactions(models.TransactionFilters{}, "-date")
	s.NoError(err)
	s.NotNil(transactions)
}

func (s *TransactionServiceSuite) TestListTransactions_WithFilters() {
	accountID := uuid.New()
	filters := models.TransactionFilters{
		Search:    "coffee",
		Category:  models.CategoryDining,
		AccountID: &accountID,
		Type:      models.TransactionTypeExpense,
	}
	expected := []models.Transaction{newTransaction("Coffee shop", "-4.50", models.CategoryDining, daysAgo(1))}
	s.transactionRepo.EXPECT().ListWithFilters(filters, "-date").Return(expected, nil)

	transactions, err := s.service.ListTransactions(filters, "-date")
	s.NoError(err)
	s.Equal(expected, transactions)
}

func (s *TransactionServiceSuite) TestListTransactions_InvalidFilters() {
	_, err := s.service.ListTransactions(models.TransactionFilters{Type: "refund"}, "")
	s.ErrorIs(err, models.ErrInvalidTransactionType)

	_, err = s.service.ListTransactions(models.TransactionFilters{Category: "Travel"}, "")
	s.ErrorIs(err, models.ErrInvalidCategory)
}

func (s *TransactionServiceSuite) TestCreateTransaction_AccountIsOpaque() {
	transaction := &models.Transaction{
		AccountID:   uuid.New(),
		Date:        daysAgo(0),
		Description: "Farmers market",
		Amount:      dec("-23.10"),
		Category:    models.CategoryGroceries,
	}
	s.transactionRepo.EXPECT().Create(transaction).Return(nil)

	created, err := s.service.CreateTransaction(transaction)
	s.NoError(err)
	s.Same(transaction, created)
}

func (s *TransactionServiceSuite) TestCreateTransaction_Validation() {
	_, err := s.service.CreateTransaction(&models.Transaction{
		AccountID: uuid.New(),
		Date:      daysAgo(0),
		Amount:    dec("-1"),
		Category:  models.CategoryOther,
	})
	s.ErrorIs(err, services.ErrValidation)
	s.ErrorIs(err, models.ErrDescriptionRequired)
}

func (s *TransactionServiceSuite) TestDeleteTransaction_NotFound() {
	id := uuid.New()
	s.transactionRepo.EXPECT().Delete(id).Return(repositories.ErrTransactionNotFound)

	s.ErrorIs(s.service.DeleteTransaction(id), services.ErrTransactionNotFound)
}

func (s *TransactionServiceSuite) TestExplainTransaction_KnownMerchant() {
	id := uuid.New()
	s.transactionRepo.EXPECT().GetByID(id).Return(&models.Transaction{ID: id, Description: "Starbucks Reserve", Amount: dec("-6.50")}, nil)

	result, err := s.service.ExplainTransaction(id)
	s.Require().NoError(err)
	s.Equal(id, result.TransactionID)
	s.Equal("This is a purchase from a Starbucks coffee shop.", result.Explanation)
	s.NotEmpty(result.Tip)
}

func (s *TransactionServiceSuite) TestExplainTransaction_NotFound() {
	id := uuid.New()
	s.transactionRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrTransactionNotFound)

	result, err := s.service.ExplainTransaction(id)
	s.ErrorIs(err, services.ErrTransactionNotFound)
	s.Nil(result)
}
