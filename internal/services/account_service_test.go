package services_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"finance-hub/internal/models"
	"finance-hub/internal/repositories"
	"finance-hub/internal/repositories/repository_mocks"
	"finance-hub/internal/services"
	"finance-hub/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AccountServiceSuite defines the test suite for AccountServiceInterface
type AccountServiceSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	accountRepo    *repository_mocks.MockAccountRepositoryInterface
	activityLogger *service_mocks.MockActivityLoggerInterface
	metrics        *service_mocks.MockMetricsRecorderInterface
	service        services.AccountServiceInterface
	testAccountID  uuid.UUID
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

func (s *AccountServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.activityLogger = service_mocks.NewMockActivityLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = s.newService(0)
	s.testAccountID = uuid.New()
}

func (s *AccountServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AccountServiceSuite) newService(delay time.Duration) services.AccountServiceInterface {
	return services.NewAccountService(s.accountRepo, s.activityLogger, s.metrics, delay, slog.Default())
}

func (s *AccountServiceSuite) TestCreateAccount() {
	account := &models.Account{
		Name:               "Everyday Checking",
		Type:               models.AccountTypeChecking,
		Balance:            dec("1200.50"),
		AccountNumberLast4: "4321",
	}
	s.accountRepo.EXPECT().Create(account).DoAndReturn(func(a *models.Account) error {
		a.ID = s.testAccountID
		return nil
	})

	created, err := s.service.CreateAccount(account)
	s.Require().NoError(err)
	s.Equal(s.testAccountID, created.ID)
}

func (s *AccountServiceSuite) TestCreateAccount_InvalidType() {
	_, err := s.service.CreateAccount(&models.Account{Name: "Brokerage", Type: "Crypto"})
	s.ErrorIs(err, services.ErrValidation)
	s.ErrorIs(err, models.ErrInvalidAccountType)
}

func (s *AccountServiceSuite) TestCreateAccount_InvalidLastFour() {
	_, err := s.service.CreateAccount(&models.Account{Name: "Card", Type: models.AccountTypeCreditCard, AccountNumberLast4: "12a4"})
	s.ErrorIs(err, models.ErrInvalidAccountLast4)
}

func (s *AccountServiceSuite) TestUpdateAccount_ValidatesMergedRecord() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(&models.Account{
		ID:   s.testAccountID,
		Name: "Savings",
		Type: models.AccountTypeSavings,
	}, nil)

	_, err := s.service.UpdateAccount(s.testAccountID, map[string]interface{}{"name": "   "})
	s.ErrorIs(err, models.ErrAccountNameRequired)
}

func (s *AccountServiceSuite) TestUpdateAccount_Balance() {
	fields := map[string]interface{}{"balance": dec("-250")}
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(&models.Account{
		ID:   s.testAccountID,
		Name: "Visa",
		Type: models.AccountTypeCreditCard,
	}, nil)
	s.accountRepo.EXPECT().Update(s.testAccountID, fields).Return(&models.Account{
		ID:      s.testAccountID,
		Name:    "Visa",
		Type:    models.AccountTypeCreditCard,
		Balance: dec("-250"),
	}, nil)

	updated, err := s.service.UpdateAccount(s.testAccountID, fields)
	s.Require().NoError(err)
	s.True(updated.Balance.Equal(dec("-250")))
}

func (s *AccountServiceSuite) TestGetAccount_NotFound() {
	s.accountRepo.EXPECT().GetByID(s.testAccountID).Return(nil, repositories.ErrAccountNotFound)

	_, err := s.service.GetAccount(s.testAccountID)
	s.ErrorIs(err, services.ErrAccountNotFound)
}

func (s *AccountServiceSuite) TestDeleteAccount_NotFound() {
	s.accountRepo.EXPECT().Delete(s.testAccountID).Return(repositories.ErrAccountNotFound)

	err := s.service.DeleteAccount(s.testAccountID)
	s.ErrorIs(err, services.ErrAccountNotFound)
}

func (s *AccountServiceSuite) TestListAccounts_StoreFailure() {
	s.accountRepo.EXPECT().List("-balance").Return(nil, errors.New("connection reset"))

	_, err := s.service.ListAccounts("-balance")
	s.Error(err)
	s.Contains(err.Error(), "failed to list accounts")
}

func (s *AccountServiceSuite) TestConnectDemoBank_CreatesCannedAccounts() {
	s.accountRepo.EXPECT().BulkCreate(gomock.Any()).DoAndReturn(
		func(accounts []models.Account) ([]models.Account, error) {
			s.Require().Len(accounts, 2)
			s.Equal("Demo Checking", accounts[0].Name)
			s.True(accounts[0].Balance.Equal(dec("1200")))
			s.Equal("1234", accounts[0].AccountNumberLast4)
			s.Equal("Demo Credit Card", accounts[1].Name)
			s.Equal(models.AccountTypeCreditCard, accounts[1].Type)
			s.True(accounts[1].Balance.Equal(dec("-250")))
			s.Equal("Demo Credit", accounts[1].BankName)
			for _, a := range accounts {
				s.True(a.IsDemo)
			}
			return accounts, nil
		})
	s.activityLogger.EXPECT().LogDemoBankConnected(gomock.Any(), 2)
	s.metrics.EXPECT().IncrementCounter(services.MetricDemoDataOperation, map[string]string{"operation": "bank_connect"})

	accounts, err := s.service.ConnectDemoBank(context.Background())
	s.Require().NoError(err)
	s.Len(accounts, 2)
}

func (s *AccountServiceSuite) TestConnectDemoBank_CanceledWhileWaiting() {
	service := s.newService(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	accounts, err := service.ConnectDemoBank(ctx)
	s.ErrorIs(err, context.Canceled)
	s.Nil(accounts)
}
