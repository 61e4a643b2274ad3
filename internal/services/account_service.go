package services

import (
	"context"
	"log/slog"
	"time"

	"finance-hub/internal/models"
	"finance-hub/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type accountService struct {
	accountRepo      repositories.AccountRepositoryInterface
	activityLogger   ActivityLoggerInterface
	metrics          MetricsRecorderInterface
	bankConnectDelay time.Duration
	logger           *slog.Logger
}

// NewAccountService creates an account service. bankConnectDelay is how long
// the simulated bank connection takes before the demo accounts appear.
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	activityLogger ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
	bankConnectDelay time.Duration,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo:      accountRepo,
		activityLogger:   activityLogger,
		metrics:          metrics,
		bankConnectDelay: bankConnectDelay,
		logger:           logger,
	}
}

func (s *accountService) ListAccounts(sortKey string) ([]models.Account, error) {
	accounts, err := s.accountRepo.List(sortKey)
	if err != nil {
		return nil, storeError(err, nil, nil, "list accounts")
	}
	return accounts, nil
}

func (s *accountService) GetAccount(id uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		return nil, storeError(err, repositories.ErrAccountNotFound, ErrAccountNotFound, "get account")
	}
	return account, nil
}

func (s *accountService) CreateAccount(account *models.Account) (*models.Account, error) {
	if err := account.Validate(); err != nil {
		return nil, validationError(err)
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, storeError(err, nil, nil, "create account")
	}

	s.logger.Info("account created", "account_id", account.ID, "type", account.Type)
	return account, nil
}

func (s *accountService) UpdateAccount(id uuid.UUID, fields map[string]interface{}) (*models.Account, error) {
	current, err := s.GetAccount(id)
	if err != nil {
		return nil, err
	}

	// Validate the merged record before writing anything.
	merged := *current
	applyAccountFields(&merged, fields)
	if err := merged.Validate(); err != nil {
		return nil, validationError(err)
	}

	account, err := s.accountRepo.Update(id, fields)
	if err != nil {
		return nil, storeError(err, repositories.ErrAccountNotFound, ErrAccountNotFound, "update account")
	}
	return account, nil
}

func (s *accountService) DeleteAccount(id uuid.UUID) error {
	if err := s.accountRepo.Delete(id); err != nil {
		return storeError(err, repositories.ErrAccountNotFound, ErrAccountNotFound, "delete account")
	}
	s.logger.Info("account deleted", "account_id", id)
	return nil
}

// ConnectDemoBank simulates linking an external bank: after the configured
// delay it creates the two canned demo accounts in one bulk write.
func (s *accountService) ConnectDemoBank(ctx context.Context) ([]models.Account, error) {
	if s.bankConnectDelay > 0 {
		timer := time.NewTimer(s.bankConnectDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	created, err := s.accountRepo.BulkCreate(DemoBankAccounts())
	if err != nil {
		return nil, storeError(err, nil, nil, "create demo bank accounts")
	}

	s.activityLogger.LogDemoBankConnected(ctx, len(created))
	s.metrics.IncrementCounter(MetricDemoDataOperation, map[string]string{
		"operation": "bank_connect",
	})
	return created, nil
}

// DemoBankAccounts are the accounts returned by the simulated bank connection
func DemoBankAccounts() []models.Account {
	return []models.Account{
		{
			Name:               "Demo Checking",
			Type:               models.AccountTypeChecking,
			Balance:            decimal.NewFromInt(1200),
			BankName:           "Demo Bank",
			AccountNumberLast4: "1234",
			IsDemo:             true,
		},
		{
			Name:               "Demo Credit Card",
			Type:               models.AccountTypeCreditCard,
			Balance:            decimal.NewFromInt(-250),
			BankName:           "Demo Credit",
			AccountNumberLast4: "5678",
			IsDemo:             true,
		},
	}
}

func applyAccountFields(account *models.Account, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				account.Name = v
			}
		case "type":
			if v, ok := value.(string); ok {
				account.Type = v
			}
		case "balance":
			if v, ok := value.(decimal.Decimal); ok {
				account.Balance = v
			}
		case "bank_name":
			if v, ok := value.(string); ok {
				account.BankName = v
			}
		case "account_number_last_4":
			if v, ok := value.(string); ok {
				account.AccountNumberLast4 = v
			}
		case "is_demo":
			if v, ok := value.(bool); ok {
				account.IsDemo = v
			}
		}
	}
}
