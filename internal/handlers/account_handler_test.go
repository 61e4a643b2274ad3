package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"finance-hub/internal/models"
	"finance-hub/internal/services"
	"finance-hub/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountHandlerSuite defines the test suite for AccountHandler
type AccountHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockAccountServiceInterface
	handler     *AccountHandler
	echo        *echo.Echo
	accountID   uuid.UUID
}

func (s *AccountHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.handler = NewAccountHandler(s.mockService)
	s.echo = newTestEcho()
	s.accountID = uuid.New()
}

func (s *AccountHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerSuite))
}

func (s *AccountHandlerSuite) TestListAccounts_PassesSortKey() {
	accounts := []models.Account{
		{ID: uuid.New(), Name: "Everyday Checking", Type: models.AccountTypeChecking, Balance: decimal.NewFromInt(3200)},
	}
	s.mockService.EXPECT().ListAccounts("-balance").Return(accounts, nil)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/api/v1/accounts?sort=-balance", "")
	s.NoError(s.handler.ListAccounts(c))

	s.Equal(http.StatusOK, rec.Code)
	var got []models.Account
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Len(got, 1)
	s.Equal("Everyday Checking", got[0].Name)
}

func (s *AccountHandlerSuite) TestListAccounts_InvalidSortKey() {
	s.mockService.EXPECT().ListAccounts("password").Return(nil, services.ErrInvalidSortKey)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/api/v1/accounts?sort=password", "")
	s.NoError(s.handler.ListAccounts(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_006", decodeError(s.T(), rec).Error.Code)
}

func (s *AccountHandlerSuite) TestGetAccount_Success() {
	s.mockService.EXPECT().GetAccount(s.accountID).Return(&models.Account{ID: s.accountID, Name: "Savings"}, nil)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/", "")
	s.NoError(s.handler.GetAccount(withID(c, s.accountID.String())))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), s.accountID.String())
}

func (s *AccountHandlerSuite) TestGetAccount_InvalidID() {
	c, rec := newRequestContext(s.echo, http.MethodGet, "/", "")
	s.NoError(s.handler.GetAccount(withID(c, "not-a-uuid")))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_007", decodeError(s.T(), rec).Error.Code)
}

func (s *AccountHandlerSuite) TestGetAccount_NotFound() {
	s.mockService.EXPECT().GetAccount(s.accountID).Return(nil, services.ErrAccountNotFound)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/", "")
	s.NoError(s.handler.GetAccount(withID(c, s.accountID.String())))

	s.Equal(http.StatusNotFound, rec.Code)
	response := decodeError(s.T(), rec)
	s.Equal("ACCOUNT_001", response.Error.Code)
	s.Equal("test-trace-id", response.Error.TraceID)
}

func (s *AccountHandlerSuite) TestCreateAccount_NonNumericBalanceBecomesZero() {
	s.mockService.EXPECT().
		CreateAccount(gomock.Any()).
		DoAndReturn(func(account *models.Account) (*models.Account, error) {
			s.Equal("Travel Card", account.Name)
			s.Equal(models.AccountTypeCreditCard, account.Type)
			s.True(account.Balance.IsZero())
			account.ID = s.accountID
			return account, nil
		})

	body := `{"name":"Travel Card","type":"Credit Card","balance":"abc","account_number_last_4":"4821"}`
	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/accounts", body)
	s.NoError(s.handler.CreateAccount(c))

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *AccountHandlerSuite) TestCreateAccount_ValidationFailure() {
	body := `{"name":"Brokerage","type":"Crypto"}`
	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/accounts", body)
	s.NoError(s.handler.CreateAccount(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	response := decodeError(s.T(), rec)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Contains(response.Error.Details[0], "account_type")
}

func (s *AccountHandlerSuite) TestCreateAccount_InvalidJSON() {
	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/accounts", `{"name":`)
	s.NoError(s.handler.CreateAccount(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal([]string{"Invalid request body"}, decodeError(s.T(), rec).Error.Details)
}

func (s *AccountHandlerSuite) TestCreateAccount_ModelValidationMapsToAccountCode() {
	s.mockService.EXPECT().
		CreateAccount(gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", services.ErrValidation, models.ErrInvalidAccountType))

	body := `{"name":"Brokerage","type":"Investment"}`
	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/accounts", body)
	s.NoError(s.handler.CreateAccount(c))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("ACCOUNT_002", decodeError(s.T(), rec).Error.Code)
}

func (s *AccountHandlerSuite) TestUpdateAccount_OnlyProvidedFields() {
	s.mockService.EXPECT().
		UpdateAccount(s.accountID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, fields map[string]interface{}) (*models.Account, error) {
			s.Len(fields, 1)
			balance, ok := fields["balance"].(decimal.Decimal)
			s.True(ok)
			s.Equal("-412.5", balance.String())
			return &models.Account{ID: id, Balance: balance}, nil
		})

	c, rec := newRequestContext(s.echo, http.MethodPatch, "/", `{"balance":"-412.50"}`)
	s.NoError(s.handler.UpdateAccount(withID(c, s.accountID.String())))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AccountHandlerSuite) TestUpdateAccount_EmptyBody() {
	c, rec := newRequestContext(s.echo, http.MethodPatch, "/", `{}`)
	s.NoError(s.handler.UpdateAccount(withID(c, s.accountID.String())))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_002", decodeError(s.T(), rec).Error.Code)
}

func (s *AccountHandlerSuite) TestDeleteAccount() {
	s.mockService.EXPECT().DeleteAccount(s.accountID).Return(nil)

	c, rec := newRequestContext(s.echo, http.MethodDelete, "/", "")
	s.NoError(s.handler.DeleteAccount(withID(c, s.accountID.String())))

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *AccountHandlerSuite) TestDeleteAccount_StoreFailureHidesCause() {
	s.mockService.EXPECT().DeleteAccount(s.accountID).Return(errors.New("failed to delete account: disk full"))

	c, rec := newRequestContext(s.echo, http.MethodDelete, "/", "")
	s.NoError(s.handler.DeleteAccount(withID(c, s.accountID.String())))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "disk full")
}

func (s *AccountHandlerSuite) TestConnectDemoBank() {
	s.mockService.EXPECT().ConnectDemoBank(gomock.Any()).Return(services.DemoBankAccounts(), nil)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/accounts/connect-demo", "")
	s.NoError(s.handler.ConnectDemoBank(c))

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), "Bank connected successfully")
	s.Contains(rec.Body.String(), "Demo Checking")
}

func (s *AccountHandlerSuite) TestConnectDemoBank_ClientGone() {
	s.mockService.EXPECT().ConnectDemoBank(gomock.Any()).Return(nil, context.Canceled)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/accounts/connect-demo", "")
	s.NoError(s.handler.ConnectDemoBank(c))

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("SYSTEM_003", decodeError(s.T(), rec).Error.Code)
}
