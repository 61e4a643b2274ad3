package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"finance-hub/internal/models"
	"finance-hub/internal/services"
	"finance-hub/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockBudgetServiceInterface
	handler     *BudgetHandler
	echo        *echo.Echo
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockBudgetServiceInterface(s.ctrl)
	s.handler = NewBudgetHandler(s.mockService)
	s.handler.now = func() time.Time { return time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC) }
	s.echo = newTestEcho()
}

func (s *BudgetHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetHandlerTestSuite) TestCreateBudget_DefaultsToCurrentMonth() {
	s.mockService.EXPECT().
		CreateBudget(gomock.Any()).
		DoAndReturn(func(b *models.Budget) (*models.Budget, error) {
			s.Equal("2024-06", b.MonthYear)
			s.Equal(models.CategoryDining, b.Category)
			s.Equal("250", b.MonthlyLimit.String())
			return b, nil
		})

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/budgets", `{"category":"Dining","monthly_limit":250}`)
	s.NoError(s.handler.CreateBudget(c))

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestCreateBudget_ExplicitMonth() {
	s.mockService.EXPECT().
		CreateBudget(gomock.Any()).
		DoAndReturn(func(b *models.Budget) (*models.Budget, error) {
			s.Equal("2024-07", b.MonthYear)
			return b, nil
		})

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/budgets", `{"category":"Rent","monthly_limit":"1500","month_year":"2024-07"}`)
	s.NoError(s.handler.CreateBudget(c))

	s.Equal(http.StatusCreated, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestCreateBudget_IncomeRejected() {
	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/budgets", `{"category":"Income","monthly_limit":100}`)
	s.NoError(s.handler.CreateBudget(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(decodeError(s.T(), rec).Error.Details[0], "spending_category")
}

func (s *BudgetHandlerTestSuite) TestCreateBudget_ModelRejectsCategory() {
	s.mockService.EXPECT().
		CreateBudget(gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", services.ErrValidation, models.ErrInvalidBudgetCategory))

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/budgets", `{"category":"Dining","monthly_limit":100}`)
	s.NoError(s.handler.CreateBudget(c))

	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("BUDGET_002", decodeError(s.T(), rec).Error.Code)
}

func (s *BudgetHandlerTestSuite) TestUpdateBudgetLimit() {
	id := uuid.New()
	s.mockService.EXPECT().
		UpdateBudgetLimit(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, limit decimal.Decimal) (*models.Budget, error) {
			s.Equal("450", limit.String())
			return &models.Budget{ID: id, MonthlyLimit: limit}, nil
		})

	c, rec := newRequestContext(s.echo, http.MethodPatch, "/", `{"monthly_limit":"450"}`)
	s.NoError(s.handler.UpdateBudgetLimit(withID(c, id.String())))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestUpdateBudgetLimit_Negative() {
	id := uuid.New()
	s.mockService.EXPECT().UpdateBudgetLimit(id, gomock.Any()).Return(nil, services.ErrInvalidMonthlyLimit)

	c, rec := newRequestContext(s.echo, http.MethodPatch, "/", `{"monthly_limit":-5}`)
	s.NoError(s.handler.UpdateBudgetLimit(withID(c, id.String())))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_004", decodeError(s.T(), rec).Error.Code)
}

func (s *BudgetHandlerTestSuite) TestDeleteBudget_NotFound() {
	id := uuid.New()
	s.mockService.EXPECT().DeleteBudget(id).Return(services.ErrBudgetNotFound)

	c, rec := newRequestContext(s.echo, http.MethodDelete, "/", "")
	s.NoError(s.handler.DeleteBudget(withID(c, id.String())))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("BUDGET_001", decodeError(s.T(), rec).Error.Code)
}

func (s *BudgetHandlerTestSuite) TestGetOverview() {
	s.mockService.EXPECT().GetOverview(gomock.Any()).Return(&models.BudgetOverview{}, nil)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/api/v1/budgets/overview", "")
	s.NoError(s.handler.GetOverview(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *BudgetHandlerTestSuite) TestCreateMissingBudgets() {
	created := []models.Budget{
		{Category: models.CategoryRent, MonthlyLimit: decimal.NewFromInt(1500), MonthYear: "2024-06"},
		{Category: models.CategoryGroceries, MonthlyLimit: decimal.NewFromInt(400), MonthYear: "2024-06"},
	}
	s.mockService.EXPECT().CreateMissingBudgets(gomock.Any()).Return(created, nil)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/api/v1/budgets/create-missing", "")
	s.NoError(s.handler.CreateMissingBudgets(c))

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"count":2`)
	s.Contains(rec.Body.String(), "Created 2 budget(s)")
}
