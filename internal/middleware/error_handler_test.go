package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "finance-hub/internal/errors"
	"finance-hub/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

// TestErrorHandlerTestSuite runs the test suite
func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) newContext(traceID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}
	return c, rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) apperrors.ErrorResponse {
	var response apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_EchoHTTPError() {
	c, rec := s.newContext("test-trace-id")

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	response := s.decode(rec)
	s.Equal("SYSTEM_006", response.Error.Code)
	s.Equal("Resource not found", response.Error.Message)
	s.Equal("test-trace-id", response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_GenericErrorHidesInternals() {
	c, rec := s.newContext("test-trace-id")

	CustomHTTPErrorHandler(errors.New("pq: relation \"budgets\" does not exist"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.NotContains(rec.Body.String(), "relation")
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_NoTraceID() {
	c, rec := s.newContext("")

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("unknown", s.decode(rec).Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_CommittedResponse() {
	c, rec := s.newContext("")
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_ValidationErrors() {
	type budgetForm struct {
		Category string `json:"category" validate:"required,spending_category"`
		Month    string `json:"month_year" validate:"month_year"`
	}

	err := validation.GetValidator().Struct(budgetForm{Category: "Income", Month: "2024-13"})
	s.Require().Error(err)

	c, rec := s.newContext("trace-v")
	CustomHTTPErrorHandler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	response := s.decode(rec)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Contains(response.Error.Details, "category: must be a spending category (income has no budget)")
	s.Contains(response.Error.Details, "month_year: must be a month in the form YYYY-MM")
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode_AllStatuses() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusUnsupportedMediaType, "VALIDATION_001"},
		{http.StatusRequestEntityTooLarge, "VALIDATION_004"},
		{http.StatusNotFound, "SYSTEM_006"},
		{http.StatusMethodNotAllowed, "SYSTEM_006"},
		{http.StatusTooManyRequests, "SYSTEM_004"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusUnauthorized, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			c, rec := s.newContext("test-trace-id")

			CustomHTTPErrorHandler(echo.NewHTTPError(tc.status), c)

			s.Equal(tc.status, rec.Code)
			s.Equal(tc.expectedCode, s.decode(rec).Error.Code)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestCustomHTTPErrorHandler_JSONFormat() {
	c, rec := s.newContext("test-trace-id")

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Contains(rec.Header().Get("Content-Type"), "application/json")
}
