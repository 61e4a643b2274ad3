package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance-hub/internal/config"
	"finance-hub/internal/database"
	"finance-hub/internal/events"
	"finance-hub/internal/middleware"
	"finance-hub/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RouterTestSuite drives the full HTTP stack against an in-memory SQLite store
type RouterTestSuite struct {
	suite.Suite
	db   *database.DB
	cfg  *config.Config
	echo *echo.Echo
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.cfg = &config.Config{
		Server:    config.ServerConfig{Environment: "testing", CORSAllowOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 100, Burst: 100},
		Cache:     config.CacheConfig{DashboardTTL: time.Minute, CleanupInterval: time.Minute},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewServices(s.cfg, s.db.DB, events.NoopPublisher{}, prometheus.NewRegistry(), logger)
	s.echo = NewRouter(s.cfg, s.db.DB, svc)
}

func (s *RouterTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *RouterTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) dashboard() models.Dashboard {
	rec := s.do(http.MethodGet, "/api/v1/dashboard", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var dashboard models.Dashboard
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &dashboard))
	return dashboard
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "healthy")
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
}

func (s *RouterTestSuite) TestSeedThenStats() {
	rec := s.do(http.MethodPost, "/api/v1/settings/demo-data", "")
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/settings/stats", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"accounts":3,"transactions":10,"subscriptions":2,"budgets":10}`, rec.Body.String())
}

func (s *RouterTestSuite) TestDashboardRefreshesAfterWrite() {
	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/v1/settings/demo-data", "").Code)
	before := s.dashboard()

	rec := s.do(http.MethodPost, "/api/v1/accounts", `{"name":"Rainy Day","type":"Savings","balance":"1000"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	after := s.dashboard()
	s.Equal(before.TotalBalance.Add(decimal.NewFromInt(1000)).String(), after.TotalBalance.String())
}

func (s *RouterTestSuite) TestExportCSV() {
	rec := s.do(http.MethodGet, "/api/v1/export/transactions.csv", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Date,Account,Description,Category,Amount\n", rec.Body.String())
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "transactions-")
}

func (s *RouterTestSuite) TestCancelTwiceConflicts() {
	rec := s.do(http.MethodPost, "/api/v1/subscriptions",
		`{"name":"Hulu","monthly_cost":"7.99","next_renewal_date":"2030-01-05","category":"Entertainment"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var sub models.Subscription
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &sub))

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/subscriptions/"+sub.ID.String()+"/cancel", "").Code)
	s.Equal(http.StatusConflict, s.do(http.MethodPost, "/api/v1/subscriptions/"+sub.ID.String()+"/cancel", "").Code)
}

func (s *RouterTestSuite) TestCancelGuideAndExplanation() {
	rec := s.do(http.MethodPost, "/api/v1/subscriptions",
		`{"name":"Amazon Prime","monthly_cost":"14.99","next_renewal_date":"2030-01-05","category":"Entertainment"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var sub models.Subscription
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &sub))

	rec = s.do(http.MethodGet, "/api/v1/subscriptions/"+sub.ID.String()+"/cancel-guide", "")
	s.Equal(http.StatusOK, rec.Code)
	var guide models.CancelGuide
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &guide))
	s.Equal("https://www.amazon.com/prime/central", guide.URL)

	rec = s.do(http.MethodPost, "/api/v1/transactions",
		`{"account_id":"`+sub.ID.String()+`","date":"2024-06-01","description":"June Rent","amount":"-1500","category":"Rent"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)
	var transaction models.Transaction
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &transaction))

	rec = s.do(http.MethodGet, "/api/v1/transactions/"+transaction.ID.String()+"/explanation", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "monthly housing rent")

	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/v1/transactions/"+sub.ID.String()+"/explanation", "").Code)
}

func (s *RouterTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v1/statements", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_006")
}

func (s *RouterTestSuite) TestDevRoutesOnlyWhenEnabled() {
	s.Equal(http.StatusNotFound, s.do(http.MethodPost, "/api/v1/dev/transactions/generate", `{"count":5}`).Code)

	s.cfg.Demo.GeneratorEnabled = true
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.echo = NewRouter(s.cfg, s.db.DB, NewServices(s.cfg, s.db.DB, events.NoopPublisher{}, prometheus.NewRegistry(), logger))

	s.Require().Equal(http.StatusCreated, s.do(http.MethodPost, "/api/v1/settings/demo-data", "").Code)
	rec := s.do(http.MethodPost, "/api/v1/dev/transactions/generate", `{"count":5}`)
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"count":5`)
}
