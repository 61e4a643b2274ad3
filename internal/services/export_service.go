package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-hub/internal/models"
	"finance-hub/internal/repositories"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatJSON = "json"

	csvHeader = "Date,Account,Description,Category,Amount"
)

type exportService struct {
	loader         snapshotLoader
	activityLogger ActivityLoggerInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
	now            func() time.Time
}

// NewExportService creates an export service
func NewExportService(
	store *repositories.Store,
	activityLogger ActivityLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ExportServiceInterface {
	return &exportService{
		loader: snapshotLoader{
			accountRepo:      store.Accounts,
			transactionRepo:  store.Transactions,
			subscriptionRepo: store.Subscriptions,
			budgetRepo:       store.Budgets,
			prefsRepo:        store.Prefs,
		},
		activityLogger: activityLogger,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
	}
}

// ExportTransactionsCSV renders every transaction as one CSV row
func (s *exportService) ExportTransactionsCSV(ctx context.Context) (string, []byte, error) {
	snap, err := s.loader.load(ctx, withTransactions)
	if err != nil {
		s.logger.Error("failed to load transactions for export", "error", err)
		return "", nil, err
	}

	content := TransactionsCSV(snap.Transactions)
	s.recordExport(ctx, ExportFormatCSV, len(snap.Transactions))
	return ExportFilename("transactions", ExportFormatCSV, s.now()), []byte(content), nil
}

// ExportJSON collects every record kind into one document
func (s *exportService) ExportJSON(ctx context.Context) (string, *models.DataExport, error) {
	snap, err := s.loader.load(ctx, withAccounts|withTransactions|withSubscriptions|withBudgets|withPrefs)
	if err != nil {
		s.logger.Error("failed to load records for export", "error", err)
		return "", nil, err
	}

	now := s.now()
	export := &models.DataExport{
		ExportedAt:    now.UTC(),
		Accounts:      snap.Accounts,
		Transactions:  snap.Transactions,
		Subscriptions: snap.Subscriptions,
		Budgets:       snap.Budgets,
		Preferences:   snap.Prefs,
	}

	records := len(snap.Accounts) + len(snap.Transactions) + len(snap.Subscriptions) + len(snap.Budgets)
	s.recordExport(ctx, ExportFormatJSON, records)
	return ExportFilename("finance-hub-export", ExportFormatJSON, now), export, nil
}

func (s *exportService) recordExport(ctx context.Context, format string, records int) {
	s.activityLogger.LogExportGenerated(ctx, format, records)
	s.metrics.IncrementCounter(MetricExportGenerated, map[string]string{"format": format})
}

// TransactionsCSV builds the CSV document. The description is always quoted
// with inner quotes doubled; the other columns are written as is. Rows are
// separated by a single newline and there is no trailing newline.
func TransactionsCSV(transactions []models.Transaction) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteString("\n")

	for i, t := range transactions {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Join([]string{
			t.Date.String(),
			t.AccountID.String(),
			`"` + strings.ReplaceAll(t.Description, `"`, `""`) + `"`,
			t.Category,
			t.Amount.String(),
		}, ","))
	}
	return b.String()
}

// ExportFilename names an export after its UTC date, e.g. transactions-2024-06-15.csv
func ExportFilename(prefix, format string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, now.UTC().Format(models.DateLayout), format)
}
