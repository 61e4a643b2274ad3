package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"finance-hub/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, sqlitePath string) *config.Config {
	t.Setenv("APP_ENV", "testing")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "0")
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("DB_SQLITE_PATH", sqlitePath)
	t.Setenv("DEMO_SEED_ON_EMPTY", "false")
	t.Setenv("AMQP_URL", "")
	return config.Load()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_ReturnsDatabaseError(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "missing", "finance.db"))

	err := run(context.Background(), cfg, prometheus.NewRegistry(), discardLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize sqlite database")
}

func TestRun_StopsWhenContextCanceled(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "finance.db"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, cfg, prometheus.NewRegistry(), discardLogger())

	assert.NoError(t, err)
}
