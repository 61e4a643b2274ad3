package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"finance-hub/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second

	errMigrationsDirNotFound = errors.New("migrations directory not found")
)

// MigrationRunner applies the SQL migrations under db/migrations to Postgres
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
}

// NewMigrationRunner creates a new migration runner
func NewMigrationRunner(db *sql.DB, migrationsPath string) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
	}
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase() error {
	slog.Info("waiting for database to be ready")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			slog.Info("database is ready")
			return nil
		}

		slog.Warn("database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, errMigrationsDirNotFound
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", absPath), "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations executes all pending migrations. It reports false without an
// error when the migrations directory does not exist.
func (mr *MigrationRunner) RunMigrations() (bool, error) {
	m, err := mr.newMigrate()
	if errors.Is(err, errMigrationsDirNotFound) {
		slog.Warn("migrations directory not found, skipping migrations", "path", mr.migrationsPath)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return false, fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		slog.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return false, fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return false, fmt.Errorf("migration failed: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("no new migrations to apply", "version", version)
		return true, nil
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return false, fmt.Errorf("failed to get new migration version: %w", err)
	}
	slog.Info("applied migrations", "version", newVersion)
	return true, nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled runs the SQL migrations when AUTO_MIGRATE is set and
// reports whether the schema is now managed by them.
func RunMigrationsIfEnabled(db *sql.DB, cfg *config.DatabaseConfig) (bool, error) {
	if !cfg.AutoMigrate {
		slog.Info("auto-migration disabled (AUTO_MIGRATE != true)")
		return false, nil
	}

	runner := NewMigrationRunner(db, cfg.MigrationsPath)

	if err := runner.WaitForDatabase(); err != nil {
		return false, fmt.Errorf("database readiness check failed: %w", err)
	}

	applied, err := runner.RunMigrations()
	if err != nil {
		return false, fmt.Errorf("migration execution failed: %w", err)
	}

	return applied, nil
}
