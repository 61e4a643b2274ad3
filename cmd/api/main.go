package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-hub/internal/config"
	"finance-hub/internal/database"
	"finance-hub/internal/events"
	"finance-hub/internal/server"

	"github.com/prometheus/client_golang/prometheus"
)

const seedTimeout = 30 * time.Second

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, cfg, prometheus.DefaultRegisterer, logger)
	stop()

	if err != nil {
		logger.Error("finance-hub stopped with error", "error", err)
		os.Exit(1)
	}
}

// run serves the API until ctx is canceled, then shuts the server down within
// the configured timeout. Every resource opened here is closed before it returns.
func run(ctx context.Context, cfg *config.Config, reg prometheus.Registerer, logger *slog.Logger) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize %s database: %w", cfg.Database.Driver, err)
	}
	defer db.Close()

	publisher, err := events.NewPublisher(cfg.Events)
	if err != nil {
		logger.Warn("Event publisher unavailable, events will be dropped", "error", err)
		publisher = events.NoopPublisher{}
	}
	defer publisher.Close()

	svc := server.NewServices(cfg, db.DB, publisher, reg, logger)

	if cfg.Demo.SeedOnEmpty {
		seedCtx, seedCancel := context.WithTimeout(ctx, seedTimeout)
		seeded, err := svc.DemoData.SeedIfEmpty(seedCtx)
		seedCancel()
		if err != nil {
			logger.Warn("Demo data seeding failed", "error", err)
		} else if seeded {
			logger.Info("Empty store seeded with demo data")
		}
	}

	srv := &http.Server{
		Addr:           cfg.Address(),
		Handler:        server.NewRouter(cfg, db.DB, svc),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting finance-hub API",
			"address", cfg.Address(),
			"environment", cfg.Server.Environment,
			"events", cfg.Events.Enabled(),
		)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error on %s: %w", cfg.Address(), err)
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	<-serveErr

	logger.Info("Server stopped gracefully")
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if cfg.IsProduction() {
		opts.Level = slog.LevelInfo
	}
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
