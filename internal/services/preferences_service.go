package services

import (
	"errors"
	"log/slog"

	"finance-hub/internal/models"
	"finance-hub/internal/repositories"
)

type preferencesService struct {
	prefsRepo repositories.UserPrefsRepositoryInterface
	logger    *slog.Logger
}

// NewPreferencesService creates a preferences service
func NewPreferencesService(prefsRepo repositories.UserPrefsRepositoryInterface, logger *slog.Logger) PreferencesServiceInterface {
	return &preferencesService{
		prefsRepo: prefsRepo,
		logger:    logger,
	}
}

// GetPreferences returns the stored preferences, or the settings form
// defaults with stored=false when none were saved yet.
func (s *preferencesService) GetPreferences() (*models.UserPrefs, bool, error) {
	prefs, err := s.prefsRepo.First()
	if err != nil {
		if errors.Is(err, repositories.ErrUserPrefsNotFound) {
			defaults := models.SettingsDefaults()
			return &defaults, false, nil
		}
		return nil, false, storeError(err, nil, nil, "get preferences")
	}
	return prefs, true, nil
}

// SavePreferences updates the first stored record, or creates one when the
// store holds none.
func (s *preferencesService) SavePreferences(prefs *models.UserPrefs) (*models.UserPrefs, error) {
	if prefs.CurrencySymbol == "" {
		prefs.CurrencySymbol = models.DefaultCurrencySymbol
	}
	if err := prefs.Validate(); err != nil {
		return nil, validationError(err)
	}

	existing, err := s.prefsRepo.First()
	if err != nil && !errors.Is(err, repositories.ErrUserPrefsNotFound) {
		return nil, storeError(err, nil, nil, "get preferences")
	}

	if existing == nil {
		if err := s.prefsRepo.Create(prefs); err != nil {
			return nil, storeError(err, nil, nil, "create preferences")
		}
		s.logger.Info("preferences created", "prefs_id", prefs.ID)
		return prefs, nil
	}

	updated, err := s.prefsRepo.Update(existing.ID, map[string]interface{}{
		"monthly_income":        prefs.MonthlyIncome,
		"currency_symbol":       prefs.CurrencySymbol,
		"notifications_enabled": prefs.NotificationsEnabled,
		"daily_goal":            prefs.DailyGoal,
	})
	if err != nil {
		return nil, storeError(err, repositories.ErrUserPrefsNotFound, repositories.ErrUserPrefsNotFound, "update preferences")
	}
	s.logger.Info("preferences updated", "prefs_id", updated.ID)
	return updated, nil
}
