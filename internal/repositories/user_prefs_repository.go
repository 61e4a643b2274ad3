package repositories

import (
	"errors"
	"fmt"

	"finance-hub/internal/models"

	"gorm.io/gorm"
)

var ErrUserPrefsNotFound = errors.New("user preferences not found")

// userPrefsRepository implements UserPrefsRepositoryInterface
type userPrefsRepository struct {
	*recordStore[models.UserPrefs]
}

// NewUserPrefsRepository creates a new preferences repository
func NewUserPrefsRepository(db *gorm.DB) UserPrefsRepositoryInterface {
	return &userPrefsRepository{
		recordStore: newRecordStore[models.UserPrefs](db, "user preferences", ErrUserPrefsNotFound,
			"created_at", "updated_at"),
	}
}

// First returns the oldest preferences record, which is the one in effect
func (r *userPrefsRepository) First() (*models.UserPrefs, error) {
	var prefs models.UserPrefs
	if err := r.db.Order("created_at ASC").First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserPrefsNotFound
		}
		return nil, fmt.Errorf("failed to get user preferences: %w", err)
	}
	return &prefs, nil
}
