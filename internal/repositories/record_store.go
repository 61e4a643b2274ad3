package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidSortKey = errors.New("invalid sort key")

// recordStore implements the store contract shared by every record kind.
// Kind-specific repositories embed it and add their own queries.
type recordStore[T any] struct {
	db          *gorm.DB
	kind        string
	notFound    error
	sortColumns map[string]bool
}

func newRecordStore[T any](db *gorm.DB, kind string, notFound error, sortColumns ...string) *recordStore[T] {
	columns := make(map[string]bool, len(sortColumns))
	for _, column := range sortColumns {
		columns[column] = true
	}
	return &recordStore[T]{
		db:          db,
		kind:        kind,
		notFound:    notFound,
		sortColumns: columns,
	}
}

// orderClause turns "field" or "-field" into an ORDER BY clause. Only
// whitelisted columns are accepted; created_at breaks ties.
func (r *recordStore[T]) orderClause(sortKey string) (string, error) {
	sortKey = strings.TrimSpace(sortKey)
	if sortKey == "" {
		return "", nil
	}

	direction := "ASC"
	column := sortKey
	if strings.HasPrefix(sortKey, "-") {
		direction = "DESC"
		column = strings.TrimPrefix(sortKey, "-")
	}

	if !r.sortColumns[column] {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, sortKey)
	}

	if column == "created_at" {
		return fmt.Sprintf("%s %s", column, direction), nil
	}
	return fmt.Sprintf("%s %s, created_at %s", column, direction, direction), nil
}

func (r *recordStore[T]) find(query *gorm.DB, sortKey string) ([]T, error) {
	order, err := r.orderClause(sortKey)
	if err != nil {
		return nil, err
	}
	if order != "" {
		query = query.Order(order)
	}

	records := []T{}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.kind, err)
	}
	return records, nil
}

// List returns every record of the kind in the requested order
func (r *recordStore[T]) List(sortKey string) ([]T, error) {
	return r.find(r.db.Model(new(T)), sortKey)
}

// GetByID retrieves a record by ID
func (r *recordStore[T]) GetByID(id uuid.UUID) (*T, error) {
	record := new(T)
	if err := r.db.Where("id = ?", id).First(record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.notFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.kind, err)
	}
	return record, nil
}

// Create inserts a single record
func (r *recordStore[T]) Create(record *T) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.kind, err)
	}
	return nil
}

// BulkCreate inserts all records in one database transaction
func (r *recordStore[T]) BulkCreate(records []T) ([]T, error) {
	if len(records) == 0 {
		return []T{}, nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to bulk create %s: %w", r.kind, err)
	}
	return records, nil
}

// Update applies a partial set of column values and returns the stored record
func (r *recordStore[T]) Update(id uuid.UUID, fields map[string]interface{}) (*T, error) {
	if len(fields) > 0 {
		result := r.db.Model(new(T)).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update %s: %w", r.kind, result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, r.notFound
		}
	}
	return r.GetByID(id)
}

// Delete removes a record by ID
func (r *recordStore[T]) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", r.kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}

// Count returns the number of stored records
func (r *recordStore[T]) Count() (int64, error) {
	var count int64
	if err := r.db.Model(new(T)).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.kind, err)
	}
	return count, nil
}
