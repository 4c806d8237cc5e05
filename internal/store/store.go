package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// Store is the shared CRUD helper applied to every table. UpdateByID only
// touches columns named in the allowlist given at construction; unknown
// keys in the incoming mapping are dropped silently.
type Store[T any] struct {
	db      *gorm.DB
	columns map[string]struct{}
}

// New builds a Store for T. The variadic list names the columns that
// UpdateByID may overwrite.
func New[T any](db *gorm.DB, updatable ...string) *Store[T] {
	cols := make(map[string]struct{}, len(updatable))
	for _, c := range updatable {
		cols[c] = struct{}{}
	}
	return &Store[T]{db: db, columns: cols}
}

// Add inserts the row. The Base hook assigns a UUID when none is set.
func (s *Store[T]) Add(ctx context.Context, row *T) error {
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

// All returns every row of the table.
func (s *Store[T]) All(ctx context.Context) ([]T, error) {
	var rows []T
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select all: %w", err)
	}
	return rows, nil
}

// ByID returns the row with the given id, or ErrNotFound.
func (s *Store[T]) ByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select by id: %w", err)
	}
	return &row, nil
}

// UpdateByID overwrites the allowlisted columns present in fields and
// returns the refreshed row. ErrNotFound when the id does not exist.
func (s *Store[T]) UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]any) (*T, error) {
	allowed := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, ok := s.columns[k]; ok {
			allowed[k] = v
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			return err
		}
		if len(allowed) == 0 {
			return nil
		}
		return tx.Model(&row).Updates(allowed).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update by id: %w", err)
	}
	return s.ByID(ctx, id)
}

// DeleteByID removes the row and returns it. ErrNotFound when absent.
func (s *Store[T]) DeleteByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete by id: %w", err)
	}
	return &row, nil
}
