package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-catalog/internal/database"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

type baseRepository struct {
	db      *database.Database
	timeout time.Duration
}

func newBaseRepository(db *database.Database) baseRepository {
	return baseRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r baseRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

// crudRepository implements the plain create/read/update operations shared
// by every catalog table.
type crudRepository[T any] struct {
	baseRepository
	order string
}

func (r *crudRepository[T]) Create(ctx context.Context, item *T) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(item).Error
}

func (r *crudRepository[T]) Update(ctx context.Context, item *T) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(item).Error
}

func (r *crudRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var item T
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

func (r *crudRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var items []T
	err := r.db.WithContext(ctx).Order(r.order).Find(&items).Error
	return items, err
}
