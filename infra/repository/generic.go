package repository

import (
	"context"
	"fmt"

	"github.com/amirasaad/accountowner/pkg/domain"
	"github.com/amirasaad/accountowner/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GenericRepository implements repository.Repository for GORM.
type GenericRepository[T any] struct {
	db      *gorm.DB
	changes *changeSet
}

// NewGenericRepository creates a generic repository with its own change set.
func NewGenericRepository[T any](db *gorm.DB) *GenericRepository[T] {
	return newGenericRepository[T](db, &changeSet{})
}

func newGenericRepository[T any](db *gorm.DB, changes *changeSet) *GenericRepository[T] {
	return &GenericRepository[T]{db: db, changes: changes}
}

func (r *GenericRepository[T]) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T))
}

// FindAll retrieves all entities
func (r *GenericRepository[T]) FindAll(ctx context.Context) ([]*T, error) {
	var entities []*T
	err := WrapError(func() error {
		return r.query(ctx).Find(&entities).Error
	})
	return entities, err
}

// FindByCondition retrieves entities matching the query
func (r *GenericRepository[T]) FindByCondition(ctx context.Context, query any, args ...any) ([]*T, error) {
	var entities []*T
	err := WrapError(func() error {
		return r.query(ctx).Where(query, args...).Find(&entities).Error
	})
	return entities, err
}

// Create stages the insertion of entity. Associations are never written.
func (r *GenericRepository[T]) Create(entity *T) {
	r.changes.stage(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(entity).Error
	})
}

// Update stages a full-column update of entity. The row must still exist
// when the change is committed.
func (r *GenericRepository[T]) Update(entity *T) {
	r.changes.stage(func(tx *gorm.DB) error {
		res := tx.Model(entity).
			Select("*").
			Omit(clause.Associations, "created_at").
			Updates(entity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("update %T: %w", entity, domain.ErrNotFound)
		}
		return nil
	})
}

// Delete stages the removal of entity by primary key.
func (r *GenericRepository[T]) Delete(entity *T) {
	r.changes.stage(func(tx *gorm.DB) error {
		return tx.Delete(entity).Error
	})
}

// Save commits everything staged on the shared change set.
func (r *GenericRepository[T]) Save(ctx context.Context) error {
	return r.changes.commit(ctx, r.db)
}

var _ repository.Repository[struct{}] = (*GenericRepository[struct{}])(nil)
