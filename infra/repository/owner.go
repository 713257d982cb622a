package repository

import (
	"context"

	"github.com/amirasaad/accountowner/pkg/domain/owner"
	"github.com/amirasaad/accountowner/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ownerRepository struct {
	*GenericRepository[owner.Owner]
}

// NewOwnerRepository creates an owner repository with its own change set.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{NewGenericRepository[owner.Owner](db)}
}

// GetAllOwners lists owners by name; equal names keep insertion order.
func (r *ownerRepository) GetAllOwners(ctx context.Context) ([]*owner.Owner, error) {
	var owners []*owner.Owner
	err := r.query(ctx).
		Order("name ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&owners).Error
	return owners, MapGormErrorToDomain(err)
}

func (r *ownerRepository) GetOwnerByID(ctx context.Context, id uuid.UUID) (*owner.Owner, error) {
	var o owner.Owner
	err := r.query(ctx).Where("id = ?", id).First(&o).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return &o, nil
}

// GetOwnerWithDetails loads the owner together with its accounts.
func (r *ownerRepository) GetOwnerWithDetails(ctx context.Context, id uuid.UUID) (*owner.Owner, error) {
	var o owner.Owner
	err := r.query(ctx).
		Preload("Accounts", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_created ASC").Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&o).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return &o, nil
}

func (r *ownerRepository) CreateOwner(o *owner.Owner) { r.Create(o) }

func (r *ownerRepository) UpdateOwner(o *owner.Owner) { r.Update(o) }

func (r *ownerRepository) DeleteOwner(o *owner.Owner) { r.Delete(o) }
