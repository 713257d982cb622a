// Package owner holds the Owner entity, the account holder that owns zero or
// more accounts.
package owner

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amirasaad/accountowner/pkg/domain"
	"github.com/amirasaad/accountowner/pkg/domain/account"
	"github.com/google/uuid"
)

const (
	MaxNameLength    = 60
	MaxAddressLength = 100
)

// Owner is the top-level account holder.
//
// Accounts is only populated by the "with details" query; the delete
// constraint on the relation is RESTRICT, so an owner with accounts cannot be
// removed.
type Owner struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name        string            `gorm:"size:60;not null;index"`
	DateOfBirth time.Time         `gorm:"type:date;not null"`
	Address     string            `gorm:"size:100;not null"`
	Accounts    []account.Account `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Owner model.
func (Owner) TableName() string {
	return "owners"
}

// New creates an owner with a fresh identity.
func New(name string, dateOfBirth time.Time, address string) (*Owner, error) {
	o := &Owner{ID: uuid.New()}
	if err := o.Apply(name, dateOfBirth, address); err != nil {
		return nil, err
	}
	return o, nil
}

// Apply copies the writable fields onto o, replacing the previous values.
func (o *Owner) Apply(name string, dateOfBirth time.Time, address string) error {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	switch {
	case name == "":
		return fmt.Errorf("name is required: %w", domain.ErrValidation)
	case utf8.RuneCountInString(name) > MaxNameLength:
		return fmt.Errorf("name can't be longer than %d characters: %w", MaxNameLength, domain.ErrValidation)
	case dateOfBirth.IsZero():
		return fmt.Errorf("date of birth is required: %w", domain.ErrValidation)
	case address == "":
		return fmt.Errorf("address is required: %w", domain.ErrValidation)
	case utf8.RuneCountInString(address) > MaxAddressLength:
		return fmt.Errorf("address can't be longer than %d characters: %w", MaxAddressLength, domain.ErrValidation)
	}
	dob := dateOfBirth.UTC()
	o.Name = name
	o.DateOfBirth = time.Date(dob.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	o.Address = address
	return nil
}
