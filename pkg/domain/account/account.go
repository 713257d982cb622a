package account

import (
	"fmt"
	"time"

	"github.com/amirasaad/accountowner/pkg/domain"
	"github.com/google/uuid"
)

// Type is the kind of an account.
type Type string

const (
	TypeDomestic Type = "Domestic"
	TypeSavings  Type = "Savings"
	TypeForeign  Type = "Foreign"
)

// Valid reports whether t is a known account type.
func (t Type) Valid() bool {
	switch t {
	case TypeDomestic, TypeSavings, TypeForeign:
		return true
	}
	return false
}

// Account is owned by exactly one owner.
//
// Invariants:
//   - OwnerID always references an existing owner (enforced by the service and
//     by the accounts.owner_id foreign key).
type Account struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DateCreated time.Time `gorm:"type:date;not null;index"`
	AccountType Type      `gorm:"size:45;not null"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// New creates an account for ownerID with a fresh identity.
// A zero dateCreated defaults to today (UTC).
func New(ownerID uuid.UUID, accountType Type, dateCreated time.Time) (*Account, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("owner id is required: %w", domain.ErrValidation)
	}
	if !accountType.Valid() {
		return nil, fmt.Errorf("unknown account type %q: %w", accountType, domain.ErrValidation)
	}
	if dateCreated.IsZero() {
		dateCreated = time.Now().UTC()
	}
	return &Account{
		ID:          uuid.New(),
		DateCreated: truncateToDate(dateCreated),
		AccountType: accountType,
		OwnerID:     ownerID,
	}, nil
}

// Apply copies the writable fields onto a. The identity is never touched.
func (a *Account) Apply(ownerID uuid.UUID, accountType Type, dateCreated time.Time) error {
	if ownerID == uuid.Nil {
		return fmt.Errorf("owner id is required: %w", domain.ErrValidation)
	}
	if !accountType.Valid() {
		return fmt.Errorf("unknown account type %q: %w", accountType, domain.ErrValidation)
	}
	if dateCreated.IsZero() {
		return fmt.Errorf("date created is required: %w", domain.ErrValidation)
	}
	a.OwnerID = ownerID
	a.AccountType = accountType
	a.DateCreated = truncateToDate(dateCreated)
	return nil
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
