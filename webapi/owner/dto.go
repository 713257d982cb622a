package owner

import (
	"time"

	"github.com/amirasaad/accountowner/pkg/domain/owner"
	accountweb "github.com/amirasaad/accountowner/webapi/account"
	"github.com/amirasaad/accountowner/webapi/common"
	"github.com/google/uuid"
)

//revive:disable

// OwnerForCreationDto is the request body for creating an owner.
type OwnerForCreationDto struct {
	Name        string `json:"name" validate:"required,max=60"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Address     string `json:"address" validate:"required,max=100"`
}

// OwnerForUpdateDto is the request body for updating an owner. Every field is
// replaced, so all are required.
type OwnerForUpdateDto struct {
	Name        string `json:"name" validate:"required,max=60"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Address     string `json:"address" validate:"required,max=100"`
}

// OwnerDto is the API representation of an owner.
type OwnerDto struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth string    `json:"dateOfBirth"`
	Address     string    `json:"address"`
}

// OwnerWithAccountsDto is an owner together with its accounts.
type OwnerWithAccountsDto struct {
	OwnerDto
	Accounts []accountweb.AccountDto `json:"accounts"`
}

//revive:enable

// ToOwnerDto maps an owner entity to its API representation.
func ToOwnerDto(o *owner.Owner) OwnerDto {
	return OwnerDto{
		ID:          o.ID,
		Name:        o.Name,
		DateOfBirth: o.DateOfBirth.Format(common.DateLayout),
		Address:     o.Address,
	}
}

// ToOwnerWithAccountsDto maps an owner and its loaded accounts.
func ToOwnerWithAccountsDto(o *owner.Owner) OwnerWithAccountsDto {
	accounts := make([]accountweb.AccountDto, 0, len(o.Accounts))
	for i := range o.Accounts {
		accounts = append(accounts, accountweb.ToAccountDto(&o.Accounts[i]))
	}
	return OwnerWithAccountsDto{OwnerDto: ToOwnerDto(o), Accounts: accounts}
}

func parseDateOfBirth(s string) (time.Time, error) {
	return time.Parse(common.DateLayout, s)
}
