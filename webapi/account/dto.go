package account

import (
	"time"

	"github.com/amirasaad/accountowner/pkg/domain/account"
	"github.com/amirasaad/accountowner/webapi/common"
	"github.com/google/uuid"
)

//revive:disable

// AccountForCreationDto is the request body for opening an account. An
// omitted dateCreated means today.
type AccountForCreationDto struct {
	DateCreated string `json:"dateCreated" validate:"omitempty,datetime=2006-01-02"`
	AccountType string `json:"accountType" validate:"required,oneof=Domestic Savings Foreign"`
	OwnerID     string `json:"ownerId" validate:"required,uuid"`
}

// AccountForUpdateDto is the request body for replacing an account's fields.
type AccountForUpdateDto struct {
	DateCreated string `json:"dateCreated" validate:"required,datetime=2006-01-02"`
	AccountType string `json:"accountType" validate:"required,oneof=Domestic Savings Foreign"`
	OwnerID     string `json:"ownerId" validate:"required,uuid"`
}

// AccountDto is the API representation of an account.
type AccountDto struct {
	ID          uuid.UUID `json:"id"`
	DateCreated string    `json:"dateCreated"`
	AccountType string    `json:"accountType"`
	OwnerID     uuid.UUID `json:"ownerId"`
}

//revive:enable

// ToAccountDto maps an account entity to its API representation.
func ToAccountDto(a *account.Account) AccountDto {
	return AccountDto{
		ID:          a.ID,
		DateCreated: a.DateCreated.Format(common.DateLayout),
		AccountType: string(a.AccountType),
		OwnerID:     a.OwnerID,
	}
}

// ToAccountDtos maps a list of accounts, never returning nil.
func ToAccountDtos(accounts []*account.Account) []AccountDto {
	out := make([]AccountDto, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, ToAccountDto(a))
	}
	return out
}

func parseInput(rawOwnerID, rawDate string) (uuid.UUID, time.Time, error) {
	ownerID, err := uuid.Parse(rawOwnerID)
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}
	if rawDate == "" {
		return ownerID, time.Time{}, nil
	}
	dateCreated, err := time.Parse(common.DateLayout, rawDate)
	if err != nil {
		return uuid.Nil, time.Time{}, err
	}
	return ownerID, dateCreated, nil
}
