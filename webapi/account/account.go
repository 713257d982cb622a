package account

import (
	"github.com/amirasaad/accountowner/pkg/domain/account"
	accountsvc "github.com/amirasaad/accountowner/pkg/service/account"
	"github.com/amirasaad/accountowner/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers the account endpoints under /api/account.
func Routes(app fiber.Router, svc *accountsvc.Service) {
	r := app.Group("/api/account")
	r.Get("/", GetAllAccounts(svc))
	r.Get("/:id", GetAccountByID(svc))
	r.Post("/", CreateAccount(svc))
	r.Put("/:id", UpdateAccount(svc))
	r.Delete("/:id", DeleteAccount(svc))
}

// GetAllAccounts lists accounts, optionally filtered by owner.
// @Summary List accounts
// @Description List every account ordered by creation date, or the accounts of one owner
// @Tags accounts
// @Produce json
// @Param ownerId query string false "Owner ID"
// @Success 200 {array} AccountDto
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/account [get]
func GetAllAccounts(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			accounts []*account.Account
			err      error
		)
		if raw := c.Query("ownerId"); raw != "" {
			ownerID, parseErr := uuid.Parse(raw)
			if parseErr != nil {
				return common.ProblemDetailsJSON(c, "Invalid owner ID", parseErr, "Owner ID must be a valid UUID", fiber.StatusBadRequest)
			}
			accounts, err = svc.AccountsByOwner(c.UserContext(), ownerID)
		} else {
			accounts, err = svc.GetAllAccounts(c.UserContext())
		}
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, fiber.StatusInternalServerError)
		}
		log.Infof("Returned %d accounts from database", len(accounts))
		return c.Status(fiber.StatusOK).JSON(ToAccountDtos(accounts))
	}
}

// GetAccountByID returns one account.
// @Summary Get account by ID
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} AccountDto
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/account/{id} [get]
func GetAccountByID(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		a, err := svc.GetAccountByID(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get account", err)
		}
		return c.Status(fiber.StatusOK).JSON(ToAccountDto(a))
	}
}

// CreateAccount opens an account for an existing owner.
// @Summary Create account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body AccountForCreationDto true "Account data"
// @Success 201 {object} AccountDto
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Header 201 {string} Location "URL of the new account"
// @Router /api/account [post]
func CreateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AccountForCreationDto](c)
		if input == nil {
			return err // error response already written
		}
		ownerID, dateCreated, err := parseInput(input.OwnerID, input.DateCreated)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
		}
		a, err := svc.CreateAccount(c.UserContext(), ownerID, account.Type(input.AccountType), dateCreated)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create account", err)
		}
		c.Location("/api/account/" + a.ID.String())
		return c.Status(fiber.StatusCreated).JSON(ToAccountDto(a))
	}
}

// UpdateAccount replaces the writable fields of an account.
// @Summary Update account
// @Tags accounts
// @Accept json
// @Param id path string true "Account ID"
// @Param request body AccountForUpdateDto true "Account data"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/account/{id} [put]
func UpdateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[AccountForUpdateDto](c)
		if input == nil {
			return err // error response already written
		}
		ownerID, dateCreated, err := parseInput(input.OwnerID, input.DateCreated)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
		}
		err = svc.UpdateAccount(c.UserContext(), id, ownerID, account.Type(input.AccountType), dateCreated)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteAccount removes an account.
// @Summary Delete account
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/account/{id} [delete]
func DeleteAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := svc.DeleteAccount(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
