package owner

import (
	ownersvc "github.com/amirasaad/accountowner/pkg/service/owner"
	"github.com/amirasaad/accountowner/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers the owner endpoints under /api/owner.
func Routes(app fiber.Router, svc *ownersvc.Service) {
	r := app.Group("/api/owner")
	r.Get("/", GetAllOwners(svc))
	r.Get("/:id", GetOwnerByID(svc))
	r.Get("/:id/account", GetOwnerWithDetails(svc))
	r.Post("/", CreateOwner(svc))
	r.Put("/:id", UpdateOwner(svc))
	r.Delete("/:id", DeleteOwner(svc))
}

// GetAllOwners lists every owner.
// @Summary List owners
// @Description List every owner ordered by name
// @Tags owners
// @Produce json
// @Success 200 {array} OwnerDto
// @Failure 500 {object} common.ProblemDetails
// @Router /api/owner [get]
func GetAllOwners(svc *ownersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owners, err := svc.GetAllOwners(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, fiber.StatusInternalServerError)
		}
		log.Infof("Returned %d owners from database", len(owners))

		out := make([]OwnerDto, 0, len(owners))
		for _, o := range owners {
			out = append(out, ToOwnerDto(o))
		}
		return c.Status(fiber.StatusOK).JSON(out)
	}
}

// GetOwnerByID returns one owner.
// @Summary Get owner by ID
// @Tags owners
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} OwnerDto
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/owner/{id} [get]
func GetOwnerByID(svc *ownersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := ownerID(c)
		if !ok {
			return invalidOwnerID(c)
		}
		o, err := svc.GetOwnerByID(c.UserContext(), id)
		if err != nil {
			log.Infof("Owner with id %s lookup failed: %v", id, err)
			return common.ProblemDetailsJSON(c, "Couldn't get owner", err)
		}
		return c.Status(fiber.StatusOK).JSON(ToOwnerDto(o))
	}
}

// GetOwnerWithDetails returns an owner with its accounts.
// @Summary Get owner with accounts
// @Tags owners
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} OwnerWithAccountsDto
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/owner/{id}/account [get]
func GetOwnerWithDetails(svc *ownersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := ownerID(c)
		if !ok {
			return invalidOwnerID(c)
		}
		o, err := svc.GetOwnerWithDetails(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get owner", err)
		}
		return c.Status(fiber.StatusOK).JSON(ToOwnerWithAccountsDto(o))
	}
}

// CreateOwner creates an owner.
// @Summary Create owner
// @Tags owners
// @Accept json
// @Produce json
// @Param request body OwnerForCreationDto true "Owner data"
// @Success 201 {object} OwnerDto
// @Failure 400 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Header 201 {string} Location "URL of the new owner"
// @Router /api/owner [post]
func CreateOwner(svc *ownersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[OwnerForCreationDto](c)
		if input == nil {
			return err // error response already written
		}
		dob, err := parseDateOfBirth(input.DateOfBirth)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
		}
		o, err := svc.CreateOwner(c.UserContext(), input.Name, dob, input.Address)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create owner", err)
		}
		c.Location("/api/owner/" + o.ID.String())
		return c.Status(fiber.StatusCreated).JSON(ToOwnerDto(o))
	}
}

// UpdateOwner replaces the writable fields of an owner.
// @Summary Update owner
// @Tags owners
// @Accept json
// @Param id path string true "Owner ID"
// @Param request body OwnerForUpdateDto true "Owner data"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/owner/{id} [put]
func UpdateOwner(svc *ownersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := ownerID(c)
		if !ok {
			return invalidOwnerID(c)
		}
		input, err := common.BindAndValidate[OwnerForUpdateDto](c)
		if input == nil {
			return err // error response already written
		}
		dob, err := parseDateOfBirth(input.DateOfBirth)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
		}
		if err := svc.UpdateOwner(c.UserContext(), id, input.Name, dob, input.Address); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update owner", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteOwner removes an owner without accounts.
// @Summary Delete owner
// @Description Owners that still have accounts cannot be deleted
// @Tags owners
// @Param id path string true "Owner ID"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /api/owner/{id} [delete]
func DeleteOwner(svc *ownersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := ownerID(c)
		if !ok {
			return invalidOwnerID(c)
		}
		if err := svc.DeleteOwner(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete owner", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func ownerID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

func invalidOwnerID(c *fiber.Ctx) error {
	return common.ProblemDetailsJSON(c, "Invalid owner ID", nil, "Owner ID must be a valid UUID", fiber.StatusBadRequest)
}

