// Package common holds the helpers shared by the HTTP handlers: RFC 9457
// problem documents, error to status mapping and request binding.
package common

import (
	"errors"
	"reflect"
	"strings"

	"github.com/amirasaad/accountowner/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// MIMEProblemJSON is the media type of RFC 9457 problem documents.
const MIMEProblemJSON = "application/problem+json"

// InternalServerErrorDetail is the only detail exposed for unexpected failures.
const InternalServerErrorDetail = "Internal server error"

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ProblemDetailsJSON writes a problem document. The status defaults to
// ErrorToStatusCode(err), or 400 without an error; an int in args overrides
// it and a string in args sets the detail. For 5xx responses the cause is
// logged and only a generic detail is returned.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, args ...any) error {
	status := fiber.StatusBadRequest
	if err != nil {
		status = ErrorToStatusCode(err)
	}
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}

	if status >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %s: %v", c.Method(), c.OriginalURL(), title, err)
		detail = InternalServerErrorDetail
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	c.Set(fiber.HeaderContentType, MIMEProblemJSON)
	return c.Status(status).JSON(pd, MIMEProblemJSON)
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidReference),
		errors.Is(err, domain.ErrOwnerHasAccounts):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrEmptyBody is returned by BindAndValidate for requests without a body.
var ErrEmptyBody = errors.New("request body is required")

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	if len(strings.TrimSpace(string(c.Body()))) == 0 {
		return nil, ProblemDetailsJSON(c, "Invalid request body", ErrEmptyBody, fiber.StatusBadRequest)
	}
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, writeValidationErrors(c, verrs)
		}
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func writeValidationErrors(c *fiber.Ctx, verrs validator.ValidationErrors) error {
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    "Validation failed",
		Status:   fiber.StatusBadRequest,
		Detail:   verrs.Error(),
		Instance: c.OriginalURL(),
		Errors:   fields,
	}
	c.Set(fiber.HeaderContentType, MIMEProblemJSON)
	return c.Status(fiber.StatusBadRequest).JSON(pd, MIMEProblemJSON)
}

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"
