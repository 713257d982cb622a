package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/accountowner/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrNotFound, fiber.StatusNotFound},
		{fmt.Errorf("update owner: %w", domain.ErrNotFound), fiber.StatusNotFound},
		{domain.ErrValidation, fiber.StatusBadRequest},
		{domain.ErrInvalidReference, fiber.StatusBadRequest},
		{domain.ErrOwnerHasAccounts, fiber.StatusBadRequest},
		{domain.ErrAlreadyExists, fiber.StatusConflict},
		{fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{errors.New("connection refused"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorToStatusCode(tt.err), tt.err.Error())
	}
}

type sampleInput struct {
	Name string `json:"name" validate:"required,max=5"`
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/bind", func(c *fiber.Ctx) error {
		input, err := BindAndValidate[sampleInput](c)
		if input == nil {
			return err
		}
		return c.JSON(input)
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Internal Server Error", errors.New("dsn password=secret"))
	})
	return app
}

func decodeProblem(t *testing.T, body io.Reader) ProblemDetails {
	t.Helper()
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(body).Decode(&pd))
	return pd
}

func TestBindAndValidate(t *testing.T) {
	t.Parallel()
	app := newTestApp()

	tests := []struct {
		name   string
		body   string
		status int
		title  string
	}{
		{"empty body", "", fiber.StatusBadRequest, "Invalid request body"},
		{"blank body", "   ", fiber.StatusBadRequest, "Invalid request body"},
		{"malformed json", "{", fiber.StatusBadRequest, "Invalid request body"},
		{"missing field", "{}", fiber.StatusBadRequest, "Validation failed"},
		{"too long", `{"name":"abcdefg"}`, fiber.StatusBadRequest, "Validation failed"},
		{"valid", `{"name":"abc"}`, fiber.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(fiber.MethodPost, "/bind", strings.NewReader(tt.body))
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck

			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == fiber.StatusOK {
				return
			}
			assert.Equal(t, MIMEProblemJSON, resp.Header.Get(fiber.HeaderContentType))
			pd := decodeProblem(t, resp.Body)
			assert.Equal(t, tt.title, pd.Title)
			assert.Equal(t, tt.status, pd.Status)
			assert.Equal(t, "/bind", pd.Instance)
		})
	}
}

func TestBindAndValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(fiber.MethodPost, "/bind", strings.NewReader(`{}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := newTestApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	var body struct {
		Errors []FieldError `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "name", body.Errors[0].Field)
	assert.Equal(t, "required", body.Errors[0].Rule)
}

func TestProblemDetailsJSON_HidesInternalErrors(t *testing.T) {
	t.Parallel()
	resp, err := newTestApp().Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	pd := decodeProblem(t, resp.Body)
	assert.Equal(t, InternalServerErrorDetail, pd.Detail)
}
