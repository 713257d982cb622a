// Package webapi provides the HTTP surface of the account owner service.
// It is organized into sub-packages per resource:
// - owner: owner endpoints
// - account: account endpoints
// - common: problem details, binding and validation
package webapi

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/accountowner/pkg/app"
	accountweb "github.com/amirasaad/accountowner/webapi/account"
	"github.com/amirasaad/accountowner/webapi/common"
	_ "github.com/amirasaad/accountowner/webapi/docs" // swagger spec
	ownerweb "github.com/amirasaad/accountowner/webapi/owner"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
)

const healthTimeout = 2 * time.Second

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "Account Owner API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New())
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	if app.Deps.Metrics != nil {
		fiberApp.Use(app.Deps.Metrics.Middleware())
	}

	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	limiterCfg := limiter.Config{
		Max:          app.Config.RateLimit.MaxRequests,
		Expiration:   app.Config.RateLimit.Window,
		KeyGenerator: clientKey,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}
	if app.Deps.RateLimitStorage != nil {
		limiterCfg.Storage = app.Deps.RateLimitStorage
	}
	fiberApp.Use(limiter.New(limiterCfg))

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Account Owner API is running! 🚀")
	})
	fiberApp.Get("/health", health(app))
	if app.Deps.Metrics != nil && app.Config.Metrics != nil && app.Config.Metrics.Enabled {
		fiberApp.Get(app.Config.Metrics.Path, app.Deps.Metrics.Handler())
	}

	ownerweb.Routes(fiberApp, app.OwnerService)
	accountweb.Routes(fiberApp, app.AccountService)
	return fiberApp
}

func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		// first hop is the client
		if i := strings.Index(forwardedFor, ","); i != -1 {
			return strings.TrimSpace(forwardedFor[:i])
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}

// health reports 503 when the database ping fails.
// @Summary Health check
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} common.ProblemDetails
// @Router /health [get]
func health(app *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if app.Deps.HealthCheck != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
			defer cancel()
			if err := app.Deps.HealthCheck(ctx); err != nil {
				return common.ProblemDetailsJSON(
					c,
					"Service Unavailable",
					err,
					"Database is unreachable",
					fiber.StatusServiceUnavailable,
				)
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
