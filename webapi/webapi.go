// Package webapi provides HTTP handlers and API endpoints for the ledger.
// It is organized into sub-packages per resource:
// - auth: employee login
// - account: customer and account endpoints
// - transfer: transfers and transfer history
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/ledger/pkg/app"
	accountweb "github.com/amirasaad/ledger/webapi/account"
	authweb "github.com/amirasaad/ledger/webapi/auth"
	"github.com/amirasaad/ledger/webapi/common"
	transferweb "github.com/amirasaad/ledger/webapi/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
)

// WelcomeMessage is served on the landing route.
const WelcomeMessage = "Welcome to the Ledger API"

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "ledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.ErrorResponseJSON(c, fe.Code, utils.StatusMessage(fe.Code), fe.Message)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	fiberApp.Use(recover.New())
	if app.Config.Env != "test" {
		fiberApp.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	// Uses X-Forwarded-For when behind a proxy, then X-Real-IP, then the peer address.
	limiterCfg := limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get(fiber.HeaderXForwardedFor); forwardedFor != "" {
				first, _, _ := strings.Cut(forwardedFor, ",")
				return strings.TrimSpace(first)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				"rate limit exceeded",
				fiber.StatusTooManyRequests,
			)
		},
	}
	if app.Deps.RateLimitStorage != nil {
		limiterCfg.Storage = app.Deps.RateLimitStorage
	}
	fiberApp.Use(limiter.New(limiterCfg))

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	// Landing endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": WelcomeMessage})
	})

	authweb.Routes(fiberApp, app.AuthService)
	accountweb.Routes(fiberApp, app.AccountService, app.AuthService)
	transferweb.Routes(fiberApp, app.TransferService, app.AuthService)
	return fiberApp
}
