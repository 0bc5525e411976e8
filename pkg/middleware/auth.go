// Package middleware contains fiber middleware shared by the API routes.
package middleware

import (
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/service/auth"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKey    = "user"
	usernameKey = "username"
	problemJSON = "application/problem+json"
)

// JwtProtected verifies the bearer token and stores the authenticated
// username in the request locals. Any token problem answers 401.
func JwtProtected(authSvc *auth.Service) fiber.Handler {
	return jwtware.New(jwtware.Config{
		KeyFunc:      authSvc.KeyFunc,
		ContextKey:   tokenKey,
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, _ := c.Locals(tokenKey).(*jwt.Token)
			username, err := authSvc.CurrentUser(token)
			if err != nil {
				return jwtError(c, err)
			}
			c.Locals(usernameKey, username)
			return c.Next()
		},
	})
}

// CurrentUser returns the username set by JwtProtected.
func CurrentUser(c *fiber.Ctx) string {
	username, _ := c.Locals(usernameKey).(string)
	return username
}

func jwtError(c *fiber.Ctx, _ error) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"type":     "about:blank",
		"title":    "Unauthorized",
		"status":   fiber.StatusUnauthorized,
		"detail":   domain.ErrUnauthorized.Error(),
		"instance": c.OriginalURL(),
	}, problemJSON)
}
