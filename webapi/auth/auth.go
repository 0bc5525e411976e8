package auth

import (
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the login endpoint.
func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/login", Login(authSvc))
}

// Login handles employee authentication and returns a JWT token.
// @Summary Employee login
// @Description Validates the username and password. On success returns a bearer token to send as `Authorization: Bearer <token>`.
// @Tags login
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response{data=TokenResponse} "Authentication successful"
// @Failure 400 {object} common.ProblemDetails "Missing or invalid form data"
// @Failure 403 {object} common.ProblemDetails "Invalid username or password"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // error response already written
		}
		token, err := authSvc.Login(c.UserContext(), input.Username, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Authentication failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
