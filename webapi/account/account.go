package account

import (
	"strconv"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/middleware"
	"github.com/amirasaad/ledger/pkg/queries"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers HTTP routes for account-related operations.
// All routes are protected by the JWT middleware.
//
// Routes:
//   - POST /accounts                          : Create a customer (or reuse it by email) and open a funded account.
//   - GET  /accounts/:account_number/balance  : Retrieve the balance of the specified account.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *authsvc.Service) {
	protected := middleware.JwtProtected(authSvc)
	app.Post("/accounts", protected, CreateAccount(accountSvc))
	app.Get("/accounts/:account_number/balance", protected, GetBalance(accountSvc))
}

// CreateAccount returns a Fiber handler that registers the customer and
// opens an account funded with the initial deposit.
// @Summary Create an account
// @Description Creates the customer if the email is new, otherwise reuses it, then opens an account with the initial deposit.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Customer and deposit"
// @Success 201 {object} common.Response{data=AccountResponse} "Account created successfully"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts [post]
// @Security Bearer
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		cust, acc, err := accountSvc.OpenAccount(c.UserContext(), commands.OpenAccount{
			Name:           input.Name,
			Email:          input.Email,
			InitialDeposit: input.InitialDeposit,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		log.Infof("Account %d opened by %s", acc.Number, middleware.CurrentUser(c))
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", ToAccountResponse(cust, acc))
	}
}

// GetBalance returns a Fiber handler for retrieving an account balance.
// @Summary Retrieve account balance
// @Description Returns the current balance for the given account number.
// @Tags accounts
// @Produce json
// @Param account_number path int true "Account number"
// @Success 200 {object} common.Response{data=BalanceResponse} "Balance retrieved successfully"
// @Failure 400 {object} common.ProblemDetails "Invalid account number"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /accounts/{account_number}/balance [get]
// @Security Bearer
func GetBalance(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := AccountNumberParam(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account number", err, "account number must be an integer", fiber.StatusBadRequest)
		}
		res, err := accountSvc.GetBalance(c.UserContext(), queries.GetBalanceQuery{AccountNumber: number})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched", ToBalanceResponse(res))
	}
}

// AccountNumberParam parses the :account_number route parameter.
func AccountNumberParam(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("account_number"), 10, 64)
}
