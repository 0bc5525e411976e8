package transfer

import (
	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/middleware"
	authsvc "github.com/amirasaad/ledger/pkg/service/auth"
	transfersvc "github.com/amirasaad/ledger/pkg/service/transfer"
	webaccount "github.com/amirasaad/ledger/webapi/account"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers HTTP routes for transfers. All routes require a bearer token.
//
// Routes:
//   - POST /transfers                                  : Move funds from one account to another.
//   - GET  /transfers/:account_number/transfer_history : List transfers touching the account, newest first.
func Routes(app *fiber.App, transferSvc *transfersvc.Service, authSvc *authsvc.Service) {
	protected := middleware.JwtProtected(authSvc)
	app.Post("/transfers", protected, Transfer(transferSvc))
	app.Get("/transfers/:account_number/transfer_history", protected, History(transferSvc))
}

// Transfer returns a Fiber handler that moves funds between two accounts.
// @Summary Transfer funds between accounts
// @Description Moves the amount from one account to another atomically. Both balances and the transfer record are committed together or not at all.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer details"
// @Success 200 {object} common.Response{data=TransferResponse} "Transfer successful"
// @Failure 400 {object} common.ProblemDetails "Same account, insufficient funds or invalid amount"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /transfers [post]
// @Security Bearer
func Transfer(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err // error response already written
		}
		t, err := transferSvc.Transfer(c.UserContext(), commands.Transfer{
			FromAccount: input.FromAccountNumber,
			ToAccount:   input.ToAccountNumber,
			Amount:      input.Amount,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		log.Infof("Transfer %d recorded by %s", t.ID, middleware.CurrentUser(c))
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", ToTransferResponse(t))
	}
}

// History returns a Fiber handler listing the transfers of an account.
// @Summary Get account transfer history
// @Description Returns all transfers to and from the given account, most recent first.
// @Tags transfers
// @Produce json
// @Param account_number path int true "Account number"
// @Success 200 {object} common.Response{data=[]TransferResponse} "Transfer history"
// @Failure 400 {object} common.ProblemDetails "Invalid account number"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /transfers/{account_number}/transfer_history [get]
// @Security Bearer
func History(transferSvc *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := webaccount.AccountNumberParam(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account number", err, "account number must be an integer", fiber.StatusBadRequest)
		}
		list, err := transferSvc.History(c.UserContext(), number)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get transfer history", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer history fetched", ToTransferResponses(list))
	}
}
