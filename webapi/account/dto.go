package account

import (
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/queries"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest represents the customer details and opening deposit.
type CreateAccountRequest struct {
	Name           string          `json:"name" validate:"required,max=255"`
	Email          string          `json:"email" validate:"required,email,max=255"`
	InitialDeposit decimal.Decimal `json:"initial_deposit" swaggertype:"string" example:"250.00" validate:"money"`
}

// AccountResponse is returned when an account is opened.
type AccountResponse struct {
	AccountNumber int64  `json:"account_number" example:"1234"`
	Balance       string `json:"balance" example:"250.00"`
	CustomerID    int64  `json:"customer_id" example:"99"`
	Name          string `json:"name" example:"Alice Wonderland"`
	Email         string `json:"email" example:"alice@example.com"`
}

// BalanceResponse is the current balance of one account.
type BalanceResponse struct {
	AccountNumber int64  `json:"account_number" example:"1234"`
	Balance       string `json:"balance" example:"100.00"`
}

// ToAccountResponse maps a customer and its new account to the API shape.
func ToAccountResponse(c *customer.Customer, a *account.Account) AccountResponse {
	return AccountResponse{
		AccountNumber: a.Number,
		Balance:       money.Format(a.Balance),
		CustomerID:    c.ID,
		Name:          c.Name,
		Email:         c.Email,
	}
}

// ToBalanceResponse maps a balance query result to the API shape.
func ToBalanceResponse(r *queries.GetBalanceResult) BalanceResponse {
	return BalanceResponse{
		AccountNumber: r.AccountNumber,
		Balance:       money.Format(r.Balance),
	}
}
