package transfer

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/shopspring/decimal"
)

// TransferRequest represents the request body for moving funds between accounts.
type TransferRequest struct {
	FromAccountNumber int64           `json:"from_account_number" validate:"required"`
	ToAccountNumber   int64           `json:"to_account_number" validate:"required"`
	Amount            decimal.Decimal `json:"amount" swaggertype:"string" example:"50.00" validate:"money"`
}

// TransferResponse is the API representation of a committed transfer.
type TransferResponse struct {
	FromAccountNumber int64     `json:"from_account_number" example:"1001"`
	ToAccountNumber   int64     `json:"to_account_number" example:"1002"`
	Amount            string    `json:"amount" example:"50.00"`
	Timestamp         time.Time `json:"timestamp"`
}

// ToTransferResponse maps a domain transfer to the API shape.
func ToTransferResponse(t *account.Transfer) TransferResponse {
	return TransferResponse{
		FromAccountNumber: t.FromAccount,
		ToAccountNumber:   t.ToAccount,
		Amount:            money.Format(t.Amount),
		Timestamp:         t.Timestamp,
	}
}

// ToTransferResponses maps a history listing, keeping its order.
func ToTransferResponses(list []*account.Transfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(list))
	for _, t := range list {
		out = append(out, ToTransferResponse(t))
	}
	return out
}
