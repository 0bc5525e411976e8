package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is an immutable record of money moved between two accounts.
type Transfer struct {
	ID          int64
	FromAccount int64
	ToAccount   int64
	Amount      decimal.Decimal
	Timestamp   time.Time
}

// NewTransfer builds an unsaved transfer stamped with at in UTC.
func NewTransfer(from, to int64, amount decimal.Decimal, at time.Time) *Transfer {
	return &Transfer{
		FromAccount: from,
		ToAccount:   to,
		Amount:      amount,
		Timestamp:   at.UTC(),
	}
}

// Involves reports whether the account is the source or destination.
func (t *Transfer) Involves(accountNumber int64) bool {
	return t.FromAccount == accountNumber || t.ToAccount == accountNumber
}
