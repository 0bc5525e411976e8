// Package commands contains command DTOs for service and handler orchestration.
package commands

import (
	"github.com/shopspring/decimal"
)

// OpenAccount creates (or reuses by email) a customer and opens a funded account.
type OpenAccount struct {
	Name           string
	Email          string
	InitialDeposit decimal.Decimal
}

// Transfer moves Amount from one account to another.
type Transfer struct {
	FromAccount int64
	ToAccount   int64
	Amount      decimal.Decimal
}
