package repository

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/shopspring/decimal"
)

// CustomerRepository defines the data access operations for customers.
type CustomerRepository interface {
	// GetByEmail returns customer.ErrCustomerNotFound when no row matches.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
	// Create assigns c.ID. A duplicate email yields an error matching domain.ErrAlreadyExists.
	Create(ctx context.Context, c *customer.Customer) error
}

// AccountRepository defines the data access operations for accounts.
type AccountRepository interface {
	// Get returns *account.NotFoundError when the account does not exist.
	Get(ctx context.Context, number int64) (*account.Account, error)
	// GetForUpdate locks the given accounts for the rest of the transaction,
	// one row at a time in ascending account number order, and returns the
	// ones that exist keyed by number. Duplicate numbers are locked once.
	GetForUpdate(ctx context.Context, numbers ...int64) (map[int64]*account.Account, error)
	// Create assigns a.Number.
	Create(ctx context.Context, a *account.Account) error
	UpdateBalance(ctx context.Context, number int64, balance decimal.Decimal) error
}

// TransferRepository defines the data access operations for the transfer ledger.
type TransferRepository interface {
	// Create assigns t.ID.
	Create(ctx context.Context, t *account.Transfer) error
	// ListByAccount returns transfers where number is source or destination,
	// newest first, ties broken by descending id.
	ListByAccount(ctx context.Context, number int64) ([]*account.Transfer, error)
}
