package repository

import (
	"context"
)

// UnitOfWork defines the contract for transactional work and repository access.
//
// Do runs fn inside one transaction. Repositories obtained from the
// UnitOfWork passed to fn share that transaction; if fn returns an error
// or panics, every write is rolled back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	CustomerRepository() (CustomerRepository, error)
	AccountRepository() (AccountRepository, error)
	TransferRepository() (TransferRepository, error)
}
