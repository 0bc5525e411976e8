// Package account provides business logic for customers and the accounts they own.
package account

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/queries"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/shopspring/decimal"
)

// Service creates customers and accounts and answers balance lookups.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// CreateCustomer returns the customer registered under in.Email, creating it
// if absent. A concurrent insert of the same email is resolved by reading
// back the row that won.
func (s *Service) CreateCustomer(
	ctx context.Context,
	in customer.Input,
) (c *customer.Customer, err error) {
	log := s.logger.With("email", in.Email)
	log.Debug("CreateCustomer called")

	candidate, err := customer.New(in)
	if err != nil {
		log.Warn("CreateCustomer rejected", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		existing, err := repo.GetByEmail(ctx, candidate.Email)
		switch {
		case err == nil:
			c = existing
			return nil
		case !errors.Is(err, customer.ErrCustomerNotFound):
			return err
		}
		if err := repo.Create(ctx, candidate); err != nil {
			return err
		}
		c = candidate
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		log.Info("Customer created concurrently, reading existing row")
		c, err = s.findCustomer(ctx, candidate.Email)
	}
	if err != nil {
		log.Debug("CreateCustomer failed", "error", err)
		return nil, err
	}
	log.Info("CreateCustomer successful", "customer_id", c.ID)
	return c, nil
}

func (s *Service) findCustomer(
	ctx context.Context,
	email string,
) (c *customer.Customer, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CustomerRepository()
		if err != nil {
			return err
		}
		c, err = repo.GetByEmail(ctx, email)
		return err
	})
	if err != nil {
		c = nil
	}
	return
}

// CreateAccount opens an account owned by c, funded with initialDeposit.
func (s *Service) CreateAccount(
	ctx context.Context,
	c *customer.Customer,
	initialDeposit decimal.Decimal,
) (a *account.Account, err error) {
	if c == nil {
		return nil, customer.ErrCustomerNotFound
	}
	log := s.logger.With("customer_id", c.ID, "initial_deposit", money.Format(initialDeposit))
	log.Debug("CreateAccount called")

	a, err = account.Open(c.ID, initialDeposit)
	if err != nil {
		log.Warn("CreateAccount rejected", "error", err)
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, a)
	})
	if err != nil {
		log.Debug("CreateAccount failed", "error", err)
		return nil, err
	}
	log.Info("CreateAccount successful", "account_number", a.Number)
	return a, nil
}

// OpenAccount creates or reuses the customer for cmd.Email and opens a new
// account for it. The deposit is validated before any row is written.
func (s *Service) OpenAccount(
	ctx context.Context,
	cmd commands.OpenAccount,
) (*customer.Customer, *account.Account, error) {
	if err := account.ValidateAmount(cmd.InitialDeposit); err != nil {
		s.logger.Warn("OpenAccount rejected", "email", cmd.Email, "error", err)
		return nil, nil, err
	}
	c, err := s.CreateCustomer(ctx, customer.Input{Name: cmd.Name, Email: cmd.Email})
	if err != nil {
		return nil, nil, err
	}
	a, err := s.CreateAccount(ctx, c, cmd.InitialDeposit)
	if err != nil {
		return nil, nil, err
	}
	return c, a, nil
}

// GetAccount returns the account or *account.NotFoundError.
func (s *Service) GetAccount(
	ctx context.Context,
	number int64,
) (a *account.Account, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err = repo.Get(ctx, number)
		return err
	})
	if err != nil {
		s.logger.Warn("GetAccount failed", "account_number", number, "error", err)
		a = nil
	}
	return
}

// GetBalance returns the current balance of an account.
func (s *Service) GetBalance(
	ctx context.Context,
	q queries.GetBalanceQuery,
) (*queries.GetBalanceResult, error) {
	a, err := s.GetAccount(ctx, q.AccountNumber)
	if err != nil {
		return nil, err
	}
	return &queries.GetBalanceResult{
		AccountNumber: a.Number,
		Balance:       a.Balance,
	}, nil
}
