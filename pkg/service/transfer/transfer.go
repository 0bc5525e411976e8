// Package transfer moves money between accounts and reads the transfer ledger.
package transfer

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/repository"
)

// Service is the transfer engine. Every transfer runs in a single unit of
// work: both balance updates and the ledger row commit together or not at all.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the clock used to stamp transfers.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		uow:    uow,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transfer debits cmd.FromAccount and credits cmd.ToAccount by cmd.Amount.
//
// Checks run in this order and the first failure wins: amount, source
// exists, destination exists, distinct accounts, sufficient funds. The
// balance check happens under the row locks, so it sees committed state.
func (s *Service) Transfer(
	ctx context.Context,
	cmd commands.Transfer,
) (tr *account.Transfer, err error) {
	log := s.logger.With(
		"from_account_number", cmd.FromAccount,
		"to_account_number", cmd.ToAccount,
		"amount", cmd.Amount.String(),
	)
	log.Debug("Transfer called")

	if err = account.ValidateAmount(cmd.Amount); err != nil {
		log.Warn("Transfer rejected", "error", err)
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}

		locked, err := accounts.GetForUpdate(ctx, cmd.FromAccount, cmd.ToAccount)
		if err != nil {
			return err
		}
		from, ok := locked[cmd.FromAccount]
		if !ok {
			return &account.NotFoundError{AccountNumber: cmd.FromAccount}
		}
		to, ok := locked[cmd.ToAccount]
		if !ok {
			return &account.NotFoundError{AccountNumber: cmd.ToAccount}
		}
		if err := from.ValidateTransfer(to, cmd.Amount); err != nil {
			return err
		}

		at := s.now().UTC().Truncate(time.Microsecond)
		from.Debit(cmd.Amount, at)
		to.Credit(cmd.Amount, at)
		if err := accounts.UpdateBalance(ctx, from.Number, from.Balance); err != nil {
			return err
		}
		if err := accounts.UpdateBalance(ctx, to.Number, to.Balance); err != nil {
			return err
		}

		t := account.NewTransfer(from.Number, to.Number, cmd.Amount, at)
		if err := transfers.Create(ctx, t); err != nil {
			return err
		}
		tr = t
		return nil
	})
	if err != nil {
		if domain.Classify(err) == domain.OutcomeStorageFailure {
			log.Debug("Transfer failed", "error", err)
		} else {
			log.Warn("Transfer rejected", "error", err)
		}
		return nil, err
	}
	log.Info("Transfer successful", "transfer_id", tr.ID, "amount", money.Format(tr.Amount))
	return tr, nil
}

// History lists every transfer touching the account, newest first.
// Returns *account.NotFoundError when the account does not exist.
func (s *Service) History(
	ctx context.Context,
	accountNumber int64,
) (list []*account.Transfer, err error) {
	log := s.logger.With("account_number", accountNumber)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		if _, err := accounts.Get(ctx, accountNumber); err != nil {
			return err
		}
		transfers, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		list, err = transfers.ListByAccount(ctx, accountNumber)
		return err
	})
	if err != nil {
		log.Warn("History failed", "error", err)
		return nil, err
	}
	log.Debug("History successful", "count", len(list))
	return list, nil
}
