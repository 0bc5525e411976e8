package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one abstraction.
// Repositories handed out inside Do share the transaction session.
type UoW struct {
	db          *gorm.DB
	tx          *gorm.DB
	lockTimeout time.Duration
}

// Option configures a UoW.
type Option func(*UoW)

// WithLockTimeout bounds row lock waits inside Do. Only applied on PostgreSQL.
func WithLockTimeout(d time.Duration) Option {
	return func(u *UoW) {
		u.lockTimeout = d
	}
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB, opts ...Option) *UoW {
	u := &UoW{db: db}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Do runs fn in a transaction. Failures to begin or commit are reported as
// *domain.StorageError; errors returned by fn are passed through unchanged.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	var fnErr error
	err := u.session().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.applyLockTimeout(tx); err != nil {
			fnErr = domain.NewStorageError("set lock timeout", err)
			return fnErr
		}
		fnErr = fn(&UoW{db: u.db, tx: tx, lockTimeout: u.lockTimeout})
		return fnErr
	})
	if err != nil && fnErr == nil {
		return domain.NewStorageError("transaction", err)
	}
	return err
}

func (u *UoW) applyLockTimeout(tx *gorm.DB) error {
	if u.lockTimeout <= 0 || u.tx != nil || tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.lockTimeout.Milliseconds())).Error
}

// session returns the transaction when inside Do, the root handle otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UoW) CustomerRepository() (repository.CustomerRepository, error) {
	return NewCustomerRepository(u.session()), nil
}

func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return NewAccountRepository(u.session()), nil
}

func (u *UoW) TransferRepository() (repository.TransferRepository, error) {
	return NewTransferRepository(u.session()), nil
}

// AutoMigrate creates or updates the ledger tables from the gorm models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate ledger schema: %w", err)
	}
	return nil
}
