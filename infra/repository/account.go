package repository

import (
	"context"
	"errors"
	"slices"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository bound to db.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(ctx context.Context, number int64) (*account.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).Where("account_number = ?", number).First(&m).Error; err != nil {
		err = wrapError("find account", err)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &account.NotFoundError{AccountNumber: number}
		}
		return nil, err
	}
	return mapAccountToDomain(&m)
}

// GetForUpdate takes row locks one account at a time in ascending number
// order, so two transfers over the same pair never wait on each other in
// opposite orders. Drivers without row locking ignore the clause.
func (r *accountRepository) GetForUpdate(
	ctx context.Context,
	numbers ...int64,
) (map[int64]*account.Account, error) {
	ordered := slices.Clone(numbers)
	slices.Sort(ordered)
	ordered = slices.Compact(ordered)

	found := make(map[int64]*account.Account, len(ordered))
	for _, n := range ordered {
		var rows []Account
		err := r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_number = ?", n).
			Find(&rows).Error
		if err != nil {
			return nil, wrapError("lock account", err)
		}
		if len(rows) > 0 {
			a, err := mapAccountToDomain(&rows[0])
			if err != nil {
				return nil, err
			}
			found[n] = a
		}
	}
	return found, nil
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	m := Account{
		Balance:    a.Balance,
		CustomerID: a.CustomerID,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapError("insert account", err)
	}
	a.Number = m.AccountNumber
	a.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *accountRepository) UpdateBalance(ctx context.Context, number int64, balance decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_number = ?", number).
		Update("balance", balance)
	if res.Error != nil {
		return wrapError("update balance", res.Error)
	}
	if res.RowsAffected == 0 {
		return &account.NotFoundError{AccountNumber: number}
	}
	return nil
}

func mapAccountToDomain(m *Account) (*account.Account, error) {
	a, err := account.New().
		WithNumber(m.AccountNumber).
		WithCustomerID(m.CustomerID).
		WithBalance(m.Balance).
		WithCreatedAt(m.CreatedAt).
		WithUpdatedAt(m.UpdatedAt).
		Build()
	if err != nil {
		return nil, domain.NewStorageError("load account", err)
	}
	return a, nil
}
