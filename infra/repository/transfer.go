package repository

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository bound to db.
func NewTransferRepository(db *gorm.DB) repository.TransferRepository {
	return &transferRepository{db: db}
}

func (r *transferRepository) Create(ctx context.Context, t *account.Transfer) error {
	m := Transfer{
		FromAccountNumber: t.FromAccount,
		ToAccountNumber:   t.ToAccount,
		Amount:            t.Amount,
		Timestamp:         t.Timestamp,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapError("insert transfer", err)
	}
	t.ID = m.ID
	return nil
}

var newestFirst = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "timestamp"}, Desc: true},
	{Column: clause.Column{Name: "id"}, Desc: true},
}}

func (r *transferRepository) ListByAccount(ctx context.Context, number int64) ([]*account.Transfer, error) {
	var rows []Transfer
	err := r.db.WithContext(ctx).
		Where("from_account_number = ? OR to_account_number = ?", number, number).
		Order(newestFirst).
		Find(&rows).Error
	if err != nil {
		return nil, wrapError("list transfers", err)
	}
	result := make([]*account.Transfer, 0, len(rows))
	for i := range rows {
		result = append(result, mapTransferToDomain(&rows[i]))
	}
	return result, nil
}

func mapTransferToDomain(m *Transfer) *account.Transfer {
	return &account.Transfer{
		ID:          m.ID,
		FromAccount: m.FromAccountNumber,
		ToAccount:   m.ToAccountNumber,
		Amount:      m.Amount,
		Timestamp:   m.Timestamp.UTC(),
	}
}
