package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a customer record in the database.
type Customer struct {
	CustomerID int64     `gorm:"column:customer_id;primaryKey;autoIncrement"`
	Name       string    `gorm:"not null"`
	Email      string    `gorm:"uniqueIndex;not null;size:255"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (Customer) TableName() string { return "customers" }

// Account represents an account record in the database.
type Account struct {
	AccountNumber int64           `gorm:"column:account_number;primaryKey;autoIncrement"`
	Balance       decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_accounts_balance_non_negative,balance >= 0"`
	CustomerID    int64           `gorm:"column:customer_id;not null;index"`
	Customer      *Customer       `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:RESTRICT"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time
}

func (Account) TableName() string { return "accounts" }

// Transfer represents a row of the append-only transfer ledger.
type Transfer struct {
	ID                int64           `gorm:"primaryKey;autoIncrement"`
	FromAccountNumber int64           `gorm:"column:from_account_number;not null;index;check:chk_transfers_distinct_accounts,from_account_number <> to_account_number"`
	ToAccountNumber   int64           `gorm:"column:to_account_number;not null;index"`
	Amount            decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_transfers_amount_positive,amount > 0"`
	Timestamp         time.Time       `gorm:"column:timestamp;not null;index"`
	From              *Account        `gorm:"foreignKey:FromAccountNumber;references:AccountNumber;constraint:OnDelete:RESTRICT"`
	To                *Account        `gorm:"foreignKey:ToAccountNumber;references:AccountNumber;constraint:OnDelete:RESTRICT"`
}

func (Transfer) TableName() string { return "transfers" }

// Models lists every table owned by the ledger, in creation order.
func Models() []any {
	return []any{&Customer{}, &Account{}, &Transfer{}}
}
