package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account holds a customer's balance.
//
// Invariants:
//   - Number and CustomerID never change after creation.
//   - Balance has at most two decimal places and is never negative.
//   - Balance only changes through Debit and Credit, driven by a transfer.
type Account struct {
	Number     int64
	CustomerID int64
	Balance    decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	number     int64
	customerID int64
	balance    decimal.Decimal
	createdAt  time.Time
	updatedAt  time.Time
}

// New creates a new Builder. The account number is assigned by the store.
func New() *Builder {
	return &Builder{
		balance:   decimal.Zero,
		createdAt: time.Now().UTC(),
	}
}

// WithNumber sets the account number. Used when hydrating from the store.
func (b *Builder) WithNumber(n int64) *Builder {
	b.number = n
	return b
}

// WithCustomerID sets the owning customer. This is a mandatory field.
func (b *Builder) WithCustomerID(id int64) *Builder {
	b.customerID = id
	return b
}

// WithBalance sets the balance.
func (b *Builder) WithBalance(balance decimal.Decimal) *Builder {
	b.balance = balance
	return b
}

// WithCreatedAt sets the creation time.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt sets the time of the last balance change.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates the owner and balance before returning the Account.
func (b *Builder) Build() (*Account, error) {
	if b.customerID <= 0 {
		return nil, ErrCustomerRequired
	}
	if b.balance.IsNegative() {
		return nil, ErrNegativeBalance
	}
	return &Account{
		Number:     b.number,
		CustomerID: b.customerID,
		Balance:    b.balance,
		CreatedAt:  b.createdAt,
		UpdatedAt:  b.updatedAt,
	}, nil
}

// Open builds a new account for customerID funded with initialDeposit.
func Open(customerID int64, initialDeposit decimal.Decimal) (*Account, error) {
	if err := ValidateAmount(initialDeposit); err != nil {
		return nil, err
	}
	return New().WithCustomerID(customerID).WithBalance(initialDeposit).Build()
}

// ValidateTransfer checks the transfer rules in order: same account,
// then sufficient funds. Existence is resolved by the caller.
func (a *Account) ValidateTransfer(dest *Account, amount decimal.Decimal) error {
	if a == nil || dest == nil {
		return ErrNilAccount
	}
	if a.Number == dest.Number {
		return &SameAccountError{AccountNumber: a.Number}
	}
	if err := ValidateAmount(amount); err != nil {
		return err
	}
	if a.Balance.LessThan(amount) {
		return &InsufficientFundsError{Balance: a.Balance, Amount: amount}
	}
	return nil
}

// Debit removes amount from the balance. Callers validate first.
func (a *Account) Debit(amount decimal.Decimal, at time.Time) {
	a.Balance = a.Balance.Sub(amount)
	a.UpdatedAt = at
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal, at time.Time) {
	a.Balance = a.Balance.Add(amount)
	a.UpdatedAt = at
}
