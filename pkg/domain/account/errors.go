package account

import (
	"errors"
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	// ErrTransactionAmountMustBePositive is returned when a transfer or deposit amount is not positive.
	ErrTransactionAmountMustBePositive = errors.New("transaction amount must be positive")

	// ErrInsufficientFunds is returned when an account has insufficient funds for a transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCannotTransferToSameAccount is returned when a transfer is attempted from an account to itself.
	ErrCannotTransferToSameAccount = errors.New("cannot transfer to same account")

	// ErrNilAccount is returned when a nil account is provided to a transfer.
	ErrNilAccount = errors.New("nil account")
)

// NotFoundError names the account number that could not be resolved.
type NotFoundError struct {
	AccountNumber int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Account %d not found", e.AccountNumber)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrAccountNotFound || target == domain.ErrNotFound
}

func (e *NotFoundError) Outcome() domain.Outcome { return domain.OutcomeNotFound }

// SameAccountError is returned when source and destination resolve to one account.
type SameAccountError struct {
	AccountNumber int64
}

func (e *SameAccountError) Error() string {
	return fmt.Sprintf("Can not transfer to the same account : %d", e.AccountNumber)
}

func (e *SameAccountError) Is(target error) bool {
	return target == ErrCannotTransferToSameAccount
}

func (e *SameAccountError) Outcome() domain.Outcome { return domain.OutcomeSameAccount }

// InsufficientFundsError carries the balance observed under lock and the attempted amount.
type InsufficientFundsError struct {
	Balance decimal.Decimal
	Amount  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"Insufficient funds : balance=%s, attempted transfer = %s",
		money.Format(e.Balance),
		money.Format(e.Amount),
	)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

func (e *InsufficientFundsError) Outcome() domain.Outcome { return domain.OutcomeInsufficientFunds }

// InvalidAmountError rejects a transfer or deposit amount before any state is touched.
type InvalidAmountError struct {
	Amount decimal.Decimal
	Err    error
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %s: %v", e.Amount.String(), e.Err)
}

func (e *InvalidAmountError) Unwrap() error { return e.Err }

func (e *InvalidAmountError) Is(target error) bool {
	if target == domain.ErrValidation {
		return true
	}
	return target == ErrTransactionAmountMustBePositive && errors.Is(e.Err, money.ErrAmountMustBePositive)
}

func (e *InvalidAmountError) Outcome() domain.Outcome { return domain.OutcomeInvalidInput }

// ValidateAmount checks that amount is positive with at most two decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if err := money.ValidatePositive(amount); err != nil {
		return &InvalidAmountError{Amount: amount, Err: err}
	}
	return nil
}

var (
	// ErrCustomerRequired is returned when an account is built without an owner.
	ErrCustomerRequired = errors.New("customer id is required")

	// ErrNegativeBalance is returned when an account would hold a negative balance.
	ErrNegativeBalance = errors.New("balance cannot be negative")
)
