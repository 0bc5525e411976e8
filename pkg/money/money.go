// Package money provides helpers for monetary values held in accounts.
//
// Invariants:
//   - Amounts are fixed-point decimals with at most two fractional digits.
//   - Values never travel as float64; parsing goes through decimal strings.
//   - There is a single implicit currency.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits stored for any amount.
const Scale int32 = 2

var (
	// ErrInvalidAmount is returned when a value cannot be parsed as a decimal.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidPrecision is returned when an amount has more than two decimal places.
	ErrInvalidPrecision = errors.New("amount must have at most 2 decimal places")

	// ErrAmountMustBePositive is returned when an amount is zero or negative.
	ErrAmountMustBePositive = errors.New("amount must be positive")
)

// Parse converts a decimal string such as "12.50" into an amount.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if !HasValidScale(d) {
		return decimal.Zero, ErrInvalidPrecision
	}
	return d, nil
}

// MustParse is like Parse but panics on error. Intended for tests and constants.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// HasValidScale reports whether d is representable with two decimal places.
func HasValidScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(Scale))
}

// ValidatePositive checks that d is strictly positive and fits the scale.
func ValidatePositive(d decimal.Decimal) error {
	if !d.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !HasValidScale(d) {
		return ErrInvalidPrecision
	}
	return nil
}

// Format renders d with exactly two decimal places.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

// Sum adds all values.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
