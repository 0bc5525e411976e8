package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/utils"
)

var (
	// ErrCustomerNotFound is returned when no customer matches the lookup.
	ErrCustomerNotFound = fmt.Errorf("customer not found: %w", domain.ErrNotFound)
	// ErrNameRequired is returned when a customer is created without a name.
	ErrNameRequired = fmt.Errorf("name cannot be empty: %w", domain.ErrValidation)
	// ErrInvalidEmail is returned when the email is not a bare address.
	ErrInvalidEmail = fmt.Errorf("invalid email: %w", domain.ErrValidation)
)

// Customer is a bank customer identified by email. Customers are never deleted.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

// Input carries the fields needed to create a customer.
type Input struct {
	Name  string
	Email string
}

// Normalize returns a copy with surrounding whitespace removed.
func (in Input) Normalize() Input {
	return Input{
		Name:  strings.TrimSpace(in.Name),
		Email: utils.NormalizeEmail(in.Email),
	}
}

// Validate checks the name and email.
func (in Input) Validate() error {
	var errs []error
	if in.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if !utils.IsEmail(in.Email) {
		errs = append(errs, ErrInvalidEmail)
	}
	return errors.Join(errs...)
}

// New builds an unsaved customer from in. The id is assigned by the store.
func New(in Input) (*Customer, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &Customer{
		Name:      in.Name,
		Email:     in.Email,
		CreatedAt: time.Now().UTC(),
	}, nil
}
