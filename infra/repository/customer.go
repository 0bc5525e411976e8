package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/repository"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository bound to db.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	var m Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		err = wrapError("find customer by email", err)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, err
	}
	return mapCustomerToDomain(&m), nil
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	m := Customer{
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return wrapError("insert customer", err)
	}
	c.ID = m.CustomerID
	return nil
}

func mapCustomerToDomain(m *Customer) *customer.Customer {
	return &customer.Customer{
		ID:        m.CustomerID,
		Name:      m.Name,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}
