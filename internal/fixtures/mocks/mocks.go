// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUnitOfWork records Do calls and then runs fn against itself, unless
// the expectation returns an error, in which case fn is skipped.
type MockUnitOfWork struct {
	mock.Mock
}

func NewMockUnitOfWork(t testingT) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	ret := m.Called(ctx, fn)
	if err := ret.Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *MockUnitOfWork) CustomerRepository() (repository.CustomerRepository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(repository.CustomerRepository)
	return repo, ret.Error(1)
}

func (m *MockUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(repository.AccountRepository)
	return repo, ret.Error(1)
}

func (m *MockUnitOfWork) TransferRepository() (repository.TransferRepository, error) {
	ret := m.Called()
	repo, _ := ret.Get(0).(repository.TransferRepository)
	return repo, ret.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func NewMockCustomerRepository(t testingT) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	ret := m.Called(ctx, email)
	c, _ := ret.Get(0).(*customer.Customer)
	return c, ret.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func NewMockAccountRepository(t testingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Get(ctx context.Context, number int64) (*account.Account, error) {
	ret := m.Called(ctx, number)
	a, _ := ret.Get(0).(*account.Account)
	return a, ret.Error(1)
}

func (m *MockAccountRepository) GetForUpdate(
	ctx context.Context,
	numbers ...int64,
) (map[int64]*account.Account, error) {
	ret := m.Called(ctx, numbers)
	found, _ := ret.Get(0).(map[int64]*account.Account)
	return found, ret.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, number int64, balance decimal.Decimal) error {
	return m.Called(ctx, number, balance).Error(0)
}

type MockTransferRepository struct {
	mock.Mock
}

func NewMockTransferRepository(t testingT) *MockTransferRepository {
	m := &MockTransferRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransferRepository) Create(ctx context.Context, t *account.Transfer) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTransferRepository) ListByAccount(ctx context.Context, number int64) ([]*account.Transfer, error) {
	ret := m.Called(ctx, number)
	list, _ := ret.Get(0).([]*account.Transfer)
	return list, ret.Error(1)
}
