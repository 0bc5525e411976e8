package repository_test

import (
	"context"
	"testing"
	"time"

	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type LedgerStoreTestSuite struct {
	suite.Suite
	db  *gorm.DB
	uow *infrarepo.UoW
	ctx context.Context
}

func (s *LedgerStoreTestSuite) SetupTest() {
	s.db = testutils.NewTestDB(s.T())
	s.uow = infrarepo.NewUoW(s.db)
	s.ctx = context.Background()
}

func (s *LedgerStoreTestSuite) createCustomer(email string) *customer.Customer {
	c, err := customer.New(customer.Input{Name: "Test", Email: email})
	s.Require().NoError(err)
	repo, _ := s.uow.CustomerRepository()
	s.Require().NoError(repo.Create(s.ctx, c))
	return c
}

func (s *LedgerStoreTestSuite) createAccount(customerID int64, balance string) *account.Account {
	a, err := account.Open(customerID, money.MustParse(balance))
	s.Require().NoError(err)
	repo, _ := s.uow.AccountRepository()
	s.Require().NoError(repo.Create(s.ctx, a))
	return a
}

func (s *LedgerStoreTestSuite) TestCustomerCreateAndFind() {
	c := s.createCustomer("alice@example.com")
	s.Positive(c.ID)

	repo, _ := s.uow.CustomerRepository()
	found, err := repo.GetByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(c.ID, found.ID)
	s.Equal("Test", found.Name)

	_, err = repo.GetByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, customer.ErrCustomerNotFound)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *LedgerStoreTestSuite) TestCustomerDuplicateEmailIsConflict() {
	s.createCustomer("dup@example.com")

	c, err := customer.New(customer.Input{Name: "Other", Email: "dup@example.com"})
	s.Require().NoError(err)
	repo, _ := s.uow.CustomerRepository()
	err = repo.Create(s.ctx, c)
	s.ErrorIs(err, domain.ErrAlreadyExists)
	s.Zero(c.ID)
}

func (s *LedgerStoreTestSuite) TestAccountCreateAndGet() {
	c := s.createCustomer("bob@example.com")
	a1 := s.createAccount(c.ID, "100.50")
	a2 := s.createAccount(c.ID, "0.01")
	s.Greater(a2.Number, a1.Number)

	repo, _ := s.uow.AccountRepository()
	got, err := repo.Get(s.ctx, a1.Number)
	s.Require().NoError(err)
	s.Equal("100.50", money.Format(got.Balance))
	s.Equal(c.ID, got.CustomerID)
	s.False(got.CreatedAt.IsZero())
	s.False(got.UpdatedAt.IsZero())

	_, err = repo.Get(s.ctx, 9999)
	var nf *account.NotFoundError
	s.Require().ErrorAs(err, &nf)
	s.Equal(int64(9999), nf.AccountNumber)
}

func (s *LedgerStoreTestSuite) TestGetForUpdateReturnsExisting() {
	c := s.createCustomer("carol@example.com")
	a := s.createAccount(c.ID, "5")
	b := s.createAccount(c.ID, "6")

	err := s.uow.Do(s.ctx, func(uow repository.UnitOfWork) error {
		repo, _ := uow.AccountRepository()
		found, err := repo.GetForUpdate(s.ctx, b.Number, a.Number, 12345)
		s.Require().NoError(err)
		s.Len(found, 2)
		s.Equal("6.00", money.Format(found[b.Number].Balance))
		return nil
	})
	s.NoError(err)
}

func (s *LedgerStoreTestSuite) TestUpdateBalance() {
	c := s.createCustomer("dave@example.com")
	a := s.createAccount(c.ID, "5")

	repo, _ := s.uow.AccountRepository()
	s.Require().NoError(repo.UpdateBalance(s.ctx, a.Number, money.MustParse("12.34")))
	got, err := repo.Get(s.ctx, a.Number)
	s.Require().NoError(err)
	s.Equal("12.34", money.Format(got.Balance))

	s.ErrorIs(repo.UpdateBalance(s.ctx, 4242, money.MustParse("1")), account.ErrAccountNotFound)
}

func (s *LedgerStoreTestSuite) TestRollbackDiscardsWrites() {
	c := s.createCustomer("erin@example.com")
	a := s.createAccount(c.ID, "50")
	b := s.createAccount(c.ID, "0")

	err := s.uow.Do(s.ctx, func(uow repository.UnitOfWork) error {
		accounts, _ := uow.AccountRepository()
		transfers, _ := uow.TransferRepository()
		s.Require().NoError(accounts.UpdateBalance(s.ctx, a.Number, money.MustParse("0")))
		s.Require().NoError(transfers.Create(s.ctx, account.NewTransfer(a.Number, b.Number, money.MustParse("50"), time.Now())))
		return &account.InsufficientFundsError{}
	})
	s.ErrorIs(err, account.ErrInsufficientFunds)

	accounts, _ := s.uow.AccountRepository()
	got, err := accounts.Get(s.ctx, a.Number)
	s.Require().NoError(err)
	s.Equal("50.00", money.Format(got.Balance))

	transfers, _ := s.uow.TransferRepository()
	list, err := transfers.ListByAccount(s.ctx, a.Number)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *LedgerStoreTestSuite) TestListByAccountNewestFirst() {
	c := s.createCustomer("frank@example.com")
	a := s.createAccount(c.ID, "100")
	b := s.createAccount(c.ID, "100")
	other := s.createAccount(c.ID, "100")

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	repo, _ := s.uow.TransferRepository()
	create := func(from, to int64, amount string, at time.Time) *account.Transfer {
		tr := account.NewTransfer(from, to, money.MustParse(amount), at)
		s.Require().NoError(repo.Create(s.ctx, tr))
		return tr
	}
	t1 := create(a.Number, b.Number, "1", base)
	t2 := create(b.Number, a.Number, "2", base.Add(time.Minute))
	t3 := create(a.Number, b.Number, "3", base.Add(time.Minute)) // same timestamp as t2
	create(b.Number, other.Number, "4", base.Add(time.Hour))

	list, err := repo.ListByAccount(s.ctx, a.Number)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal([]int64{t3.ID, t2.ID, t1.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})
	s.Equal("3.00", money.Format(list[0].Amount))
	s.True(list[2].Timestamp.Equal(base))
	for _, tr := range list {
		s.True(tr.Involves(a.Number))
	}
}

func (s *LedgerStoreTestSuite) TestSchemaRejectsUnknownOwner() {
	a, err := account.Open(424242, money.MustParse("10"))
	s.Require().NoError(err)
	repo, _ := s.uow.AccountRepository()
	s.Error(repo.Create(s.ctx, a))
}

func (s *LedgerStoreTestSuite) TestSchemaRejectsInvalidTransfers() {
	c := s.createCustomer("gina@example.com")
	a := s.createAccount(c.ID, "10")
	b := s.createAccount(c.ID, "10")
	repo, _ := s.uow.TransferRepository()

	s.Error(repo.Create(s.ctx, account.NewTransfer(a.Number, a.Number, money.MustParse("1"), time.Now())), "same account")
	s.Error(repo.Create(s.ctx, account.NewTransfer(a.Number, 9999, money.MustParse("1"), time.Now())), "unknown destination")

	s.Require().NoError(repo.Create(s.ctx, account.NewTransfer(a.Number, b.Number, money.MustParse("1"), time.Now())))

	list, err := repo.ListByAccount(s.ctx, a.Number)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func TestLedgerStoreTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerStoreTestSuite))
}

func TestAutoMigrateIsIdempotent(t *testing.T) {
	db := testutils.NewTestDB(t)
	require.NoError(t, infrarepo.AutoMigrate(db))
	for _, table := range []string{"customers", "accounts", "transfers"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}
