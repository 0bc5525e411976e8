package transfer_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"testing"
	"time"

	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain"
	domainaccount "github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/queries"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/pkg/service/transfer"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// stepClock returns start, start+step, start+2*step, ...
type stepClock struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(c.step)
	return now
}

type TransferEngineTestSuite struct {
	suite.Suite
	ctx      context.Context
	accounts *accountsvc.Service
	engine   *transfer.Service
	clock    *stepClock
}

func (s *TransferEngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	db := testutils.NewTestDB(s.T())
	uow := infrarepo.NewUoW(db)
	logger := testutils.DiscardLogger()
	s.clock = &stepClock{next: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), step: time.Second}
	s.accounts = accountsvc.New(uow, logger)
	s.engine = transfer.New(uow, logger, transfer.WithClock(s.clock.Now))
}

func (s *TransferEngineTestSuite) open(email, deposit string) int64 {
	_, a, err := s.accounts.OpenAccount(s.ctx, commands.OpenAccount{
		Name:           email,
		Email:          email,
		InitialDeposit: money.MustParse(deposit),
	})
	s.Require().NoError(err)
	return a.Number
}

func (s *TransferEngineTestSuite) balance(n int64) string {
	res, err := s.accounts.GetBalance(s.ctx, queries.GetBalanceQuery{AccountNumber: n})
	s.Require().NoError(err)
	return money.Format(res.Balance)
}

func (s *TransferEngineTestSuite) transfer(from, to int64, amount string) (*domainaccount.Transfer, error) {
	return s.engine.Transfer(s.ctx, commands.Transfer{FromAccount: from, ToAccount: to, Amount: money.MustParse(amount)})
}

func (s *TransferEngineTestSuite) TestAliceAndBob() {
	a := s.open("alice@example.com", "100.00")
	b := s.open("bob@example.com", "50.00")

	tr, err := s.transfer(a, b, "30.00")
	s.Require().NoError(err)
	s.Positive(tr.ID)
	s.Equal(a, tr.FromAccount)
	s.Equal(b, tr.ToAccount)
	s.Equal("30.00", money.Format(tr.Amount))

	s.Equal("70.00", s.balance(a))
	s.Equal("80.00", s.balance(b))

	for _, n := range []int64{a, b} {
		hist, err := s.engine.History(s.ctx, n)
		s.Require().NoError(err)
		s.Require().Len(hist, 1)
		s.Equal(tr.ID, hist[0].ID)
		s.True(hist[0].Timestamp.Equal(tr.Timestamp))
	}
}

func (s *TransferEngineTestSuite) TestSameAccount() {
	a := s.open("alice@example.com", "100")

	_, err := s.transfer(a, a, "10")
	var sameErr *domainaccount.SameAccountError
	s.Require().ErrorAs(err, &sameErr)
	s.Equal(a, sameErr.AccountNumber)
	s.Equal("100.00", s.balance(a))

	hist, err := s.engine.History(s.ctx, a)
	s.Require().NoError(err)
	s.Empty(hist)
}

func (s *TransferEngineTestSuite) TestInsufficientFundsLeavesBalances() {
	a := s.open("a@example.com", "20")
	b := s.open("b@example.com", "10")

	_, err := s.transfer(b, a, "30")
	var fundsErr *domainaccount.InsufficientFundsError
	s.Require().ErrorAs(err, &fundsErr)
	s.Equal("10.00", money.Format(fundsErr.Balance))
	s.Equal("30.00", money.Format(fundsErr.Amount))
	s.Equal(domain.OutcomeInsufficientFunds, domain.Classify(err))

	s.Equal("20.00", s.balance(a))
	s.Equal("10.00", s.balance(b))
	hist, err := s.engine.History(s.ctx, b)
	s.Require().NoError(err)
	s.Empty(hist)
}

func (s *TransferEngineTestSuite) TestExactBalanceDrainsToZero() {
	a := s.open("a@example.com", "12.34")
	b := s.open("b@example.com", "1")

	_, err := s.transfer(a, b, "12.34")
	s.Require().NoError(err)
	s.Equal("0.00", s.balance(a))
	s.Equal("13.34", s.balance(b))

	_, err = s.transfer(a, b, "0.01")
	s.ErrorIs(err, domainaccount.ErrInsufficientFunds)
}

func (s *TransferEngineTestSuite) TestNotFoundOrder() {
	a := s.open("a@example.com", "10")

	_, err := s.transfer(9001, 9002, "1")
	var nf *domainaccount.NotFoundError
	s.Require().ErrorAs(err, &nf)
	s.Equal(int64(9001), nf.AccountNumber, "missing source is reported first")

	_, err = s.transfer(a, 9002, "1")
	s.Require().ErrorAs(err, &nf)
	s.Equal(int64(9002), nf.AccountNumber)

	_, err = s.transfer(9001, a, "1")
	s.Require().ErrorAs(err, &nf)
	s.Equal(int64(9001), nf.AccountNumber)

	// Missing accounts win over same-account.
	_, err = s.transfer(9001, 9001, "1")
	s.Require().ErrorAs(err, &nf)
}

func (s *TransferEngineTestSuite) TestInvalidAmount() {
	a := s.open("a@example.com", "10")
	b := s.open("b@example.com", "10")

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.RequireFromString("-1"), decimal.RequireFromString("0.001")} {
		_, err := s.engine.Transfer(s.ctx, commands.Transfer{FromAccount: a, ToAccount: b, Amount: amount})
		s.ErrorIs(err, domain.ErrValidation, amount.String())
		s.Equal(domain.OutcomeInvalidInput, domain.Classify(err))
	}
	s.Equal("10.00", s.balance(a))
	s.Equal("10.00", s.balance(b))
}

func (s *TransferEngineTestSuite) TestHistoryNewestFirst() {
	a := s.open("a@example.com", "100")
	b := s.open("b@example.com", "100")
	c := s.open("c@example.com", "100")

	t1, err := s.transfer(a, b, "1")
	s.Require().NoError(err)
	t2, err := s.transfer(c, a, "2")
	s.Require().NoError(err)
	_, err = s.transfer(b, c, "3")
	s.Require().NoError(err)
	t4, err := s.transfer(b, a, "4")
	s.Require().NoError(err)

	hist, err := s.engine.History(s.ctx, a)
	s.Require().NoError(err)
	s.Require().Len(hist, 3)
	s.Equal([]int64{t4.ID, t2.ID, t1.ID}, []int64{hist[0].ID, hist[1].ID, hist[2].ID})
	for i := 1; i < len(hist); i++ {
		s.True(hist[i-1].Timestamp.After(hist[i].Timestamp))
	}

	_, err = s.engine.History(s.ctx, 777)
	s.ErrorIs(err, domainaccount.ErrAccountNotFound)
}

func (s *TransferEngineTestSuite) TestRepeatedTransfersAreIndependent() {
	a := s.open("a@example.com", "10")
	b := s.open("b@example.com", "0.01")

	for range 3 {
		_, err := s.transfer(a, b, "2.50")
		s.Require().NoError(err)
	}
	s.Equal("2.50", s.balance(a))
	s.Equal("7.51", s.balance(b))
	hist, err := s.engine.History(s.ctx, a)
	s.Require().NoError(err)
	s.Len(hist, 3)
}

func (s *TransferEngineTestSuite) TestConcurrentDisjointTransfers() {
	a := s.open("a@example.com", "100")
	b := s.open("b@example.com", "100")
	c := s.open("c@example.com", "100")
	d := s.open("d@example.com", "100")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() { defer wg.Done(); _, errs[0] = s.transfer(a, b, "10") }()
	go func() { defer wg.Done(); _, errs[1] = s.transfer(c, d, "20") }()
	wg.Wait()

	s.NoError(errs[0])
	s.NoError(errs[1])
	s.Equal("90.00", s.balance(a))
	s.Equal("110.00", s.balance(b))
	s.Equal("80.00", s.balance(c))
	s.Equal("120.00", s.balance(d))
}

func (s *TransferEngineTestSuite) TestConcurrentOverlappingTransfersSerialize() {
	a := s.open("a@example.com", "100")
	b := s.open("b@example.com", "1")

	const attempts = 10
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.transfer(a, b, "30")
		}(i)
	}
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domainaccount.ErrInsufficientFunds):
			rejected++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(3, succeeded)
	s.Equal(attempts-3, rejected)
	s.Equal("10.00", s.balance(a))
	s.Equal("91.00", s.balance(b))
}

func (s *TransferEngineTestSuite) TestConcurrentOppositeDirections() {
	a := s.open("a@example.com", "50")
	b := s.open("b@example.com", "50")

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = s.transfer(a, b, "5")
			} else {
				_, _ = s.transfer(b, a, "5")
			}
		}(i)
	}
	wg.Wait()

	total := money.Sum(money.MustParse(s.balance(a)), money.MustParse(s.balance(b)))
	s.Equal("100.00", money.Format(total))
}

func (s *TransferEngineTestSuite) TestRandomSequenceConservesMoney() {
	deposits := []string{"100", "250.50", "0.01", "75.25", "10"}
	numbers := make([]int64, len(deposits))
	for i, d := range deposits {
		numbers[i] = s.open(string(rune('a'+i))+"@example.com", d)
	}
	before := decimal.Zero
	for _, d := range deposits {
		before = before.Add(money.MustParse(d))
	}

	rng := rand.New(rand.NewSource(7))
	for range 200 {
		from := numbers[rng.Intn(len(numbers))]
		to := numbers[rng.Intn(len(numbers))]
		amount := decimal.New(int64(rng.Intn(5000)), -2)
		_, err := s.engine.Transfer(s.ctx, commands.Transfer{FromAccount: from, ToAccount: to, Amount: amount})
		if err != nil {
			s.Contains(
				[]domain.Outcome{domain.OutcomeSameAccount, domain.OutcomeInsufficientFunds, domain.OutcomeInvalidInput},
				domain.Classify(err),
			)
		}
	}

	after := decimal.Zero
	for _, n := range numbers {
		bal := money.MustParse(s.balance(n))
		s.False(bal.IsNegative())
		after = after.Add(bal)
	}
	s.True(before.Equal(after), "before=%s after=%s", before, after)
}

func TestTransferEngineTestSuite(t *testing.T) {
	suite.Run(t, new(TransferEngineTestSuite))
}

func TestTransfer_StorageFailureRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uow := mocks.NewMockUnitOfWork(t)
	accounts := mocks.NewMockAccountRepository(t)
	transfers := mocks.NewMockTransferRepository(t)

	from := &domainaccount.Account{Number: 1, CustomerID: 1, Balance: money.MustParse("50")}
	to := &domainaccount.Account{Number: 2, CustomerID: 2, Balance: money.MustParse("5")}
	boom := domain.NewStorageError("update balance", errors.New("disk I/O error"))

	uow.On("Do", ctx, mock.Anything).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts, nil).Once()
	uow.On("TransferRepository").Return(transfers, nil).Once()
	accounts.On("GetForUpdate", ctx, []int64{1, 2}).
		Return(map[int64]*domainaccount.Account{1: from, 2: to}, nil).Once()
	accounts.On("UpdateBalance", ctx, int64(1), mock.Anything).Return(nil).Once()
	accounts.On("UpdateBalance", ctx, int64(2), mock.Anything).Return(boom).Once()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := transfer.New(uow, logger)
	tr, err := svc.Transfer(ctx, commands.Transfer{FromAccount: 1, ToAccount: 2, Amount: money.MustParse("20")})
	assert.Nil(t, tr)
	require.Error(t, err)
	assert.Equal(t, domain.OutcomeStorageFailure, domain.Classify(err))
	transfers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	// Storage failures are reported by the caller; the engine only traces them.
	assert.Contains(t, logs.String(), `"msg":"Transfer failed"`)
	assert.NotContains(t, logs.String(), `"level":"ERROR"`)
}

func TestTransfer_UsesClockInUTC(t *testing.T) {
	t.Parallel()
	db := testutils.NewTestDB(t)
	uow := infrarepo.NewUoW(db)
	logger := testutils.DiscardLogger()
	accounts := accountsvc.New(uow, logger)
	fixed := time.Date(2024, 2, 29, 23, 30, 0, 123456789, time.FixedZone("EST", -5*60*60))
	engine := transfer.New(uow, logger, transfer.WithClock(func() time.Time { return fixed }))

	ctx := context.Background()
	_, a, err := accounts.OpenAccount(ctx, commands.OpenAccount{Name: "A", Email: "a@example.com", InitialDeposit: money.MustParse("5")})
	require.NoError(t, err)
	_, b, err := accounts.OpenAccount(ctx, commands.OpenAccount{Name: "B", Email: "b@example.com", InitialDeposit: money.MustParse("5")})
	require.NoError(t, err)

	tr, err := engine.Transfer(ctx, commands.Transfer{FromAccount: a.Number, ToAccount: b.Number, Amount: money.MustParse("1")})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, tr.Timestamp.Location())
	assert.True(t, tr.Timestamp.Equal(fixed.Truncate(time.Microsecond)))
}
