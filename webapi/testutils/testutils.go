// Package testutils provides an API test suite that serves the full fiber
// application over a fresh ledger database for every test.
package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/testutils"
	"github.com/amirasaad/ledger/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// APITestSuite serves the application backed by NewDB, which defaults to
// an in-memory SQLite database.
type APITestSuite struct {
	suite.Suite
	NewDB func(t testing.TB) *gorm.DB

	DB    *gorm.DB
	Cfg   *config.App
	App   *app.App
	Fiber *fiber.App
}

// SetupTest builds a new database and application for each test.
func (s *APITestSuite) SetupTest() {
	newDB := s.NewDB
	if newDB == nil {
		newDB = testutils.NewTestDB
	}
	s.DB = newDB(s.T())
	s.Cfg = testutils.NewTestConfig(s.T())
	s.App = app.New(&app.Deps{
		Uow:    infrarepo.NewUoW(s.DB),
		Logger: testutils.DiscardLogger(),
	}, s.Cfg)
	s.Fiber = webapi.SetupApp(s.App)
}

// MakeRequest is a helper for making HTTP requests in tests.
func (s *APITestSuite) MakeRequest(method, path, body, token string) *http.Response {
	return testutils.MakeRequest(s.T(), s.Fiber, method, path, body, token)
}

// Login posts the configured employee credentials and returns the token.
func (s *APITestSuite) Login() string {
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, testutils.TestUsername, testutils.TestPassword)
	resp := s.MakeRequest(fiber.MethodPost, "/login", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	out := Decode[struct {
		AccessToken string `json:"access_token"`
	}](s.T(), resp)
	s.Require().NotEmpty(out.AccessToken)
	return out.AccessToken
}

// OpenAccount creates a customer and account through the API and returns
// the new account number.
func (s *APITestSuite) OpenAccount(token, name, email, deposit string) int64 {
	body := fmt.Sprintf(`{"name":%q,"email":%q,"initial_deposit":%q}`, name, email, deposit)
	resp := s.MakeRequest(fiber.MethodPost, "/accounts", body, token)
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	out := Decode[struct {
		AccountNumber int64 `json:"account_number"`
	}](s.T(), resp)
	s.Require().NotZero(out.AccountNumber)
	return out.AccountNumber
}

// Balance returns the balance string reported by the balance endpoint.
func (s *APITestSuite) Balance(token string, accountNumber int64) string {
	resp := s.MakeRequest(fiber.MethodGet, fmt.Sprintf("/accounts/%d/balance", accountNumber), "", token)
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	out := Decode[struct {
		Balance string `json:"balance"`
	}](s.T(), resp)
	return out.Balance
}

// Decode reads a Response envelope and returns its data as T.
func Decode[T any](t testing.TB, resp *http.Response) T {
	t.Helper()
	var envelope struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
		Data    T      `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, resp.StatusCode, envelope.Status)
	return envelope.Data
}

// Problem is the decoded form of an error body.
type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
	Errors any    `json:"errors"`
}

// DecodeProblem reads a problem+json body.
func DecodeProblem(t testing.TB, resp *http.Response) Problem {
	t.Helper()
	require.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), "application/problem+json"))
	var p Problem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	return p
}
