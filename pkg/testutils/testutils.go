// Package testutils holds helpers shared by package tests: an in-memory
// ledger database, a ready config, and HTTP request helpers for fiber apps.
package testutils

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra"
	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	TestUsername  = "teller"
	TestPassword  = "s3cret-pass"
	TestJwtSecret = "test-jwt-secret"
)

// NewTestDB returns a migrated in-memory SQLite ledger that lives for the test.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := infra.NewDBConnection(&config.DB{Url: "sqlite://:memory:"}, "test")
	require.NoError(t, err)
	require.NoError(t, infrarepo.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewTestConfig returns a config with a known login and a cheap password hash.
func NewTestConfig(t testing.TB) *config.App {
	t.Helper()
	hash, err := utils.HashPasswordWithCost(TestPassword, bcrypt.MinCost)
	require.NoError(t, err)
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000, ShutdownTimeout: time.Second},
		Log:    &config.Log{Format: "text"},
		DB:     &config.DB{Url: "sqlite://:memory:", AutoMigrate: true, MigrationsPath: MigrationsPath()},
		Auth: &config.Auth{
			Username:     TestUsername,
			PasswordHash: hash,
			Jwt:          &config.Jwt{Secret: TestJwtSecret, Expiry: 15 * time.Minute},
		},
		Redis:     &config.Redis{},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
	}
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MigrationsPath returns the absolute path of the SQL migrations directory.
func MigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "../../internal/migrations")
}

// MakeRequest sends a request through app.Test. A non-empty body is sent as JSON.
func MakeRequest(t testing.TB, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
