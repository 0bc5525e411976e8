//go:build integration

package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// NewPostgresDB starts a PostgreSQL container, applies the SQL migrations
// and returns a connection to it. The container is removed on cleanup.
func NewPostgresDB(t testing.TB) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(pg) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDBConnection(&config.DB{
		Url:          dsn,
		MaxOpenConns: 20,
		MaxIdleConns: 5,
	}, "test")
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db, MigrationsPath(), infra.Up))
	return db
}
