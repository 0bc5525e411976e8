package initializer

import (
	"fmt"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/infra/cache"
	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"gorm.io/gorm"
)

// InitializeDependencies builds the logger, database, unit of work and the
// optional Redis limiter storage from cfg.
func InitializeDependencies(cfg *config.App) (deps *app.Deps, err error) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if err := migrateSchema(db, cfg.DB); err != nil {
			logger.Error("Failed to migrate database", "error", err)
			return nil, err
		}
		logger.Info("Database schema is up to date")
	}
	deps.Uow = infrarepo.NewUoW(db, infrarepo.WithLockTimeout(cfg.DB.LockTimeout))

	if cfg.Redis != nil && cfg.Redis.URL != "" {
		storage, err := cache.NewRedisStorage(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis rate limit storage: %w", err)
		}
		deps.RateLimitStorage = storage
		logger.Info("Rate limiter uses Redis storage", "prefix", cfg.Redis.KeyPrefix)
	}
	return deps, nil
}

// migrateSchema runs the SQL migrations on PostgreSQL and falls back to
// gorm's AutoMigrate for SQLite.
func migrateSchema(db *gorm.DB, cfg *config.DB) error {
	if infra.IsSQLite(cfg.Url) {
		return infrarepo.AutoMigrate(db)
	}
	return infra.Migrate(db, cfg.MigrationsPath, infra.Up)
}
