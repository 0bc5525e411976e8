package infra

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/ledger/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqliteScheme = "sqlite://"

// NewDBConnection opens the ledger database. URLs starting with sqlite://
// select SQLite (file path or :memory:); anything else is handed to the
// PostgreSQL driver.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	dialector, isSQLite := dialectorFor(cnf.Url)
	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if isSQLite {
		// One connection serializes writers and keeps a :memory: database alive.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		// Foreign keys are off per connection by default.
		if err := connection.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
		return connection, nil
	}
	sqlDB.SetMaxOpenConns(cnf.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cnf.ConnMaxLifetime)

	return connection, nil
}

func dialectorFor(url string) (gorm.Dialector, bool) {
	if path, ok := strings.CutPrefix(url, sqliteScheme); ok {
		return sqlite.Open(path), true
	}
	return postgres.Open(url), false
}

// IsSQLite reports whether url selects the SQLite driver.
func IsSQLite(url string) bool {
	return strings.HasPrefix(url, sqliteScheme)
}
