package infra

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"
)

// Direction selects which way migrations run.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Migrate applies the SQL migrations found in migrationsPath to the
// PostgreSQL database behind db.
func Migrate(db *gorm.DB, migrationsPath string, dir Direction) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	abs, err := filepath.Abs(migrationsPath)
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+abs, "postgres", driver)
	if err != nil {
		return fmt.Errorf("load migrations from %s: %w", abs, err)
	}
	return run(m, dir)
}

// MigrateURL is like Migrate but connects with a database URL directly.
func MigrateURL(databaseURL, migrationsPath string, dir Direction) error {
	abs, err := filepath.Abs(migrationsPath)
	if err != nil {
		return err
	}
	m, err := migrate.New("file://"+abs, databaseURL)
	if err != nil {
		return fmt.Errorf("load migrations from %s: %w", abs, err)
	}
	defer m.Close() //nolint:errcheck
	return run(m, dir)
}

func run(m *migrate.Migrate, dir Direction) error {
	var err error
	switch dir {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", dir)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
