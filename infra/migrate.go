package infra

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/accountowner/internal/migrations"
	"github.com/amirasaad/accountowner/pkg/domain/account"
	"github.com/amirasaad/accountowner/pkg/domain/owner"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Postgres uses the embedded versioned
// migrations; other dialects fall back to GORM's AutoMigrate.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("migrate: nil database")
	}
	if db.Name() != "postgres" {
		slog.Info("Running auto migration", "dialect", db.Name())
		return db.AutoMigrate(&owner.Owner{}, &account.Account{})
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("migrate: postgres driver: %w", err)
	}
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("migrate: source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: up: %w", err)
	}
	version, dirty, _ := m.Version()
	slog.Info("Database migrated", "version", version, "dirty", dirty)
	return nil
}
