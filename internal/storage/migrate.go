package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	applog "spendwise/internal/log"
)

//go:embed migrations/*.sql
var settingsSchema embed.FS

// migrateSettings brings the settings schema at dbPath up to date. It opens
// its own handle because the migrator closes the database it is given.
func migrateSettings(dbPath string, logger *applog.Logger) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open settings db for migration: %w", err)
	}
	defer db.Close()

	target, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("settings migration target: %w", err)
	}
	source, err := iofs.New(settingsSchema, "migrations")
	if err != nil {
		return fmt.Errorf("settings migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", target)
	if err != nil {
		return fmt.Errorf("settings migrator: %w", err)
	}
	defer m.Close()

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		return nil
	case err != nil:
		return fmt.Errorf("migrate settings schema: %w", err)
	}

	version, _, _ := m.Version()
	logger.Info("Settings schema migrated",
		applog.FieldOperation, applog.OpMigrate,
		applog.FieldPath, dbPath,
		"version", version)
	return nil
}
