// Package storage is the per-device persistent store. It keeps the values
// that must survive a restart, such as the session token.
package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Keys of the values kept in the device store.
const (
	KeySessionToken = "user_permanent_token"
	KeyUserEmail    = "user_email"
)

//go:embed migrations/*.sql
var migrations embed.FS

type Storage struct {
	DB     *sql.DB
	Values IValuesTable
}

// NewStorage opens (creating when needed) the SQLite file at path and
// brings its schema up to date.
func NewStorage(path string, logger *logrus.Logger) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create device directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open device store: %w", err)
	}
	// A single connection keeps SQLite writes serialized.
	db.SetMaxOpenConns(1)

	if err := Migrate(db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{
		DB:     db,
		Values: NewValuesTable(db),
	}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// Migrate applies every embedded migration that has not run yet.
func Migrate(db *sql.DB, logger *logrus.Logger) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("iofs.New: %w", err)
	}

	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("sqlite.WithInstance: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("migrate.NewWithInstance: %w", err)
	}

	preMigrationVersion, _, err := m.Version()
	if err != nil && errors.Is(err, migrate.ErrNilVersion) {
		preMigrationVersion = 0
	} else if err != nil {
		return fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("m.Up: %w", err)
	}

	postMigrationVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  preMigrationVersion,
		"postMigrationVersion": postMigrationVersion,
	}).Debug("Storage.Migrate.status")

	return nil
}
