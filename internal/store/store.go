// Package store persists the two pieces of prediction state that
// outlive a single request: the reloadable stand-profile snapshot and
// the discovered DEM tile catalog. Both are optional caches, not a
// system of record — every value stored here is also derivable from a
// config file or a directory scan. A missing database file is created
// and migrated by Open; cmd/predict treats a database it cannot open
// or read as a startup error.
package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps a migrated sqlite connection shared by the stand-profile
// and DEM-tile repositories.
type DB struct {
	*sql.DB
}

// Open opens (creating if necessary) the sqlite database at path and
// brings its schema up to the latest migration.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	db := &DB{conn}
	if err := db.migrateUp(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

// migrateUp runs every pending embedded migration.
//
// Note: the returned *migrate.Migrate is never Closed. Its sqlite
// driver's Close() would close the underlying *sql.DB, which this
// struct's caller still owns.
func (db *DB) migrateUp() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("store: load embedded migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(db.DB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("store: sqlite migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("store: build migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("store: migrate up: %w", err)
	}
	return nil
}
