package db

import (
	"embed"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Connect retry
const MAX_ELAPSED_CONNECT = time.Second * 30

func newBackOff() backoff.BackOff {
	retryBackoff := backoff.NewExponentialBackOff()
	retryBackoff.MaxElapsedTime = MAX_ELAPSED_CONNECT
	return retryBackoff
}

// NewConnectionSqlite opens the database file and applies pending migrations.
func NewConnectionSqlite(path string) (*sqlx.DB, error) {
	var conn *sqlx.DB
	err := backoff.Retry(func() error {
		var err error
		conn, err = sqlx.Connect("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
		return err
	}, newBackOff())
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer
	conn.SetMaxOpenConns(1)

	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// Migrate brings the schema up to the latest embedded migration.
func Migrate(conn *sqlx.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	driver, err := sqlite3.WithInstance(conn.DB, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return err
	}
	// m.Close would also close conn
	defer source.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
