// Package store persists homopolymer runs to a SQL database (SQLite or PostgreSQL).
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "modernc.org/sqlite"             // registers "sqlite" (pure Go)
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// ErrUnknownDriver is returned for drivers other than sqlite and pgx.
var ErrUnknownDriver = errors.New("unknown database driver")

type dialect struct {
	goose       string
	numbered    bool // $1 placeholders instead of ?
	singleConns bool
}

var dialects = map[string]dialect{
	DriverSQLite:   {goose: "sqlite", singleConns: true},
	DriverPostgres: {goose: "postgres", numbered: true},
}

// IsDriver reports whether name is a supported driver.
func IsDriver(name string) bool {
	_, ok := dialects[name]
	return ok
}

// Store wraps a database handle holding scan results.
type Store struct {
	db      *sql.DB
	dialect dialect
	logger  *slog.Logger
}

// Open connects to dsn with driver and pings it. Migrations are not run.
// If logger is nil, a discard logger is used.
func Open(ctx context.Context, driver, dsn string, logger *slog.Logger) (*Store, error) {
	if !IsDriver(driver) {
		return nil, fmt.Errorf("%w %q", ErrUnknownDriver, driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}
	s, err := New(db, driver, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.logger.Debug("database opened", slog.String("driver", driver))
	return s, nil
}

// New wraps an existing handle. driver selects the SQL dialect.
func New(db *sql.DB, driver string, logger *slog.Logger) (*Store, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownDriver, driver)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if d.singleConns {
		// SQLite allows one writer; :memory: databases are per connection.
		db.SetMaxOpenConns(1)
	}
	return &Store{db: db, dialect: d, logger: logger}, nil
}

// DB exposes the underlying handle.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// rebind rewrites ? placeholders for dialects that number them.
func (s *Store) rebind(query string) string {
	if !s.dialect.numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
