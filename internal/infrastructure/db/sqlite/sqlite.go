// Package sqlite implements the post and contact stores on an embedded
// SQLite database (modernc.org/sqlite, no cgo).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

const (
	defaultTimeout = 5 * time.Second
	memoryPath     = ":memory:"
)

// Config captures the settings required to open the database file.
type Config struct {
	Path    string
	Timeout time.Duration
}

const schema = `
CREATE TABLE IF NOT EXISTS posts (
	sno       INTEGER PRIMARY KEY AUTOINCREMENT,
	title     TEXT NOT NULL UNIQUE,
	sub_title TEXT NOT NULL UNIQUE,
	post_slug TEXT NOT NULL UNIQUE,
	content   TEXT NOT NULL UNIQUE,
	date      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contacts (
	sno   INTEGER PRIMARY KEY AUTOINCREMENT,
	name  TEXT NOT NULL,
	phone TEXT NOT NULL UNIQUE,
	msg   TEXT NOT NULL,
	date  TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE
);`

// Open opens the database, verifies it with a ping and applies the schema.
// An in-memory database is pinned to a single connection so every caller
// sees the same data.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite: empty db path")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dsn := cfg.Path
	if cfg.Path != memoryPath {
		dsn = fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", cfg.Path, timeout.Milliseconds())
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	if cfg.Path == memoryPath {
		db.SetMaxOpenConns(1)
	}

	openCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(openCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	if err := Migrate(openCtx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables if they do not exist. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("sqlite migrate: %w", err)
	}
	return nil
}

// mapError converts driver errors into the domain taxonomy.
func mapError(op string, err error) error {
	var se *msqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%s: %w", op, domain.ErrConstraintViolation)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
}

// Pinger reports database reachability for readiness checks.
type Pinger struct {
	db *sql.DB
}

func NewPinger(db *sql.DB) *Pinger {
	return &Pinger{db: db}
}

func (p *Pinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
