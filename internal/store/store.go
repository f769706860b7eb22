// Package store persists assessments and LLM request events in SQLite.
// Queries are built with ent's dialect/sql builder over a plain *sql.DB.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	_ "modernc.org/sqlite"
)

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// pragmas run on the single pooled connection right after opening.
var pragmas = []string{
	"journal_mode = WAL",
	"busy_timeout = 5000",
	"foreign_keys = ON",
	"synchronous = NORMAL",
}

// Store owns the database handle and hands out repositories.
type Store struct {
	db  *sql.DB
	sql *entsql.DialectBuilder
	now func() time.Time
}

type Option func(*Store)

// WithClock replaces time.Now for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open connects to the SQLite database at dsn and brings its schema up to
// date. ":memory:" gives a private in-memory database.
func Open(dsn string, opts ...Option) (_ *Store, err error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	// One connection: pragmas and :memory: databases are per connection.
	db.SetMaxOpenConns(1)
	for _, p := range pragmas {
		if _, err := db.Exec("PRAGMA " + p); err != nil {
			return nil, fmt.Errorf("pragma %s: %w", p, err)
		}
	}
	if err := migrate(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	s := &Store{db: db, sql: entsql.Dialect(dialect.SQLite), now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// DB exposes the handle for ad-hoc queries.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) AssessmentRepo() *AssessmentRepo { return &AssessmentRepo{store: s} }

func (s *Store) EventRepo() *EventRepo { return &EventRepo{store: s} }

func (s *Store) timestamp() time.Time { return s.now().UTC() }

// DefaultDBPath is $CAREERPREP_DB when set, else careerprep.db under the
// XDG data directory (~/.local/share by default).
func DefaultDBPath() (string, error) {
	if p := os.Getenv("CAREERPREP_DB"); p != "" {
		return p, nil
	}
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "careerprep", "careerprep.db"), nil
}

// EnsureDir creates the directory that will hold the database file.
func EnsureDir(dbPath string) error {
	return os.MkdirAll(filepath.Dir(dbPath), 0o755)
}

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
