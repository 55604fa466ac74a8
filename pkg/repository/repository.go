package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/jmoiron/sqlx"
)

// ErrNoVersion is returned when the version table has no rows
var ErrNoVersion = errors.New("no schema version found")

// ErrInvalidInterval is returned when the store can't cast a string to an interval
var ErrInvalidInterval = errors.New("invalid interval")

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnectAttempts int
}

// Repository runs read-only queries against the DE database
type Repository struct {
	db *sqlx.DB
}

// New connects to the database and waits for it to answer a ping
func New(ctx context.Context, cfg Config) (*Repository, error) {
	db, err := sqlx.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	attempts := cfg.ConnectAttempts
	if attempts <= 0 {
		attempts = 5
	}
	retrier := repeater.NewBackoff(attempts, 100*time.Millisecond, repeater.WithMaxDelay(5*time.Second))
	if err := retrier.Do(ctx, func() error { return db.PingContext(ctx) }); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

// NewWithDB wraps an existing connection
func NewWithDB(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Ping verifies the database connection
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// SchemaVersion returns the most recently applied schema version
func (r *Repository) SchemaVersion(ctx context.Context) (string, error) {
	var version string
	err := r.db.GetContext(ctx, &version, `SELECT version FROM version ORDER BY applied DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoVersion
	}
	if err != nil {
		return "", fmt.Errorf("get schema version: %w", err)
	}
	return version, nil
}

// ValidateInterval checks that the store accepts s as an interval. Errors the store reports
// as data exceptions are returned as ErrInvalidInterval, anything else as is.
func (r *Repository) ValidateInterval(ctx context.Context, s string) error {
	var out string
	err := r.db.GetContext(ctx, &out, `SELECT CAST(CAST($1 AS interval) AS text)`, s)
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "22") {
		return fmt.Errorf("%w %q: %s", ErrInvalidInterval, s, pgErr.Message)
	}
	return fmt.Errorf("validate interval: %w", err)
}
