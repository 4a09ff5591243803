// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/example/dayboard/internal/db"
	"github.com/example/dayboard/internal/ports/secondary"
)

// Option configures a repository.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func timestamp(now func() time.Time) string {
	return db.FormatTimestamp(now())
}

// isUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// setNullable appends "column = ?" when the patch value is set.
func setNullable(query string, args []any, column string, v secondary.NullableText) (string, []any) {
	if !v.Set {
		return query, args
	}
	return query + ", " + column + " = ?", append(args, nullString(v.Value))
}

func rowsRemoved(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// HealthProbe implements secondary.HealthProbe against the database handle.
type HealthProbe struct {
	db *sql.DB
}

// NewHealthProbe creates a health probe for the given database.
func NewHealthProbe(db *sql.DB) *HealthProbe {
	return &HealthProbe{db: db}
}

// Ping verifies the database answers a trivial query.
func (p *HealthProbe) Ping(ctx context.Context) error {
	var one int
	return p.db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}

var _ secondary.HealthProbe = (*HealthProbe)(nil)
