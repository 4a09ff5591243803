package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// EnsureUser inserts the user row if no row with that id exists yet.
// It is used to provision the stub identity the single-user UI runs as.
func EnsureUser(ctx context.Context, database *sql.DB, id, email string) error {
	now := FormatTimestamp(time.Now())
	_, err := database.ExecContext(ctx,
		"INSERT INTO users (id, email, created_at, updated_at) VALUES (?, ?, ?, ?) ON CONFLICT(id) DO NOTHING",
		id, email, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to seed user %s: %w", id, err)
	}
	return nil
}
