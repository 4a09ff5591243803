package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/dayboard/internal/apperr"
	"github.com/example/dayboard/internal/ports/secondary"
)

// UserRepository implements secondary.UserRepository with SQLite.
type UserRepository struct {
	db  *sql.DB
	opt options
}

// NewUserRepository creates a new SQLite user repository.
func NewUserRepository(db *sql.DB, opts ...Option) *UserRepository {
	return &UserRepository{db: db, opt: buildOptions(opts)}
}

const userSelectCols = "id, email, created_at, updated_at"

func scanUser(s scanner) (*secondary.UserRecord, error) {
	record := &secondary.UserRecord{}
	if err := s.Scan(&record.ID, &record.Email, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return nil, err
	}
	return record, nil
}

// Create persists a new user.
func (r *UserRepository) Create(ctx context.Context, user *secondary.UserRecord) error {
	now := timestamp(r.opt.now)
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, email, created_at, updated_at) VALUES (?, ?, ?, ?)",
		user.ID, user.Email, now, now,
	)
	if isUniqueViolation(err) {
		return apperr.Conflict("user %s or email %s already exists", user.ID, user.Email)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by its ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*secondary.UserRecord, error) {
	record, err := scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userSelectCols+" FROM users WHERE id = ?", id,
	))
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("user", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return record, nil
}

// GetByEmail retrieves a user by email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*secondary.UserRecord, error) {
	record, err := scanUser(r.db.QueryRowContext(ctx,
		"SELECT "+userSelectCols+" FROM users WHERE email = ?", email,
	))
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("user", email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return record, nil
}

// List retrieves all users ordered by creation time.
func (r *UserRepository) List(ctx context.Context) ([]*secondary.UserRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+userSelectCols+" FROM users ORDER BY created_at ASC, id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*secondary.UserRecord
	for rows.Next() {
		record, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, record)
	}
	return users, rows.Err()
}

// Ensure UserRepository implements the interface.
var _ secondary.UserRepository = (*UserRepository)(nil)
