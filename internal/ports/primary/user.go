package primary

import (
	"context"
	"time"
)

// UserService defines the primary port for user records.
type UserService interface {
	// CreateUser registers a user. A duplicate id or email is a conflict.
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)

	// GetCurrentUser returns the user row for id, or nil when none exists.
	GetCurrentUser(ctx context.Context, id string) (*User, error)

	// ListUsers returns every user in creation order.
	ListUsers(ctx context.Context) ([]*User, error)
}

// CreateUserRequest contains parameters for registering a user.
type CreateUserRequest struct {
	ID    string
	Email string
}

// User represents a user at the port boundary.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
