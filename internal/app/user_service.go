package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/dayboard/internal/apperr"
	"github.com/example/dayboard/internal/ports/primary"
	"github.com/example/dayboard/internal/ports/secondary"
)

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userRepo secondary.UserRepository
}

// NewUserService creates a new UserService with injected dependencies.
func NewUserService(userRepo secondary.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

// CreateUser registers a user.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req primary.CreateUserRequest) (*primary.User, error) {
	if err := requireUser(req.ID); err != nil {
		return nil, err
	}
	if !strings.Contains(req.Email, "@") {
		return nil, apperr.Validation("invalid email: %q", req.Email)
	}

	if err := s.userRepo.Create(ctx, &secondary.UserRecord{ID: req.ID, Email: req.Email}); err != nil {
		return nil, err
	}

	created, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created user: %w", err)
	}
	return recordToUser(created), nil
}

// GetCurrentUser returns the user row for id, or nil when none exists.
func (s *UserServiceImpl) GetCurrentUser(ctx context.Context, id string) (*primary.User, error) {
	if err := requireUser(id); err != nil {
		return nil, err
	}

	record, err := s.userRepo.GetByID(ctx, id)
	if apperr.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return recordToUser(record), nil
}

// ListUsers returns every user in creation order.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*primary.User, error) {
	records, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]*primary.User, len(records))
	for i, r := range records {
		users[i] = recordToUser(r)
	}
	return users, nil
}

func recordToUser(r *secondary.UserRecord) *primary.User {
	return &primary.User{
		ID:        r.ID,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Ensure UserServiceImpl implements the interface
var _ primary.UserService = (*UserServiceImpl)(nil)
