package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/dayboard/internal/ports/primary"
)

// UserAdapter is a thin adapter that translates CLI operations to UserService calls.
type UserAdapter struct {
	service primary.UserService
	out     io.Writer
}

// NewUserAdapter creates a new UserAdapter with the given service.
func NewUserAdapter(service primary.UserService, out io.Writer) *UserAdapter {
	return &UserAdapter{
		service: service,
		out:     out,
	}
}

// Add creates a user.
func (a *UserAdapter) Add(ctx context.Context, id, email string) error {
	u, err := a.service.CreateUser(ctx, primary.CreateUserRequest{ID: id, Email: email})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created user %s <%s>\n", u.ID, u.Email)
	return nil
}

// Show prints a user, or a hint when the id has no row yet.
func (a *UserAdapter) Show(ctx context.Context, id string) (*primary.User, error) {
	u, err := a.service.GetCurrentUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		fmt.Fprintf(a.out, "No user %s. Create one with: dayboard user add %s <email>\n", id, id)
		return nil, nil
	}

	fmt.Fprintf(a.out, "User:    %s\n", u.ID)
	fmt.Fprintf(a.out, "Email:   %s\n", u.Email)
	fmt.Fprintf(a.out, "Created: %s\n", u.CreatedAt.Format("2006-01-02 15:04"))
	return u, nil
}

// List prints every user.
func (a *UserAdapter) List(ctx context.Context) ([]*primary.User, error) {
	users, err := a.service.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return users, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL")
	fmt.Fprintln(w, "--\t-----")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\n", u.ID, u.Email)
	}
	w.Flush()

	return users, nil
}
