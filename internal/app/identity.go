package app

import (
	"strings"

	"github.com/example/dayboard/internal/apperr"
)

// requireUser rejects requests that reach a service without a resolved identity.
func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperr.Validation("user_id is required")
	}
	return nil
}
