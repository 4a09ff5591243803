// Package inbox contains the pure business logic for the capture inbox.
// Guards are pure functions that evaluate preconditions without side effects.
package inbox

import (
	"strings"

	"github.com/example/dayboard/internal/apperr"
	"github.com/example/dayboard/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to a validation error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return apperr.Validation("%s", r.Reason)
}

// CreateItemContext provides context for capture guards.
type CreateItemContext struct {
	Content string
	Tag     models.Tag
}

// UpdateItemContext provides context for item update guards.
type UpdateItemContext struct {
	Content *string
	Tag     *models.Tag
}

// CanCreateItem evaluates whether an item can be captured.
// Rules:
// - Content must not be empty
// - Tag must be part of the vocabulary
func CanCreateItem(ctx CreateItemContext) GuardResult {
	if strings.TrimSpace(ctx.Content) == "" {
		return GuardResult{Allowed: false, Reason: "content must not be empty"}
	}
	if !ctx.Tag.Valid() {
		return GuardResult{Allowed: false, Reason: "invalid tag: " + string(ctx.Tag)}
	}
	return GuardResult{Allowed: true}
}

// CanUpdateItem evaluates whether the supplied fields form a valid update.
func CanUpdateItem(ctx UpdateItemContext) GuardResult {
	if ctx.Content != nil && strings.TrimSpace(*ctx.Content) == "" {
		return GuardResult{Allowed: false, Reason: "content must not be empty"}
	}
	if ctx.Tag != nil && !ctx.Tag.Valid() {
		return GuardResult{Allowed: false, Reason: "invalid tag: " + string(*ctx.Tag)}
	}
	return GuardResult{Allowed: true}
}
