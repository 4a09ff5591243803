// Package review contains the pure business logic for AM/PM daily reviews.
package review

import (
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

// CreateReviewContext provides context for review creation guards.
type CreateReviewContext struct {
	ReviewDate string
	Type       models.ReviewType
}

// LookupContext provides context for the single-review lookup.
type LookupContext struct {
	ReviewDate string
	Type       models.ReviewType // empty matches both
}

// RangeContext provides context for history listings.
type RangeContext struct {
	From string // empty means unbounded
	To   string // empty means unbounded
	Type models.ReviewType
}

// CanCreateReview evaluates whether a review can be created.
// Rules:
// - Review date must be a YYYY-MM-DD calendar date
// - Type must be AM or PM
func CanCreateReview(ctx CreateReviewContext) GuardResult {
	if !models.IsDate(ctx.ReviewDate) {
		return GuardResult{Allowed: false, Reason: "review_date must use YYYY-MM-DD"}
	}
	if !ctx.Type.Valid() {
		return GuardResult{Allowed: false, Reason: "invalid review type: " + string(ctx.Type)}
	}
	return GuardResult{Allowed: true}
}

// CanLookupReview evaluates whether a lookup request is well formed.
func CanLookupReview(ctx LookupContext) GuardResult {
	if !models.IsDate(ctx.ReviewDate) {
		return GuardResult{Allowed: false, Reason: "review_date must use YYYY-MM-DD"}
	}
	if ctx.Type != "" && !ctx.Type.Valid() {
		return GuardResult{Allowed: false, Reason: "invalid review type: " + string(ctx.Type)}
	}
	return GuardResult{Allowed: true}
}

// CanListRange evaluates whether a history range is well formed.
// Rules:
// - Bounds, when present, must be calendar dates
// - From must not be after To
func CanListRange(ctx RangeContext) GuardResult {
	if ctx.From != "" && !models.IsDate(ctx.From) {
		return GuardResult{Allowed: false, Reason: "from must use YYYY-MM-DD"}
	}
	if ctx.To != "" && !models.IsDate(ctx.To) {
		return GuardResult{Allowed: false, Reason: "to must use YYYY-MM-DD"}
	}
	// Fixed-width dates compare correctly as strings.
	if ctx.From != "" && ctx.To != "" && ctx.From > ctx.To {
		return GuardResult{Allowed: false, Reason: "from " + ctx.From + " is after to " + ctx.To}
	}
	if ctx.Type != "" && !ctx.Type.Valid() {
		return GuardResult{Allowed: false, Reason: "invalid review type: " + string(ctx.Type)}
	}
	return GuardResult{Allowed: true}
}
