// Package weekly contains the pure business logic for the weekly board.
// Guards are pure functions that evaluate preconditions without side effects.
package weekly

import (
	"fmt"
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

// CreateTaskContext provides context for task creation guards.
type CreateTaskContext struct {
	Title         string
	Column        models.Column
	WeekStartDate string
	Position      *int // nil means auto-assign
}

// UpdateTaskContext provides context for task update guards.
// Nil fields are not being changed.
type UpdateTaskContext struct {
	Title         *string
	Column        *models.Column
	Position      *int
	WeekStartDate *string
}

// CanCreateTask evaluates whether a task can be created.
// Rules:
// - Title must not be blank
// - Column must be one of the four board columns
// - Week start must be a Monday
// - Explicit position must lie in [0, MaxPosition]
func CanCreateTask(ctx CreateTaskContext) GuardResult {
	if strings.TrimSpace(ctx.Title) == "" {
		return GuardResult{Allowed: false, Reason: "title must not be empty"}
	}
	if !ctx.Column.Valid() {
		return GuardResult{Allowed: false, Reason: "invalid column: " + string(ctx.Column)}
	}
	if r := checkWeekStart(ctx.WeekStartDate); !r.Allowed {
		return r
	}
	if ctx.Position != nil {
		if r := checkPosition(*ctx.Position); !r.Allowed {
			return r
		}
	}
	return GuardResult{Allowed: true}
}

// CanUpdateTask evaluates whether the supplied fields form a valid update.
// The same rules as creation apply to every field that is present.
func CanUpdateTask(ctx UpdateTaskContext) GuardResult {
	if ctx.Title != nil && strings.TrimSpace(*ctx.Title) == "" {
		return GuardResult{Allowed: false, Reason: "title must not be empty"}
	}
	if ctx.Column != nil && !ctx.Column.Valid() {
		return GuardResult{Allowed: false, Reason: "invalid column: " + string(*ctx.Column)}
	}
	if ctx.WeekStartDate != nil {
		if r := checkWeekStart(*ctx.WeekStartDate); !r.Allowed {
			return r
		}
	}
	if ctx.Position != nil {
		if r := checkPosition(*ctx.Position); !r.Allowed {
			return r
		}
	}
	return GuardResult{Allowed: true}
}

// CanListWeek evaluates whether a week listing request is well formed.
func CanListWeek(weekStartDate string) GuardResult {
	if !models.IsDate(weekStartDate) {
		return GuardResult{Allowed: false, Reason: "week_start_date must use YYYY-MM-DD"}
	}
	return GuardResult{Allowed: true}
}

func checkWeekStart(date string) GuardResult {
	if !models.IsDate(date) {
		return GuardResult{Allowed: false, Reason: "week_start_date must use YYYY-MM-DD"}
	}
	if !models.IsMonday(date) {
		return GuardResult{Allowed: false, Reason: "week_start_date " + date + " is not a Monday"}
	}
	return GuardResult{Allowed: true}
}

func checkPosition(pos int) GuardResult {
	if pos < 0 {
		return GuardResult{Allowed: false, Reason: "position must be non-negative"}
	}
	if pos > MaxPosition {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("position must not exceed %d", MaxPosition)}
	}
	return GuardResult{Allowed: true}
}
