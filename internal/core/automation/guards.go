// Package automation contains the pure business logic for the automation tracker.
package automation

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

// CreateTaskContext provides context for automation task creation guards.
type CreateTaskContext struct {
	TaskName string
	Status   models.AutomationStatus // empty means default
}

// UpdateTaskContext provides context for automation task update guards.
type UpdateTaskContext struct {
	TaskName *string
	Status   *models.AutomationStatus
}

// DefaultStatus returns s, or To Automate when s is empty.
func DefaultStatus(s models.AutomationStatus) models.AutomationStatus {
	if s == "" {
		return models.StatusToAutomate
	}
	return s
}

// CanCreateTask evaluates whether an automation task can be created.
// Rules:
// - Task name must not be empty
// - Status, when given, must be part of the vocabulary
func CanCreateTask(ctx CreateTaskContext) GuardResult {
	if strings.TrimSpace(ctx.TaskName) == "" {
		return GuardResult{Allowed: false, Reason: "task_name must not be empty"}
	}
	if ctx.Status != "" && !ctx.Status.Valid() {
		return GuardResult{Allowed: false, Reason: "invalid status: " + string(ctx.Status)}
	}
	return GuardResult{Allowed: true}
}

// CanUpdateTask evaluates whether the supplied fields form a valid update.
func CanUpdateTask(ctx UpdateTaskContext) GuardResult {
	if ctx.TaskName != nil && strings.TrimSpace(*ctx.TaskName) == "" {
		return GuardResult{Allowed: false, Reason: "task_name must not be empty"}
	}
	if ctx.Status != nil && !ctx.Status.Valid() {
		return GuardResult{Allowed: false, Reason: "invalid status: " + string(*ctx.Status)}
	}
	return GuardResult{Allowed: true}
}

// CanFilterByStatus evaluates an optional list filter.
func CanFilterByStatus(s models.AutomationStatus) GuardResult {
	if s != "" && !s.Valid() {
		return GuardResult{Allowed: false, Reason: "invalid status: " + string(s)}
	}
	return GuardResult{Allowed: true}
}
