package primary

import (
	"context"
	"time"

	"github.com/example/dayboard/internal/models"
)

// AutomationService defines the primary port for the automation tracker.
type AutomationService interface {
	// CreateAutomationTask records a candidate; status defaults to To Automate.
	CreateAutomationTask(ctx context.Context, req CreateAutomationTaskRequest) (*AutomationTask, error)

	// GetAutomationTasks lists the caller's tasks, optionally by status.
	GetAutomationTasks(ctx context.Context, req GetAutomationTasksRequest) ([]*AutomationTask, error)

	// UpdateAutomationTask changes only the supplied fields.
	UpdateAutomationTask(ctx context.Context, req UpdateAutomationTaskRequest) (*AutomationTask, error)

	// DeleteAutomationTask removes a task and reports whether it existed.
	DeleteAutomationTask(ctx context.Context, req DeleteRequest) (*DeleteResponse, error)
}

// CreateAutomationTaskRequest contains parameters for recording a candidate.
type CreateAutomationTaskRequest struct {
	UserID        string
	TaskName      string
	WorkflowNotes *string
	Status        models.AutomationStatus // empty means To Automate
}

// GetAutomationTasksRequest contains filter options for listing tasks.
type GetAutomationTasksRequest struct {
	UserID string
	Status models.AutomationStatus // empty lists every status
}

// UpdateAutomationTaskRequest contains the fields to change.
type UpdateAutomationTaskRequest struct {
	ID            int64
	UserID        string
	TaskName      *string
	WorkflowNotes OptionalText
	Status        *models.AutomationStatus
}

// AutomationTask represents an automation candidate at the port boundary.
type AutomationTask struct {
	ID            int64                   `json:"id"`
	UserID        string                  `json:"user_id"`
	TaskName      string                  `json:"task_name"`
	WorkflowNotes *string                 `json:"workflow_notes"`
	Status        models.AutomationStatus `json:"status"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}
