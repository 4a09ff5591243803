package primary

import (
	"context"
	"time"

	"github.com/example/dayboard/internal/models"
)

// PlannerService defines the primary port for the weekly kanban board.
type PlannerService interface {
	// CreateWeeklyTask adds a card. When Position is nil the card goes to the
	// end of its (user, column, week) partition.
	CreateWeeklyTask(ctx context.Context, req CreateWeeklyTaskRequest) (*WeeklyTask, error)

	// GetWeeklyTasks lists a week's cards ascending by position.
	GetWeeklyTasks(ctx context.Context, req GetWeeklyTasksRequest) ([]*WeeklyTask, error)

	// GetWeeklyBoard lists a week's cards grouped into the four columns.
	GetWeeklyBoard(ctx context.Context, req GetWeeklyTasksRequest) (*WeeklyBoard, error)

	// UpdateWeeklyTask changes only the supplied fields. Moving a card never
	// renumbers the others.
	UpdateWeeklyTask(ctx context.Context, req UpdateWeeklyTaskRequest) (*WeeklyTask, error)

	// DeleteWeeklyTask removes a card and reports whether it existed.
	DeleteWeeklyTask(ctx context.Context, req DeleteRequest) (*DeleteResponse, error)
}

// CreateWeeklyTaskRequest contains parameters for adding a card.
type CreateWeeklyTaskRequest struct {
	UserID        string
	Title         string
	Column        models.Column
	WeekStartDate string
	Position      *int
}

// GetWeeklyTasksRequest identifies one week of one user's board.
type GetWeeklyTasksRequest struct {
	UserID        string
	WeekStartDate string
}

// UpdateWeeklyTaskRequest contains the fields to change; nil means unchanged.
type UpdateWeeklyTaskRequest struct {
	ID            int64
	UserID        string
	Title         *string
	Column        *models.Column
	Position      *int
	WeekStartDate *string
}

// WeeklyTask represents a board card at the port boundary.
type WeeklyTask struct {
	ID            int64         `json:"id"`
	UserID        string        `json:"user_id"`
	Title         string        `json:"title"`
	Column        models.Column `json:"column"`
	Position      int           `json:"position"`
	WeekStartDate string        `json:"week_start_date"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// BoardColumn is one lane of the weekly board.
type BoardColumn struct {
	Column models.Column `json:"column"`
	Tasks  []*WeeklyTask `json:"tasks"`
}

// WeeklyBoard is a week's cards grouped by column, in display order.
type WeeklyBoard struct {
	WeekStartDate string        `json:"week_start_date"`
	Columns       []BoardColumn `json:"columns"`
}
