package rpc

import (
	"github.com/example/dayboard/internal/models"
)

// Procedure inputs. user_id is accepted on every input for compatibility with
// clients that send it; the identity itself comes from the request.

type noInput struct{}

// deleteInput takes any numeric id. Ids that match nothing, zero included,
// come back as success false rather than a rejected request.
type deleteInput struct {
	ID *int64 `json:"id" validate:"required"`
}

type createInboxItemInput struct {
	Content string     `json:"content" validate:"required"`
	Tag     models.Tag `json:"tag" validate:"required,tag"`
}

type getInboxItemsInput struct {
	ProcessedOnly *bool `json:"processed_only"`
}

type updateInboxItemInput struct {
	ID          int64       `json:"id" validate:"required"`
	Content     *string     `json:"content" validate:"omitempty,min=1"`
	Tag         *models.Tag `json:"tag" validate:"omitempty,tag"`
	IsProcessed *bool       `json:"is_processed"`
}

type createDailyReviewInput struct {
	ReviewDate     string            `json:"review_date" validate:"required,isodate"`
	Type           models.ReviewType `json:"type" validate:"required,review_type"`
	TodaysOneThing *string           `json:"todays_one_thing"`
	TopThreeTasks  *string           `json:"top_three_tasks"`
	Gratitude      *string           `json:"gratitude"`
	Accomplished   *string           `json:"accomplished"`
	Distractions   *string           `json:"distractions"`
	TomorrowsShift *string           `json:"tomorrows_shift"`
}

type getDailyReviewInput struct {
	ReviewDate string            `json:"review_date" validate:"required,isodate"`
	Type       models.ReviewType `json:"type" validate:"omitempty,review_type"`
}

type updateDailyReviewInput struct {
	ID             int64          `json:"id" validate:"required"`
	TodaysOneThing NullableString `json:"todays_one_thing"`
	TopThreeTasks  NullableString `json:"top_three_tasks"`
	Gratitude      NullableString `json:"gratitude"`
	Accomplished   NullableString `json:"accomplished"`
	Distractions   NullableString `json:"distractions"`
	TomorrowsShift NullableString `json:"tomorrows_shift"`
}

type listDailyReviewsInput struct {
	From string            `json:"from" validate:"required,isodate"`
	To   string            `json:"to" validate:"required,isodate"`
	Type models.ReviewType `json:"type" validate:"omitempty,review_type"`
}

type createWeeklyTaskInput struct {
	Title         string        `json:"title" validate:"required"`
	Column        models.Column `json:"column" validate:"required,column"`
	WeekStartDate string        `json:"week_start_date" validate:"required,isodate"`
	Position      *int          `json:"position" validate:"omitempty,min=0,max=2147483647"`
}

type weekInput struct {
	WeekStartDate string `json:"week_start_date" validate:"required,isodate"`
}

type updateWeeklyTaskInput struct {
	ID            int64          `json:"id" validate:"required"`
	Title         *string        `json:"title" validate:"omitempty,min=1"`
	Column        *models.Column `json:"column" validate:"omitempty,column"`
	Position      *int           `json:"position" validate:"omitempty,min=0,max=2147483647"`
	WeekStartDate *string        `json:"week_start_date" validate:"omitempty,isodate"`
}

type createAutomationTaskInput struct {
	TaskName      string                  `json:"task_name" validate:"required"`
	WorkflowNotes *string                 `json:"workflow_notes"`
	Status        models.AutomationStatus `json:"status" validate:"omitempty,automation_status"`
}

type getAutomationTasksInput struct {
	Status models.AutomationStatus `json:"status" validate:"omitempty,automation_status"`
}

type updateAutomationTaskInput struct {
	ID            int64                    `json:"id" validate:"required"`
	TaskName      *string                  `json:"task_name" validate:"omitempty,min=1"`
	WorkflowNotes NullableString           `json:"workflow_notes"`
	Status        *models.AutomationStatus `json:"status" validate:"omitempty,automation_status"`
}
