package weekly

import (
	"errors"
	"testing"

	"github.com/example/dayboard/internal/apperr"
	"github.com/example/dayboard/internal/models"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func TestCanCreateTask(t *testing.T) {
	tests := []struct {
		name        string
		ctx         CreateTaskContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "can create task with auto position",
			ctx: CreateTaskContext{
				Title:         "Ship v1",
				Column:        models.ColumnWork,
				WeekStartDate: "2024-01-01",
			},
			wantAllowed: true,
		},
		{
			name: "can create task at explicit position zero",
			ctx: CreateTaskContext{
				Title:         "Groceries",
				Column:        models.ColumnFamily,
				WeekStartDate: "2024-01-08",
				Position:      intPtr(0),
			},
			wantAllowed: true,
		},
		{
			name: "cannot create task with blank title",
			ctx: CreateTaskContext{
				Title:         "   ",
				Column:        models.ColumnWork,
				WeekStartDate: "2024-01-01",
			},
			wantAllowed: false,
			wantReason:  "title must not be empty",
		},
		{
			name: "cannot create task in unknown column",
			ctx: CreateTaskContext{
				Title:         "Ship v1",
				Column:        models.Column("Personal"),
				WeekStartDate: "2024-01-01",
			},
			wantAllowed: false,
			wantReason:  "invalid column: Personal",
		},
		{
			name: "column vocabulary is case sensitive",
			ctx: CreateTaskContext{
				Title:         "Ship v1",
				Column:        models.Column("side hustle"),
				WeekStartDate: "2024-01-01",
			},
			wantAllowed: false,
			wantReason:  "invalid column: side hustle",
		},
		{
			name: "cannot create task with malformed week",
			ctx: CreateTaskContext{
				Title:         "Ship v1",
				Column:        models.ColumnWork,
				WeekStartDate: "2024-1-1",
			},
			wantAllowed: false,
			wantReason:  "week_start_date must use YYYY-MM-DD",
		},
		{
			name: "cannot create task for a week starting on Wednesday",
			ctx: CreateTaskContext{
				Title:         "Ship v1",
				Column:        models.ColumnWork,
				WeekStartDate: "2024-01-03",
			},
			wantAllowed: false,
			wantReason:  "week_start_date 2024-01-03 is not a Monday",
		},
		{
			name: "cannot create task at negative position",
			ctx: CreateTaskContext{
				Title:         "Ship v1",
				Column:        models.ColumnSelf,
				WeekStartDate: "2024-01-01",
				Position:      intPtr(-1),
			},
			wantAllowed: false,
			wantReason:  "position must be non-negative",
		},
		{
			name: "can create task at the position limit",
			ctx: CreateTaskContext{
				Title:         "Ship v1",
				Column:        models.ColumnSelf,
				WeekStartDate: "2024-01-01",
				Position:      intPtr(MaxPosition),
			},
			wantAllowed: true,
		},
		{
			name: "cannot create task past the position limit",
			ctx: CreateTaskContext{
				Title:         "Ship v1",
				Column:        models.ColumnSelf,
				WeekStartDate: "2024-01-01",
				Position:      intPtr(MaxPosition + 1),
			},
			wantAllowed: false,
			wantReason:  "position must not exceed 2147483647",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanCreateTask(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanUpdateTask(t *testing.T) {
	family := models.ColumnFamily
	bogus := models.Column("Later")

	tests := []struct {
		name        string
		ctx         UpdateTaskContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "empty update is allowed",
			ctx:         UpdateTaskContext{},
			wantAllowed: true,
		},
		{
			name: "move to another column and week",
			ctx: UpdateTaskContext{
				Column:        &family,
				WeekStartDate: strPtr("2024-01-15"),
				Position:      intPtr(4),
			},
			wantAllowed: true,
		},
		{
			name:        "cannot blank the title",
			ctx:         UpdateTaskContext{Title: strPtr("")},
			wantAllowed: false,
			wantReason:  "title must not be empty",
		},
		{
			name:        "cannot move to unknown column",
			ctx:         UpdateTaskContext{Column: &bogus},
			wantAllowed: false,
			wantReason:  "invalid column: Later",
		},
		{
			name:        "cannot move to a non-Monday week",
			ctx:         UpdateTaskContext{WeekStartDate: strPtr("2024-01-14")},
			wantAllowed: false,
			wantReason:  "week_start_date 2024-01-14 is not a Monday",
		},
		{
			name:        "cannot set a negative position",
			ctx:         UpdateTaskContext{Position: intPtr(-3)},
			wantAllowed: false,
			wantReason:  "position must be non-negative",
		},
		{
			name:        "cannot move past the position limit",
			ctx:         UpdateTaskContext{Position: intPtr(MaxPosition + 1)},
			wantAllowed: false,
			wantReason:  "position must not exceed 2147483647",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanUpdateTask(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanListWeek(t *testing.T) {
	if !CanListWeek("2024-01-03").Allowed {
		t.Error("listing accepts any well-formed date")
	}
	if CanListWeek("next week").Allowed {
		t.Error("expected malformed date to be rejected")
	}
}

func TestGuardResult_ErrorIsValidation(t *testing.T) {
	if err := (GuardResult{Allowed: true}).Error(); err != nil {
		t.Errorf("allowed result should not produce an error, got %v", err)
	}

	err := GuardResult{Allowed: false, Reason: "title must not be empty"}.Error()
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if err.Error() != "title must not be empty" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
