package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/dayboard/internal/models"
	"github.com/example/dayboard/internal/ports/primary"
)

// PlannerAdapter is a thin adapter that translates CLI operations to PlannerService calls.
type PlannerAdapter struct {
	service primary.PlannerService
	out     io.Writer
}

// NewPlannerAdapter creates a new PlannerAdapter with the given service.
func NewPlannerAdapter(service primary.PlannerService, out io.Writer) *PlannerAdapter {
	return &PlannerAdapter{
		service: service,
		out:     out,
	}
}

// Add puts a task on the board. A nil position appends to the column.
func (a *PlannerAdapter) Add(ctx context.Context, userID, week, title, column string, position *int) (*primary.WeeklyTask, error) {
	task, err := a.service.CreateWeeklyTask(ctx, primary.CreateWeeklyTaskRequest{
		UserID:        userID,
		Title:         title,
		Column:        models.Column(column),
		WeekStartDate: week,
		Position:      position,
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Added #%d to %s at position %d: %s\n", task.ID, task.Column, task.Position, task.Title)
	return task, nil
}

// Board prints the week as columns in display order.
func (a *PlannerAdapter) Board(ctx context.Context, userID, week string) (*primary.WeeklyBoard, error) {
	board, err := a.service.GetWeeklyBoard(ctx, primary.GetWeeklyTasksRequest{
		UserID:        userID,
		WeekStartDate: week,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	fmt.Fprintf(a.out, "\nWeek of %s\n\n", board.WeekStartDate)
	header := color.New(color.Bold, color.FgCyan)
	for _, col := range board.Columns {
		header.Fprintf(a.out, "%s\n", col.Column)
		if len(col.Tasks) == 0 {
			fmt.Fprintln(a.out, "  (empty)")
		}
		for _, task := range col.Tasks {
			fmt.Fprintf(a.out, "  %2d. %s  #%d\n", task.Position, task.Title, task.ID)
		}
		fmt.Fprintln(a.out)
	}

	return board, nil
}

// Move changes a task's column, position or week. Empty strings and nil
// leave the field alone; other tasks keep their positions.
func (a *PlannerAdapter) Move(ctx context.Context, userID string, id int64, column string, position *int, week string) error {
	if column == "" && position == nil && week == "" {
		return fmt.Errorf("must specify at least --column, --position or --week")
	}

	req := primary.UpdateWeeklyTaskRequest{ID: id, UserID: userID, Position: position}
	if column != "" {
		c := models.Column(column)
		req.Column = &c
	}
	if week != "" {
		req.WeekStartDate = &week
	}

	task, err := a.service.UpdateWeeklyTask(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Moved #%d to %s position %d (week of %s)\n", task.ID, task.Column, task.Position, task.WeekStartDate)
	return nil
}

// Rename changes a task's title.
func (a *PlannerAdapter) Rename(ctx context.Context, userID string, id int64, title string) error {
	if _, err := a.service.UpdateWeeklyTask(ctx, primary.UpdateWeeklyTaskRequest{
		ID:     id,
		UserID: userID,
		Title:  &title,
	}); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Renamed #%d to %s\n", id, title)
	return nil
}

// Remove deletes a task.
func (a *PlannerAdapter) Remove(ctx context.Context, userID string, id int64) error {
	resp, err := a.service.DeleteWeeklyTask(ctx, primary.DeleteRequest{ID: id, UserID: userID})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("task #%d not found", id)
	}

	fmt.Fprintf(a.out, "✓ Task #%d deleted\n", id)
	return nil
}
