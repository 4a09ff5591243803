package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/dayboard/internal/models"
	"github.com/example/dayboard/internal/ports/primary"
)

// AutomationAdapter is a thin adapter that translates CLI operations to AutomationService calls.
type AutomationAdapter struct {
	service primary.AutomationService
	out     io.Writer
}

// NewAutomationAdapter creates a new AutomationAdapter with the given service.
func NewAutomationAdapter(service primary.AutomationService, out io.Writer) *AutomationAdapter {
	return &AutomationAdapter{
		service: service,
		out:     out,
	}
}

// Add records a chore to automate. Empty notes are stored as NULL.
func (a *AutomationAdapter) Add(ctx context.Context, userID, name, notes, status string) (*primary.AutomationTask, error) {
	req := primary.CreateAutomationTaskRequest{
		UserID:   userID,
		TaskName: name,
		Status:   models.AutomationStatus(status),
	}
	if notes != "" {
		req.WorkflowNotes = &notes
	}

	task, err := a.service.CreateAutomationTask(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Tracking #%d %s (%s)\n", task.ID, task.TaskName, task.Status)
	return task, nil
}

// List lists tracked chores, optionally filtered by status.
func (a *AutomationAdapter) List(ctx context.Context, userID, status string) ([]*primary.AutomationTask, error) {
	tasks, err := a.service.GetAutomationTasks(ctx, primary.GetAutomationTasksRequest{
		UserID: userID,
		Status: models.AutomationStatus(status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list automation tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No automation tasks found.")
		return tasks, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTASK\tNOTES")
	fmt.Fprintln(w, "--\t------\t----\t-----")
	for _, t := range tasks {
		notes := ""
		if t.WorkflowNotes != nil {
			notes = *t.WorkflowNotes
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.Status, t.TaskName, notes)
	}
	w.Flush()

	return tasks, nil
}

// SetStatus moves a chore along the workflow.
func (a *AutomationAdapter) SetStatus(ctx context.Context, userID string, id int64, status string) error {
	s := models.AutomationStatus(status)
	task, err := a.service.UpdateAutomationTask(ctx, primary.UpdateAutomationTaskRequest{
		ID:     id,
		UserID: userID,
		Status: &s,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ #%d %s is now %s\n", task.ID, task.TaskName, task.Status)
	return nil
}

// SetNotes replaces the workflow notes; clear stores NULL.
func (a *AutomationAdapter) SetNotes(ctx context.Context, userID string, id int64, notes string, clear bool) error {
	req := primary.UpdateAutomationTaskRequest{ID: id, UserID: userID}
	if clear {
		req.WorkflowNotes = primary.ClearText()
	} else {
		req.WorkflowNotes = primary.SetText(notes)
	}

	if _, err := a.service.UpdateAutomationTask(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Notes for #%d updated\n", id)
	return nil
}

// Remove stops tracking a chore.
func (a *AutomationAdapter) Remove(ctx context.Context, userID string, id int64) error {
	resp, err := a.service.DeleteAutomationTask(ctx, primary.DeleteRequest{ID: id, UserID: userID})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("automation task #%d not found", id)
	}

	fmt.Fprintf(a.out, "✓ Automation task #%d deleted\n", id)
	return nil
}
