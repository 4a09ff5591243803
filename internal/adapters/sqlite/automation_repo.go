package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/dayboard/internal/apperr"
	"github.com/example/dayboard/internal/models"
	"github.com/example/dayboard/internal/ports/secondary"
)

// AutomationTaskRepository implements secondary.AutomationTaskRepository with SQLite.
type AutomationTaskRepository struct {
	db  *sql.DB
	opt options
}

// NewAutomationTaskRepository creates a new SQLite automation task repository.
func NewAutomationTaskRepository(db *sql.DB, opts ...Option) *AutomationTaskRepository {
	return &AutomationTaskRepository{db: db, opt: buildOptions(opts)}
}

const automationSelectCols = "id, user_id, task_name, workflow_notes, status, created_at, updated_at"

func scanAutomationTask(s scanner) (*secondary.AutomationTaskRecord, error) {
	var (
		record secondary.AutomationTaskRecord
		notes  sql.NullString
	)
	err := s.Scan(
		&record.ID, &record.UserID, &record.TaskName, &notes,
		&record.Status, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.WorkflowNotes = stringPtr(notes)
	return &record, nil
}

// Create persists a new automation task and assigns its ID.
func (r *AutomationTaskRepository) Create(ctx context.Context, task *secondary.AutomationTaskRecord) error {
	if task.Status == "" {
		task.Status = models.StatusToAutomate
	}

	now := timestamp(r.opt.now)
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO automation_tasks (user_id, task_name, workflow_notes, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		task.UserID, task.TaskName, nullString(task.WorkflowNotes), string(task.Status), now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create automation task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read automation task id: %w", err)
	}
	task.ID = id
	return nil
}

// GetByID retrieves an automation task owned by userID.
func (r *AutomationTaskRepository) GetByID(ctx context.Context, id int64, userID string) (*secondary.AutomationTaskRecord, error) {
	record, err := scanAutomationTask(r.db.QueryRowContext(ctx,
		"SELECT "+automationSelectCols+" FROM automation_tasks WHERE id = ? AND user_id = ?",
		id, userID,
	))
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("automation task", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get automation task: %w", err)
	}
	return record, nil
}

// List retrieves automation tasks matching the filters in creation order.
func (r *AutomationTaskRepository) List(ctx context.Context, filters secondary.AutomationTaskFilters) ([]*secondary.AutomationTaskRecord, error) {
	query := "SELECT " + automationSelectCols + " FROM automation_tasks WHERE user_id = ?"
	args := []any{filters.UserID}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filters.Status))
	}

	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list automation tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*secondary.AutomationTaskRecord{}
	for rows.Next() {
		record, err := scanAutomationTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan automation task: %w", err)
		}
		tasks = append(tasks, record)
	}
	return tasks, rows.Err()
}

// Update applies the set patch fields and refreshes updated_at.
func (r *AutomationTaskRepository) Update(ctx context.Context, id int64, userID string, patch secondary.AutomationTaskPatch) error {
	query := "UPDATE automation_tasks SET updated_at = ?"
	args := []any{timestamp(r.opt.now)}

	if patch.TaskName != nil {
		query += ", task_name = ?"
		args = append(args, *patch.TaskName)
	}
	query, args = setNullable(query, args, "workflow_notes", patch.WorkflowNotes)
	if patch.Status != nil {
		query += ", status = ?"
		args = append(args, string(*patch.Status))
	}

	query += " WHERE id = ? AND user_id = ?"
	args = append(args, id, userID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update automation task: %w", err)
	}

	updated, err := rowsRemoved(result)
	if err != nil {
		return fmt.Errorf("failed to update automation task: %w", err)
	}
	if !updated {
		return apperr.NotFound("automation task", id)
	}
	return nil
}

// Delete removes the task and reports whether a row was removed.
func (r *AutomationTaskRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM automation_tasks WHERE id = ? AND user_id = ?", id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete automation task: %w", err)
	}
	return rowsRemoved(result)
}

// Ensure AutomationTaskRepository implements the interface.
var _ secondary.AutomationTaskRepository = (*AutomationTaskRepository)(nil)
