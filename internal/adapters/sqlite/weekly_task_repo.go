package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/dayboard/internal/apperr"
	"github.com/example/dayboard/internal/models"
	"github.com/example/dayboard/internal/ports/secondary"
)

// WeeklyTaskRepository implements secondary.WeeklyTaskRepository with SQLite.
type WeeklyTaskRepository struct {
	db  *sql.DB
	opt options
}

// NewWeeklyTaskRepository creates a new SQLite weekly task repository.
func NewWeeklyTaskRepository(db *sql.DB, opts ...Option) *WeeklyTaskRepository {
	return &WeeklyTaskRepository{db: db, opt: buildOptions(opts)}
}

const weeklyTaskSelectCols = `id, user_id, title, "column", position, week_start_date, created_at, updated_at`

func scanWeeklyTask(s scanner) (*secondary.WeeklyTaskRecord, error) {
	record := &secondary.WeeklyTaskRecord{}
	err := s.Scan(
		&record.ID, &record.UserID, &record.Title, &record.Column,
		&record.Position, &record.WeekStartDate, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Create persists a new task with the position already resolved.
func (r *WeeklyTaskRepository) Create(ctx context.Context, task *secondary.WeeklyTaskRecord) error {
	now := timestamp(r.opt.now)
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO weekly_tasks (user_id, title, "column", position, week_start_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.UserID, task.Title, string(task.Column), task.Position, task.WeekStartDate, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create weekly task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read weekly task id: %w", err)
	}
	task.ID = id
	return nil
}

// GetByID retrieves a task owned by userID.
func (r *WeeklyTaskRepository) GetByID(ctx context.Context, id int64, userID string) (*secondary.WeeklyTaskRecord, error) {
	record, err := scanWeeklyTask(r.db.QueryRowContext(ctx,
		"SELECT "+weeklyTaskSelectCols+" FROM weekly_tasks WHERE id = ? AND user_id = ?",
		id, userID,
	))
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("weekly task", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly task: %w", err)
	}
	return record, nil
}

// List retrieves tasks for one week, ascending by position. Ties keep
// creation order.
func (r *WeeklyTaskRepository) List(ctx context.Context, filters secondary.WeeklyTaskFilters) ([]*secondary.WeeklyTaskRecord, error) {
	query := "SELECT " + weeklyTaskSelectCols + " FROM weekly_tasks WHERE user_id = ? AND week_start_date = ?"
	args := []any{filters.UserID, filters.WeekStartDate}

	if filters.Column != "" {
		query += ` AND "column" = ?`
		args = append(args, string(filters.Column))
	}

	query += " ORDER BY position ASC, id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*secondary.WeeklyTaskRecord{}
	for rows.Next() {
		record, err := scanWeeklyTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekly task: %w", err)
		}
		tasks = append(tasks, record)
	}
	return tasks, rows.Err()
}

// MaxPosition returns the highest position in the (user, column, week)
// partition. found is false when the partition is empty.
func (r *WeeklyTaskRepository) MaxPosition(ctx context.Context, userID string, column models.Column, weekStartDate string) (int, bool, error) {
	var maxPos sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT MAX(position) FROM weekly_tasks WHERE user_id = ? AND "column" = ? AND week_start_date = ?`,
		userID, string(column), weekStartDate,
	).Scan(&maxPos)
	if err != nil {
		return 0, false, fmt.Errorf("failed to read max position: %w", err)
	}
	if !maxPos.Valid {
		return 0, false, nil
	}
	return int(maxPos.Int64), true, nil
}

// Update applies the non-nil patch fields and refreshes updated_at.
// Moving a task never renumbers its neighbours.
func (r *WeeklyTaskRepository) Update(ctx context.Context, id int64, userID string, patch secondary.WeeklyTaskPatch) error {
	query := "UPDATE weekly_tasks SET updated_at = ?"
	args := []any{timestamp(r.opt.now)}

	if patch.Title != nil {
		query += ", title = ?"
		args = append(args, *patch.Title)
	}
	if patch.Column != nil {
		query += `, "column" = ?`
		args = append(args, string(*patch.Column))
	}
	if patch.Position != nil {
		query += ", position = ?"
		args = append(args, *patch.Position)
	}
	if patch.WeekStartDate != nil {
		query += ", week_start_date = ?"
		args = append(args, *patch.WeekStartDate)
	}

	query += " WHERE id = ? AND user_id = ?"
	args = append(args, id, userID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update weekly task: %w", err)
	}

	updated, err := rowsRemoved(result)
	if err != nil {
		return fmt.Errorf("failed to update weekly task: %w", err)
	}
	if !updated {
		return apperr.NotFound("weekly task", id)
	}
	return nil
}

// Delete removes the task and reports whether a row was removed.
func (r *WeeklyTaskRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM weekly_tasks WHERE id = ? AND user_id = ?", id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete weekly task: %w", err)
	}
	return rowsRemoved(result)
}

// Ensure WeeklyTaskRepository implements the interface.
var _ secondary.WeeklyTaskRepository = (*WeeklyTaskRepository)(nil)
