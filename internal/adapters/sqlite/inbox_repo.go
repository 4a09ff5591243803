package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/dayboard/internal/apperr"
	"github.com/example/dayboard/internal/ports/secondary"
)

// InboxItemRepository implements secondary.InboxItemRepository with SQLite.
type InboxItemRepository struct {
	db  *sql.DB
	opt options
}

// NewInboxItemRepository creates a new SQLite inbox repository.
func NewInboxItemRepository(db *sql.DB, opts ...Option) *InboxItemRepository {
	return &InboxItemRepository{db: db, opt: buildOptions(opts)}
}

const inboxSelectCols = "id, user_id, content, tag, is_processed, created_at, updated_at"

func scanInboxItem(s scanner) (*secondary.InboxItemRecord, error) {
	record := &secondary.InboxItemRecord{}
	err := s.Scan(
		&record.ID, &record.UserID, &record.Content, &record.Tag,
		&record.IsProcessed, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Create persists a new inbox item and assigns its ID.
func (r *InboxItemRepository) Create(ctx context.Context, item *secondary.InboxItemRecord) error {
	now := timestamp(r.opt.now)
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO inbox_items (user_id, content, tag, is_processed, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		item.UserID, item.Content, string(item.Tag), item.IsProcessed, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create inbox item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inbox item id: %w", err)
	}
	item.ID = id
	return nil
}

// GetByID retrieves an inbox item owned by userID.
func (r *InboxItemRepository) GetByID(ctx context.Context, id int64, userID string) (*secondary.InboxItemRecord, error) {
	record, err := scanInboxItem(r.db.QueryRowContext(ctx,
		"SELECT "+inboxSelectCols+" FROM inbox_items WHERE id = ? AND user_id = ?",
		id, userID,
	))
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("inbox item", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inbox item: %w", err)
	}
	return record, nil
}

// List retrieves inbox items matching the filters, newest first.
func (r *InboxItemRepository) List(ctx context.Context, filters secondary.InboxItemFilters) ([]*secondary.InboxItemRecord, error) {
	query := "SELECT " + inboxSelectCols + " FROM inbox_items WHERE user_id = ?"
	args := []any{filters.UserID}

	if filters.Processed != nil {
		query += " AND is_processed = ?"
		args = append(args, *filters.Processed)
	}

	if len(filters.Tags) > 0 {
		placeholders := make([]string, len(filters.Tags))
		for i, tag := range filters.Tags {
			placeholders[i] = "?"
			args = append(args, string(tag))
		}
		query += " AND tag IN (" + strings.Join(placeholders, ", ") + ")"
	}

	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox items: %w", err)
	}
	defer rows.Close()

	items := []*secondary.InboxItemRecord{}
	for rows.Next() {
		record, err := scanInboxItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inbox item: %w", err)
		}
		items = append(items, record)
	}
	return items, rows.Err()
}

// Update applies the non-nil patch fields and refreshes updated_at.
func (r *InboxItemRepository) Update(ctx context.Context, id int64, userID string, patch secondary.InboxItemPatch) error {
	query := "UPDATE inbox_items SET updated_at = ?"
	args := []any{timestamp(r.opt.now)}

	if patch.Content != nil {
		query += ", content = ?"
		args = append(args, *patch.Content)
	}
	if patch.Tag != nil {
		query += ", tag = ?"
		args = append(args, string(*patch.Tag))
	}
	if patch.IsProcessed != nil {
		query += ", is_processed = ?"
		args = append(args, *patch.IsProcessed)
	}

	query += " WHERE id = ? AND user_id = ?"
	args = append(args, id, userID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update inbox item: %w", err)
	}

	updated, err := rowsRemoved(result)
	if err != nil {
		return fmt.Errorf("failed to update inbox item: %w", err)
	}
	if !updated {
		return apperr.NotFound("inbox item", id)
	}
	return nil
}

// Delete removes the item and reports whether a row was removed.
func (r *InboxItemRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM inbox_items WHERE id = ? AND user_id = ?", id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete inbox item: %w", err)
	}
	return rowsRemoved(result)
}

// Ensure InboxItemRepository implements the interface.
var _ secondary.InboxItemRepository = (*InboxItemRepository)(nil)
