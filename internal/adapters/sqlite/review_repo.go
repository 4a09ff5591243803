package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/dayboard/internal/apperr"
	"github.com/example/dayboard/internal/ports/secondary"
)

// DailyReviewRepository implements secondary.DailyReviewRepository with SQLite.
type DailyReviewRepository struct {
	db  *sql.DB
	opt options
}

// NewDailyReviewRepository creates a new SQLite daily review repository.
func NewDailyReviewRepository(db *sql.DB, opts ...Option) *DailyReviewRepository {
	return &DailyReviewRepository{db: db, opt: buildOptions(opts)}
}

const reviewSelectCols = `id, user_id, review_date, type,
	todays_one_thing, top_three_tasks, gratitude,
	accomplished, distractions, tomorrows_shift,
	created_at, updated_at`

func scanDailyReview(s scanner) (*secondary.DailyReviewRecord, error) {
	var record secondary.DailyReviewRecord
	var oneThing, topThree, gratitude sql.NullString
	var accomplished, distractions, shift sql.NullString
	err := s.Scan(
		&record.ID, &record.UserID, &record.ReviewDate, &record.Type,
		&oneThing, &topThree, &gratitude,
		&accomplished, &distractions, &shift,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.TodaysOneThing = stringPtr(oneThing)
	record.TopThreeTasks = stringPtr(topThree)
	record.Gratitude = stringPtr(gratitude)
	record.Accomplished = stringPtr(accomplished)
	record.Distractions = stringPtr(distractions)
	record.TomorrowsShift = stringPtr(shift)
	return &record, nil
}

// Create persists a new review and assigns its ID.
// Repeated creation for the same (user, date, type) produces another row.
func (r *DailyReviewRepository) Create(ctx context.Context, review *secondary.DailyReviewRecord) error {
	now := timestamp(r.opt.now)
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO daily_reviews (
			user_id, review_date, type,
			todays_one_thing, top_three_tasks, gratitude,
			accomplished, distractions, tomorrows_shift,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		review.UserID, review.ReviewDate, string(review.Type),
		nullString(review.TodaysOneThing), nullString(review.TopThreeTasks), nullString(review.Gratitude),
		nullString(review.Accomplished), nullString(review.Distractions), nullString(review.TomorrowsShift),
		now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create daily review: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read daily review id: %w", err)
	}
	review.ID = id
	return nil
}

// GetByID retrieves a review owned by userID.
func (r *DailyReviewRepository) GetByID(ctx context.Context, id int64, userID string) (*secondary.DailyReviewRecord, error) {
	record, err := scanDailyReview(r.db.QueryRowContext(ctx,
		"SELECT "+reviewSelectCols+" FROM daily_reviews WHERE id = ? AND user_id = ?",
		id, userID,
	))
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("daily review", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily review: %w", err)
	}
	return record, nil
}

// List retrieves reviews matching the filters, oldest row first.
func (r *DailyReviewRepository) List(ctx context.Context, filters secondary.DailyReviewFilters) ([]*secondary.DailyReviewRecord, error) {
	query := "SELECT " + reviewSelectCols + " FROM daily_reviews WHERE user_id = ?"
	args := []any{filters.UserID}

	if filters.ReviewDate != "" {
		query += " AND review_date = ?"
		args = append(args, filters.ReviewDate)
	}
	if filters.Type != "" {
		query += " AND type = ?"
		args = append(args, string(filters.Type))
	}
	if filters.From != "" {
		query += " AND review_date >= ?"
		args = append(args, filters.From)
	}
	if filters.To != "" {
		query += " AND review_date <= ?"
		args = append(args, filters.To)
	}

	query += " ORDER BY id ASC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*secondary.DailyReviewRecord{}
	for rows.Next() {
		record, err := scanDailyReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily review: %w", err)
		}
		reviews = append(reviews, record)
	}
	return reviews, rows.Err()
}

// Update applies the set patch fields and refreshes updated_at.
func (r *DailyReviewRepository) Update(ctx context.Context, id int64, userID string, patch secondary.DailyReviewPatch) error {
	query := "UPDATE daily_reviews SET updated_at = ?"
	args := []any{timestamp(r.opt.now)}

	query, args = setNullable(query, args, "todays_one_thing", patch.TodaysOneThing)
	query, args = setNullable(query, args, "top_three_tasks", patch.TopThreeTasks)
	query, args = setNullable(query, args, "gratitude", patch.Gratitude)
	query, args = setNullable(query, args, "accomplished", patch.Accomplished)
	query, args = setNullable(query, args, "distractions", patch.Distractions)
	query, args = setNullable(query, args, "tomorrows_shift", patch.TomorrowsShift)

	query += " WHERE id = ? AND user_id = ?"
	args = append(args, id, userID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update daily review: %w", err)
	}

	updated, err := rowsRemoved(result)
	if err != nil {
		return fmt.Errorf("failed to update daily review: %w", err)
	}
	if !updated {
		return apperr.NotFound("daily review", id)
	}
	return nil
}

// Delete removes the review and reports whether a row was removed.
func (r *DailyReviewRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM daily_reviews WHERE id = ? AND user_id = ?", id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete daily review: %w", err)
	}
	return rowsRemoved(result)
}

// Ensure DailyReviewRepository implements the interface.
var _ secondary.DailyReviewRepository = (*DailyReviewRepository)(nil)
