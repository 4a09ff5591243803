package primary

import (
	"context"
	"time"

	"github.com/example/dayboard/internal/models"
)

// ReviewService defines the primary port for AM/PM daily reviews.
type ReviewService interface {
	// CreateDailyReview stores a new review. Repeated creation for the same
	// date and type produces another row; there is no upsert.
	CreateDailyReview(ctx context.Context, req CreateDailyReviewRequest) (*DailyReview, error)

	// GetDailyReview returns the first matching review, or nil when none exists.
	GetDailyReview(ctx context.Context, req GetDailyReviewRequest) (*DailyReview, error)

	// UpdateDailyReview changes only the supplied text fields.
	UpdateDailyReview(ctx context.Context, req UpdateDailyReviewRequest) (*DailyReview, error)

	// DeleteDailyReview removes a review and reports whether it existed.
	DeleteDailyReview(ctx context.Context, req DeleteRequest) (*DeleteResponse, error)

	// ListDailyReviews returns review history for a date range.
	ListDailyReviews(ctx context.Context, req ListDailyReviewsRequest) ([]*DailyReview, error)
}

// CreateDailyReviewRequest contains parameters for creating a review.
type CreateDailyReviewRequest struct {
	UserID         string
	ReviewDate     string
	Type           models.ReviewType
	TodaysOneThing *string
	TopThreeTasks  *string
	Gratitude      *string
	Accomplished   *string
	Distractions   *string
	TomorrowsShift *string
}

// GetDailyReviewRequest identifies a review by date and optional type.
type GetDailyReviewRequest struct {
	UserID     string
	ReviewDate string
	Type       models.ReviewType // empty matches either type
}

// UpdateDailyReviewRequest contains the text fields to change.
type UpdateDailyReviewRequest struct {
	ID             int64
	UserID         string
	TodaysOneThing OptionalText
	TopThreeTasks  OptionalText
	Gratitude      OptionalText
	Accomplished   OptionalText
	Distractions   OptionalText
	TomorrowsShift OptionalText
}

// ListDailyReviewsRequest contains filter options for review history.
type ListDailyReviewsRequest struct {
	UserID string
	From   string
	To     string
	Type   models.ReviewType
}

// DailyReview represents a daily review at the port boundary.
type DailyReview struct {
	ID             int64             `json:"id"`
	UserID         string            `json:"user_id"`
	ReviewDate     string            `json:"review_date"`
	Type           models.ReviewType `json:"type"`
	TodaysOneThing *string           `json:"todays_one_thing"`
	TopThreeTasks  *string           `json:"top_three_tasks"`
	Gratitude      *string           `json:"gratitude"`
	Accomplished   *string           `json:"accomplished"`
	Distractions   *string           `json:"distractions"`
	TomorrowsShift *string           `json:"tomorrows_shift"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
