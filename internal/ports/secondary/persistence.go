// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
//
// Every entity row is owned by a user ID. Lookups, updates and deletes are
// scoped to (id, userID); a row owned by someone else behaves exactly like a
// missing row.
package secondary

import (
	"context"
	"time"

	"github.com/example/dayboard/internal/models"
)

// NullableText is a patch value for a nullable text column.
// Set=false leaves the column unchanged; Set=true with a nil Value clears it.
type NullableText struct {
	Set   bool
	Value *string
}

// UserRepository defines the secondary port for user persistence.
type UserRepository interface {
	// Create persists a new user. A duplicate id or email is a conflict.
	Create(ctx context.Context, user *UserRecord) error

	// GetByID retrieves a user by its ID.
	GetByID(ctx context.Context, id string) (*UserRecord, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*UserRecord, error)

	// List retrieves all users ordered by creation time.
	List(ctx context.Context) ([]*UserRecord, error)
}

// UserRecord represents a user as stored in persistence.
type UserRecord struct {
	ID        string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InboxItemRepository defines the secondary port for inbox persistence.
type InboxItemRepository interface {
	// Create persists a new inbox item and assigns its ID.
	Create(ctx context.Context, item *InboxItemRecord) error

	// GetByID retrieves an inbox item owned by userID.
	GetByID(ctx context.Context, id int64, userID string) (*InboxItemRecord, error)

	// List retrieves inbox items matching the filters, newest first.
	List(ctx context.Context, filters InboxItemFilters) ([]*InboxItemRecord, error)

	// Update applies the non-nil patch fields and refreshes updated_at.
	Update(ctx context.Context, id int64, userID string, patch InboxItemPatch) error

	// Delete removes the item and reports whether a row was removed.
	Delete(ctx context.Context, id int64, userID string) (bool, error)
}

// InboxItemRecord represents an inbox item as stored in persistence.
type InboxItemRecord struct {
	ID          int64
	UserID      string
	Content     string
	Tag         models.Tag
	IsProcessed bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InboxItemFilters contains filter options for querying inbox items.
type InboxItemFilters struct {
	UserID    string
	Processed *bool        // nil matches both
	Tags      []models.Tag // empty matches every tag
}

// InboxItemPatch lists the mutable inbox fields; nil means unchanged.
type InboxItemPatch struct {
	Content     *string
	Tag         *models.Tag
	IsProcessed *bool
}

// DailyReviewRepository defines the secondary port for daily review persistence.
type DailyReviewRepository interface {
	// Create persists a new review and assigns its ID.
	Create(ctx context.Context, review *DailyReviewRecord) error

	// GetByID retrieves a review owned by userID.
	GetByID(ctx context.Context, id int64, userID string) (*DailyReviewRecord, error)

	// List retrieves reviews matching the filters, oldest row first.
	List(ctx context.Context, filters DailyReviewFilters) ([]*DailyReviewRecord, error)

	// Update applies the set patch fields and refreshes updated_at.
	Update(ctx context.Context, id int64, userID string, patch DailyReviewPatch) error

	// Delete removes the review and reports whether a row was removed.
	Delete(ctx context.Context, id int64, userID string) (bool, error)
}

// DailyReviewRecord represents a daily review as stored in persistence.
// The six text fields are nullable; AM reviews use the first three and PM
// reviews the last three, but the store does not enforce the split.
type DailyReviewRecord struct {
	ID             int64
	UserID         string
	ReviewDate     string
	Type           models.ReviewType
	TodaysOneThing *string
	TopThreeTasks  *string
	Gratitude      *string
	Accomplished   *string
	Distractions   *string
	TomorrowsShift *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DailyReviewFilters contains filter options for querying daily reviews.
type DailyReviewFilters struct {
	UserID     string
	ReviewDate string            // exact date, empty matches any
	Type       models.ReviewType // empty matches both
	From       string            // inclusive lower bound on review_date
	To         string            // inclusive upper bound on review_date
	Limit      int
}

// DailyReviewPatch lists the mutable review fields.
type DailyReviewPatch struct {
	TodaysOneThing NullableText
	TopThreeTasks  NullableText
	Gratitude      NullableText
	Accomplished   NullableText
	Distractions   NullableText
	TomorrowsShift NullableText
}

// WeeklyTaskRepository defines the secondary port for weekly board persistence.
type WeeklyTaskRepository interface {
	// Create persists a new task with the position already resolved.
	Create(ctx context.Context, task *WeeklyTaskRecord) error

	// GetByID retrieves a task owned by userID.
	GetByID(ctx context.Context, id int64, userID string) (*WeeklyTaskRecord, error)

	// List retrieves tasks matching the filters, ascending by position.
	List(ctx context.Context, filters WeeklyTaskFilters) ([]*WeeklyTaskRecord, error)

	// MaxPosition returns the highest position in the (user, column, week)
	// partition. found is false when the partition is empty.
	MaxPosition(ctx context.Context, userID string, column models.Column, weekStartDate string) (max int, found bool, err error)

	// Update applies the non-nil patch fields and refreshes updated_at.
	Update(ctx context.Context, id int64, userID string, patch WeeklyTaskPatch) error

	// Delete removes the task and reports whether a row was removed.
	Delete(ctx context.Context, id int64, userID string) (bool, error)
}

// WeeklyTaskRecord represents a weekly board card as stored in persistence.
type WeeklyTaskRecord struct {
	ID            int64
	UserID        string
	Title         string
	Column        models.Column
	Position      int
	WeekStartDate string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WeeklyTaskFilters contains filter options for querying weekly tasks.
type WeeklyTaskFilters struct {
	UserID        string
	WeekStartDate string
	Column        models.Column // empty matches every column
}

// WeeklyTaskPatch lists the mutable weekly task fields; nil means unchanged.
// Changing Column, Position or WeekStartDate never renumbers other tasks.
type WeeklyTaskPatch struct {
	Title         *string
	Column        *models.Column
	Position      *int
	WeekStartDate *string
}

// AutomationTaskRepository defines the secondary port for automation tracker persistence.
type AutomationTaskRepository interface {
	// Create persists a new automation task and assigns its ID.
	Create(ctx context.Context, task *AutomationTaskRecord) error

	// GetByID retrieves an automation task owned by userID.
	GetByID(ctx context.Context, id int64, userID string) (*AutomationTaskRecord, error)

	// List retrieves automation tasks matching the filters in creation order.
	List(ctx context.Context, filters AutomationTaskFilters) ([]*AutomationTaskRecord, error)

	// Update applies the set patch fields and refreshes updated_at.
	Update(ctx context.Context, id int64, userID string, patch AutomationTaskPatch) error

	// Delete removes the task and reports whether a row was removed.
	Delete(ctx context.Context, id int64, userID string) (bool, error)
}

// AutomationTaskRecord represents an automation task as stored in persistence.
type AutomationTaskRecord struct {
	ID            int64
	UserID        string
	TaskName      string
	WorkflowNotes *string
	Status        models.AutomationStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AutomationTaskFilters contains filter options for querying automation tasks.
type AutomationTaskFilters struct {
	UserID string
	Status models.AutomationStatus // empty matches every status
}

// AutomationTaskPatch lists the mutable automation task fields.
type AutomationTaskPatch struct {
	TaskName      *string
	WorkflowNotes NullableText
	Status        *models.AutomationStatus
}

// HealthProbe reports whether the backing store is reachable.
type HealthProbe interface {
	Ping(ctx context.Context) error
}
