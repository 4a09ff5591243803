package primary

import (
	"context"
	"time"

	"github.com/example/dayboard/internal/models"
)

// InboxService defines the primary port for the capture inbox.
type InboxService interface {
	// CreateInboxItem captures a new, unprocessed item.
	CreateInboxItem(ctx context.Context, req CreateInboxItemRequest) (*InboxItem, error)

	// GetInboxItems lists the caller's items, newest first.
	GetInboxItems(ctx context.Context, req GetInboxItemsRequest) ([]*InboxItem, error)

	// UpdateInboxItem changes only the supplied fields.
	UpdateInboxItem(ctx context.Context, req UpdateInboxItemRequest) (*InboxItem, error)

	// DeleteInboxItem removes an item and reports whether it existed.
	DeleteInboxItem(ctx context.Context, req DeleteRequest) (*DeleteResponse, error)
}

// CreateInboxItemRequest contains parameters for capturing an item.
type CreateInboxItemRequest struct {
	UserID  string
	Content string
	Tag     models.Tag
}

// GetInboxItemsRequest contains filter options for listing items.
type GetInboxItemsRequest struct {
	UserID        string
	ProcessedOnly *bool // nil lists every item
}

// UpdateInboxItemRequest contains the fields to change; nil means unchanged.
type UpdateInboxItemRequest struct {
	ID          int64
	UserID      string
	Content     *string
	Tag         *models.Tag
	IsProcessed *bool
}

// InboxItem represents an inbox item at the port boundary.
type InboxItem struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"user_id"`
	Content     string     `json:"content"`
	Tag         models.Tag `json:"tag"`
	IsProcessed bool       `json:"is_processed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
