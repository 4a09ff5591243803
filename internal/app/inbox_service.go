package app

import (
	"context"
	"fmt"

	coreinbox "github.com/example/dayboard/internal/core/inbox"
	"github.com/example/dayboard/internal/ports/primary"
	"github.com/example/dayboard/internal/ports/secondary"
)

// InboxServiceImpl implements the InboxService interface.
type InboxServiceImpl struct {
	inboxRepo secondary.InboxItemRepository
}

// NewInboxService creates a new InboxService with injected dependencies.
func NewInboxService(inboxRepo secondary.InboxItemRepository) *InboxServiceImpl {
	return &InboxServiceImpl{
		inboxRepo: inboxRepo,
	}
}

// CreateInboxItem captures a new, unprocessed item.
func (s *InboxServiceImpl) CreateInboxItem(ctx context.Context, req primary.CreateInboxItemRequest) (*primary.InboxItem, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	guard := coreinbox.CanCreateItem(coreinbox.CreateItemContext{
		Content: req.Content,
		Tag:     req.Tag,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	record := &secondary.InboxItemRecord{
		UserID:      req.UserID,
		Content:     req.Content,
		Tag:         req.Tag,
		IsProcessed: false,
	}
	if err := s.inboxRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create inbox item: %w", err)
	}

	created, err := s.inboxRepo.GetByID(ctx, record.ID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created inbox item: %w", err)
	}
	return recordToInboxItem(created), nil
}

// GetInboxItems lists the caller's items, newest first.
func (s *InboxServiceImpl) GetInboxItems(ctx context.Context, req primary.GetInboxItemsRequest) ([]*primary.InboxItem, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	records, err := s.inboxRepo.List(ctx, secondary.InboxItemFilters{
		UserID:    req.UserID,
		Processed: req.ProcessedOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox items: %w", err)
	}
	return recordsToInboxItems(records), nil
}

// UpdateInboxItem changes only the supplied fields.
func (s *InboxServiceImpl) UpdateInboxItem(ctx context.Context, req primary.UpdateInboxItemRequest) (*primary.InboxItem, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	guard := coreinbox.CanUpdateItem(coreinbox.UpdateItemContext{
		Content: req.Content,
		Tag:     req.Tag,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	err := s.inboxRepo.Update(ctx, req.ID, req.UserID, secondary.InboxItemPatch{
		Content:     req.Content,
		Tag:         req.Tag,
		IsProcessed: req.IsProcessed,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.inboxRepo.GetByID(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated inbox item: %w", err)
	}
	return recordToInboxItem(updated), nil
}

// DeleteInboxItem removes an item and reports whether it existed.
func (s *InboxServiceImpl) DeleteInboxItem(ctx context.Context, req primary.DeleteRequest) (*primary.DeleteResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	removed, err := s.inboxRepo.Delete(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, err
	}
	return &primary.DeleteResponse{Success: removed}, nil
}

func recordToInboxItem(r *secondary.InboxItemRecord) *primary.InboxItem {
	return &primary.InboxItem{
		ID:          r.ID,
		UserID:      r.UserID,
		Content:     r.Content,
		Tag:         r.Tag,
		IsProcessed: r.IsProcessed,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func recordsToInboxItems(records []*secondary.InboxItemRecord) []*primary.InboxItem {
	items := make([]*primary.InboxItem, len(records))
	for i, r := range records {
		items[i] = recordToInboxItem(r)
	}
	return items
}

// Ensure InboxServiceImpl implements the interface
var _ primary.InboxService = (*InboxServiceImpl)(nil)
