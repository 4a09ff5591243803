package app

import (
	"context"
	"fmt"

	coreinbox "github.com/example/dayboard/internal/core/inbox"
	"github.com/example/dayboard/internal/models"
	"github.com/example/dayboard/internal/ports/primary"
	"github.com/example/dayboard/internal/ports/secondary"
)

// DashboardServiceImpl implements the DashboardService interface.
type DashboardServiceImpl struct {
	inboxRepo secondary.InboxItemRepository
}

// NewDashboardService creates a new DashboardService with injected dependencies.
func NewDashboardService(inboxRepo secondary.InboxItemRepository) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		inboxRepo: inboxRepo,
	}
}

// GetTodayFocusTasks buckets the caller's unprocessed focus-tagged items.
func (s *DashboardServiceImpl) GetTodayFocusTasks(ctx context.Context, userID string) (*primary.FocusTasks, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	unprocessed := false
	records, err := s.inboxRepo.List(ctx, secondary.InboxItemFilters{
		UserID:    userID,
		Processed: &unprocessed,
		Tags:      coreinbox.FocusTags,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch focus tasks: %w", err)
	}

	buckets := coreinbox.Categorize(recordsToInboxItems(records), func(i *primary.InboxItem) (models.Tag, bool) {
		return i.Tag, i.IsProcessed
	})
	return &primary.FocusTasks{
		Work:       buckets.Work,
		SideHustle: buckets.SideHustle,
		Personal:   buckets.Personal,
	}, nil
}

// Ensure DashboardServiceImpl implements the interface
var _ primary.DashboardService = (*DashboardServiceImpl)(nil)
