package primary

import "context"

// DashboardService defines the primary port for the dashboard aggregates.
type DashboardService interface {
	// GetTodayFocusTasks buckets the caller's unprocessed Work, Side Hustle
	// and Personal inbox items. Other tags appear in no bucket.
	GetTodayFocusTasks(ctx context.Context, userID string) (*FocusTasks, error)
}

// FocusTasks holds the three dashboard focus lists.
type FocusTasks struct {
	Work       []*InboxItem `json:"work"`
	SideHustle []*InboxItem `json:"sideHustle"`
	Personal   []*InboxItem `json:"personal"`
}
