package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/dayboard/internal/ports/primary"
)

// DashboardAdapter renders the today view.
type DashboardAdapter struct {
	service primary.DashboardService
	out     io.Writer
}

// NewDashboardAdapter creates a new DashboardAdapter with the given service.
func NewDashboardAdapter(service primary.DashboardService, out io.Writer) *DashboardAdapter {
	return &DashboardAdapter{
		service: service,
		out:     out,
	}
}

// Focus prints unprocessed inbox items bucketed by focus area.
func (a *DashboardAdapter) Focus(ctx context.Context, userID string) (*primary.FocusTasks, error) {
	focus, err := a.service.GetTodayFocusTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load focus tasks: %w", err)
	}

	header := color.New(color.Bold)
	sections := []struct {
		title string
		items []*primary.InboxItem
	}{
		{"Work", focus.Work},
		{"Side Hustle", focus.SideHustle},
		{"Personal", focus.Personal},
	}
	for _, s := range sections {
		header.Fprintf(a.out, "%s (%d)\n", s.title, len(s.items))
		if len(s.items) == 0 {
			fmt.Fprintln(a.out, "  nothing open")
		}
		for _, item := range s.items {
			fmt.Fprintf(a.out, "  #%d %s\n", item.ID, item.Content)
		}
		fmt.Fprintln(a.out)
	}

	return focus, nil
}
