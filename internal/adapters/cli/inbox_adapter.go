// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/dayboard/internal/models"
	"github.com/example/dayboard/internal/ports/primary"
)

// InboxAdapter is a thin adapter that translates CLI operations to InboxService calls.
// It depends only on the InboxService interface, enabling easy testing with mocks.
type InboxAdapter struct {
	service primary.InboxService
	out     io.Writer
}

// NewInboxAdapter creates a new InboxAdapter with the given service.
func NewInboxAdapter(service primary.InboxService, out io.Writer) *InboxAdapter {
	return &InboxAdapter{
		service: service,
		out:     out,
	}
}

// Add captures a new inbox item.
func (a *InboxAdapter) Add(ctx context.Context, userID, content, tag string) (*primary.InboxItem, error) {
	item, err := a.service.CreateInboxItem(ctx, primary.CreateInboxItemRequest{
		UserID:  userID,
		Content: content,
		Tag:     models.Tag(tag),
	})
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Added inbox item #%d %s %s\n", item.ID, tagLabel(item.Tag), item.Content)
	return item, nil
}

// List lists inbox items. A nil processed lists every item.
func (a *InboxAdapter) List(ctx context.Context, userID string, processed *bool) ([]*primary.InboxItem, error) {
	items, err := a.service.GetInboxItems(ctx, primary.GetInboxItemsRequest{
		UserID:        userID,
		ProcessedOnly: processed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox items: %w", err)
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "Inbox is empty.")
		return items, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTAG\tSTATUS\tCONTENT")
	fmt.Fprintln(w, "--\t---\t------\t-------")
	for _, item := range items {
		status := "open"
		if item.IsProcessed {
			status = "done"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.ID, item.Tag, status, item.Content)
	}
	w.Flush()

	return items, nil
}

// Done marks an item processed.
func (a *InboxAdapter) Done(ctx context.Context, userID string, id int64) error {
	processed := true
	if _, err := a.service.UpdateInboxItem(ctx, primary.UpdateInboxItemRequest{
		ID:          id,
		UserID:      userID,
		IsProcessed: &processed,
	}); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Inbox item #%d processed\n", id)
	return nil
}

// Edit changes an item's content and/or tag. Empty arguments are left alone.
func (a *InboxAdapter) Edit(ctx context.Context, userID string, id int64, content, tag string) error {
	if content == "" && tag == "" {
		return fmt.Errorf("must specify at least --content or --tag")
	}

	req := primary.UpdateInboxItemRequest{ID: id, UserID: userID}
	if content != "" {
		req.Content = &content
	}
	if tag != "" {
		t := models.Tag(tag)
		req.Tag = &t
	}
	if _, err := a.service.UpdateInboxItem(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Inbox item #%d updated\n", id)
	return nil
}

// Remove deletes an item.
func (a *InboxAdapter) Remove(ctx context.Context, userID string, id int64) error {
	resp, err := a.service.DeleteInboxItem(ctx, primary.DeleteRequest{ID: id, UserID: userID})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("inbox item #%d not found", id)
	}

	fmt.Fprintf(a.out, "✓ Inbox item #%d deleted\n", id)
	return nil
}

func tagLabel(tag models.Tag) string {
	c := color.New(color.FgCyan)
	switch tag {
	case models.TagWork:
		c = color.New(color.FgBlue)
	case models.TagSideHustle:
		c = color.New(color.FgMagenta)
	case models.TagPersonal, models.TagFamily, models.TagSelf:
		c = color.New(color.FgGreen)
	case models.TagGratitude:
		c = color.New(color.FgYellow)
	}
	return c.Sprintf("[%s]", tag)
}
