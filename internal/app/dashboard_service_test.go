package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/dayboard/internal/models"
	"github.com/example/dayboard/internal/ports/primary"
)

func contents(items []*primary.InboxItem) []string {
	out := []string{}
	for _, i := range items {
		out = append(out, i.Content)
	}
	return out
}

func TestGetTodayFocusTasks(t *testing.T) {
	inboxRepo := newMockInboxRepository()
	inbox := NewInboxService(inboxRepo)
	dashboard := NewDashboardService(inboxRepo)
	ctx := context.Background()

	capture(t, inbox, "user-a", "buy milk", models.TagPersonal)
	capture(t, inbox, "user-a", "fix bug", models.TagWork)
	capture(t, inbox, "user-a", "app idea", models.TagIdea)
	capture(t, inbox, "user-a", "landing page", models.TagSideHustle)
	done := capture(t, inbox, "user-a", "old report", models.TagWork)
	capture(t, inbox, "user-b", "not mine", models.TagWork)

	if _, err := inbox.UpdateInboxItem(ctx, primary.UpdateInboxItemRequest{
		ID: done.ID, UserID: "user-a", IsProcessed: boolPtr(true),
	}); err != nil {
		t.Fatalf("mark processed: %v", err)
	}

	focus, err := dashboard.GetTodayFocusTasks(ctx, "user-a")
	if err != nil {
		t.Fatalf("GetTodayFocusTasks failed: %v", err)
	}

	if diff := cmp.Diff([]string{"fix bug"}, contents(focus.Work)); diff != "" {
		t.Errorf("work mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"landing page"}, contents(focus.SideHustle)); diff != "" {
		t.Errorf("side hustle mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"buy milk"}, contents(focus.Personal)); diff != "" {
		t.Errorf("personal mismatch (-want +got):\n%s", diff)
	}

	if inboxRepo.lastList.Processed == nil || *inboxRepo.lastList.Processed {
		t.Error("dashboard must query unprocessed items only")
	}
}

func TestGetTodayFocusTasks_EmptyBucketsAreNotNil(t *testing.T) {
	dashboard := NewDashboardService(newMockInboxRepository())

	focus, err := dashboard.GetTodayFocusTasks(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("GetTodayFocusTasks failed: %v", err)
	}
	if focus.Work == nil || focus.SideHustle == nil || focus.Personal == nil {
		t.Errorf("buckets must be empty slices, got %+v", focus)
	}
}

func TestGetTodayFocusTasks_StoreError(t *testing.T) {
	repo := newMockInboxRepository()
	repo.listErr = errStoreDown

	_, err := NewDashboardService(repo).GetTodayFocusTasks(context.Background(), "user-a")
	if !errors.Is(err, errStoreDown) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}
