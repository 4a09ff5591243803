package app

import (
	"context"
	"testing"

	"github.com/example/dayboard/internal/apperr"
	"github.com/example/dayboard/internal/models"
	"github.com/example/dayboard/internal/ports/primary"
)

func newTestReviewService() (*ReviewServiceImpl, *mockReviewRepository) {
	repo := newMockReviewRepository()
	return NewReviewService(repo), repo
}

func TestCreateDailyReview_MorningLeavesEveningFieldsEmpty(t *testing.T) {
	svc, _ := newTestReviewService()

	review, err := svc.CreateDailyReview(context.Background(), primary.CreateDailyReviewRequest{
		UserID:         "user-a",
		ReviewDate:     "2024-03-04",
		Type:           models.ReviewAM,
		TodaysOneThing: strPtr("ship the release"),
		TopThreeTasks:  strPtr("review, test, deploy"),
		Gratitude:      strPtr("coffee"),
	})
	if err != nil {
		t.Fatalf("CreateDailyReview failed: %v", err)
	}

	if review.Type != models.ReviewAM {
		t.Errorf("type = %q, want AM", review.Type)
	}
	if review.ReviewDate != "2024-03-04" {
		t.Errorf("review date = %q, want 2024-03-04", review.ReviewDate)
	}
	if review.TodaysOneThing == nil || *review.TodaysOneThing != "ship the release" {
		t.Errorf("todays one thing = %v, want %q", review.TodaysOneThing, "ship the release")
	}
	if review.Accomplished != nil || review.Distractions != nil || review.TomorrowsShift != nil {
		t.Error("evening fields should be empty on a morning review")
	}
}

func TestCreateDailyReview_DuplicatesAllowed(t *testing.T) {
	svc, repo := newTestReviewService()
	ctx := context.Background()
	req := primary.CreateDailyReviewRequest{UserID: "user-a", ReviewDate: "2024-03-04", Type: models.ReviewPM}

	first, err := svc.CreateDailyReview(ctx, req)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := svc.CreateDailyReview(ctx, req)
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("duplicate reviews share id %d", first.ID)
	}
	if len(repo.reviews) != 2 {
		t.Errorf("stored %d reviews, want 2", len(repo.reviews))
	}
}

func TestCreateDailyReview_Validation(t *testing.T) {
	svc, _ := newTestReviewService()

	tests := []struct {
		name string
		req  primary.CreateDailyReviewRequest
	}{
		{name: "missing user", req: primary.CreateDailyReviewRequest{ReviewDate: "2024-03-04", Type: models.ReviewAM}},
		{name: "bad date", req: primary.CreateDailyReviewRequest{UserID: "user-a", ReviewDate: "03/04/2024", Type: models.ReviewAM}},
		{name: "impossible date", req: primary.CreateDailyReviewRequest{UserID: "user-a", ReviewDate: "2024-02-30", Type: models.ReviewAM}},
		{name: "bad type", req: primary.CreateDailyReviewRequest{UserID: "user-a", ReviewDate: "2024-03-04", Type: "NOON"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateDailyReview(context.Background(), tt.req)
			if !apperr.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestGetDailyReview(t *testing.T) {
	svc, _ := newTestReviewService()
	ctx := context.Background()

	pm, err := svc.CreateDailyReview(ctx, primary.CreateDailyReviewRequest{
		UserID: "user-a", ReviewDate: "2024-03-04", Type: models.ReviewPM, Accomplished: strPtr("shipped"),
	})
	if err != nil {
		t.Fatalf("create PM failed: %v", err)
	}
	am, err := svc.CreateDailyReview(ctx, primary.CreateDailyReviewRequest{
		UserID: "user-a", ReviewDate: "2024-03-04", Type: models.ReviewAM,
	})
	if err != nil {
		t.Fatalf("create AM failed: %v", err)
	}

	tests := []struct {
		name   string
		req    primary.GetDailyReviewRequest
		wantID int64 // zero means no review
	}{
		{name: "by type", req: primary.GetDailyReviewRequest{UserID: "user-a", ReviewDate: "2024-03-04", Type: models.ReviewAM}, wantID: am.ID},
		{name: "without type returns the oldest row", req: primary.GetDailyReviewRequest{UserID: "user-a", ReviewDate: "2024-03-04"}, wantID: pm.ID},
		{name: "absent is nil without error", req: primary.GetDailyReviewRequest{UserID: "user-a", ReviewDate: "2024-03-05"}},
		{name: "other users see nothing", req: primary.GetDailyReviewRequest{UserID: "user-b", ReviewDate: "2024-03-04"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetDailyReview(ctx, tt.req)
			if err != nil {
				t.Fatalf("GetDailyReview failed: %v", err)
			}
			if tt.wantID == 0 {
				if got != nil {
					t.Errorf("got review #%d, want none", got.ID)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Errorf("got %+v, want review #%d", got, tt.wantID)
			}
		})
	}

	t.Run("bad date rejected", func(t *testing.T) {
		_, err := svc.GetDailyReview(ctx, primary.GetDailyReviewRequest{UserID: "user-a", ReviewDate: "yesterday"})
		if !apperr.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestUpdateDailyReview_TriState(t *testing.T) {
	svc, _ := newTestReviewService()
	ctx := context.Background()

	created, err := svc.CreateDailyReview(ctx, primary.CreateDailyReviewRequest{
		UserID:         "user-a",
		ReviewDate:     "2024-03-04",
		Type:           models.ReviewAM,
		TodaysOneThing: strPtr("write tests"),
		Gratitude:      strPtr("sunshine"),
	})
	if err != nil {
		t.Fatalf("CreateDailyReview failed: %v", err)
	}

	updated, err := svc.UpdateDailyReview(ctx, primary.UpdateDailyReviewRequest{
		ID:            created.ID,
		UserID:        "user-a",
		TopThreeTasks: primary.SetText("a, b, c"),
		Gratitude:     primary.ClearText(),
	})
	if err != nil {
		t.Fatalf("UpdateDailyReview failed: %v", err)
	}

	if updated.TodaysOneThing == nil || *updated.TodaysOneThing != "write tests" {
		t.Errorf("omitted field changed: %v", updated.TodaysOneThing)
	}
	if updated.TopThreeTasks == nil || *updated.TopThreeTasks != "a, b, c" {
		t.Errorf("top three tasks = %v, want %q", updated.TopThreeTasks, "a, b, c")
	}
	if updated.Gratitude != nil {
		t.Errorf("explicit null should clear gratitude, got %q", *updated.Gratitude)
	}
	if updated.Type != models.ReviewAM {
		t.Errorf("type = %q, want AM", updated.Type)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("updated_at should advance")
	}
}

func TestUpdateDailyReview_WrongUser(t *testing.T) {
	svc, repo := newTestReviewService()
	ctx := context.Background()

	created, err := svc.CreateDailyReview(ctx, primary.CreateDailyReviewRequest{
		UserID: "user-a", ReviewDate: "2024-03-04", Type: models.ReviewPM,
	})
	if err != nil {
		t.Fatalf("CreateDailyReview failed: %v", err)
	}

	_, err = svc.UpdateDailyReview(ctx, primary.UpdateDailyReviewRequest{
		ID: created.ID, UserID: "user-b", Accomplished: primary.SetText("nope"),
	})
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
	if repo.reviews[created.ID].Accomplished != nil {
		t.Error("another user's update must not touch the row")
	}
}

func TestDeleteDailyReview(t *testing.T) {
	svc, _ := newTestReviewService()
	ctx := context.Background()

	created, err := svc.CreateDailyReview(ctx, primary.CreateDailyReviewRequest{
		UserID: "user-a", ReviewDate: "2024-03-04", Type: models.ReviewPM,
	})
	if err != nil {
		t.Fatalf("CreateDailyReview failed: %v", err)
	}

	resp, err := svc.DeleteDailyReview(ctx, primary.DeleteRequest{ID: created.ID, UserID: "user-b"})
	if err != nil {
		t.Fatalf("delete as other user failed: %v", err)
	}
	if resp.Success {
		t.Error("delete by another user should report false")
	}

	resp, err = svc.DeleteDailyReview(ctx, primary.DeleteRequest{ID: created.ID, UserID: "user-a"})
	if err != nil {
		t.Fatalf("delete as owner failed: %v", err)
	}
	if !resp.Success {
		t.Error("delete by owner should report true")
	}
}

func TestListDailyReviews(t *testing.T) {
	svc, repo := newTestReviewService()
	ctx := context.Background()

	for _, d := range []string{"2024-03-01", "2024-03-04", "2024-03-08"} {
		for _, typ := range models.AllReviewTypes() {
			if _, err := svc.CreateDailyReview(ctx, primary.CreateDailyReviewRequest{UserID: "user-a", ReviewDate: d, Type: typ}); err != nil {
				t.Fatalf("create %s %s failed: %v", d, typ, err)
			}
		}
	}

	got, err := svc.ListDailyReviews(ctx, primary.ListDailyReviewsRequest{
		UserID: "user-a", From: "2024-03-02", To: "2024-03-08", Type: models.ReviewPM,
	})
	if err != nil {
		t.Fatalf("ListDailyReviews failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d reviews, want 2", len(got))
	}
	if got[0].ReviewDate != "2024-03-04" || got[1].ReviewDate != "2024-03-08" {
		t.Errorf("dates = %s, %s; want 2024-03-04, 2024-03-08", got[0].ReviewDate, got[1].ReviewDate)
	}
	if repo.lastList.From != "2024-03-02" {
		t.Errorf("filter from = %q, want 2024-03-02", repo.lastList.From)
	}

	_, err = svc.ListDailyReviews(ctx, primary.ListDailyReviewsRequest{UserID: "user-a", From: "2024-03-09", To: "2024-03-01"})
	if !apperr.IsValidation(err) {
		t.Errorf("inverted range should be rejected, got %v", err)
	}
}
