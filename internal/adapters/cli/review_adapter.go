package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	corereview "github.com/example/dayboard/internal/core/review"
	"github.com/example/dayboard/internal/models"
	"github.com/example/dayboard/internal/ports/primary"
)

// ReviewAdapter is a thin adapter that translates CLI operations to ReviewService calls.
type ReviewAdapter struct {
	service primary.ReviewService
	out     io.Writer
}

// NewReviewAdapter creates a new ReviewAdapter with the given service.
func NewReviewAdapter(service primary.ReviewService, out io.Writer) *ReviewAdapter {
	return &ReviewAdapter{
		service: service,
		out:     out,
	}
}

// Record saves a review. Answers are keyed by field name; missing or empty
// answers are stored as NULL.
func (a *ReviewAdapter) Record(ctx context.Context, userID, date, reviewType string, answers map[string]string) (*primary.DailyReview, error) {
	req := primary.CreateDailyReviewRequest{
		UserID:     userID,
		ReviewDate: date,
		Type:       models.ReviewType(reviewType),
	}
	for field, answer := range answers {
		if answer == "" {
			continue
		}
		target := createField(&req, field)
		if target == nil {
			return nil, fmt.Errorf("unknown review field %q", field)
		}
		v := answer
		*target = &v
	}

	r, err := a.service.CreateDailyReview(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Saved %s review #%d for %s\n", r.Type, r.ID, r.ReviewDate)
	return r, nil
}

// Show prints one review. An empty type shows whichever review exists.
func (a *ReviewAdapter) Show(ctx context.Context, userID, date, reviewType string) (*primary.DailyReview, error) {
	r, err := a.service.GetDailyReview(ctx, primary.GetDailyReviewRequest{
		UserID:     userID,
		ReviewDate: date,
		Type:       models.ReviewType(reviewType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if r == nil {
		fmt.Fprintf(a.out, "No review for %s\n", date)
		return nil, nil
	}

	color.New(color.Bold).Fprintf(a.out, "\n%s review for %s (#%d)\n", r.Type, r.ReviewDate, r.ID)
	for _, p := range corereview.PromptsFor(r.Type) {
		answer := "-"
		if v := reviewField(r, p.Field); v != nil {
			answer = *v
		}
		fmt.Fprintf(a.out, "%s\n  %s\n", p.Question, answer)
	}
	fmt.Fprintln(a.out)

	return r, nil
}

// List prints reviews between two dates inclusive.
func (a *ReviewAdapter) List(ctx context.Context, userID, from, to, reviewType string) ([]*primary.DailyReview, error) {
	reviews, err := a.service.ListDailyReviews(ctx, primary.ListDailyReviewsRequest{
		UserID: userID,
		From:   from,
		To:     to,
		Type:   models.ReviewType(reviewType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	if len(reviews) == 0 {
		fmt.Fprintln(a.out, "No reviews found.")
		return reviews, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTYPE\tHEADLINE")
	fmt.Fprintln(w, "--\t----\t----\t--------")
	for _, r := range reviews {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.ReviewDate, r.Type, headline(r))
	}
	w.Flush()

	return reviews, nil
}

// Answer sets or clears a single field on an existing review.
func (a *ReviewAdapter) Answer(ctx context.Context, userID string, id int64, field, value string, clear bool) error {
	req := primary.UpdateDailyReviewRequest{ID: id, UserID: userID}
	target := updateField(&req, field)
	if target == nil {
		return fmt.Errorf("unknown review field %q", field)
	}
	if clear {
		*target = primary.ClearText()
	} else {
		*target = primary.SetText(value)
	}

	if _, err := a.service.UpdateDailyReview(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Review #%d updated\n", id)
	return nil
}

// Remove deletes a review.
func (a *ReviewAdapter) Remove(ctx context.Context, userID string, id int64) error {
	resp, err := a.service.DeleteDailyReview(ctx, primary.DeleteRequest{ID: id, UserID: userID})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("review #%d not found", id)
	}

	fmt.Fprintf(a.out, "✓ Review #%d deleted\n", id)
	return nil
}

func headline(r *primary.DailyReview) string {
	for _, p := range corereview.PromptsFor(r.Type) {
		if v := reviewField(r, p.Field); v != nil {
			return *v
		}
	}
	return ""
}

func reviewField(r *primary.DailyReview, field string) *string {
	switch field {
	case corereview.FieldTodaysOneThing:
		return r.TodaysOneThing
	case corereview.FieldTopThreeTasks:
		return r.TopThreeTasks
	case corereview.FieldGratitude:
		return r.Gratitude
	case corereview.FieldAccomplished:
		return r.Accomplished
	case corereview.FieldDistractions:
		return r.Distractions
	case corereview.FieldTomorrowsShift:
		return r.TomorrowsShift
	}
	return nil
}

func createField(req *primary.CreateDailyReviewRequest, field string) **string {
	switch field {
	case corereview.FieldTodaysOneThing:
		return &req.TodaysOneThing
	case corereview.FieldTopThreeTasks:
		return &req.TopThreeTasks
	case corereview.FieldGratitude:
		return &req.Gratitude
	case corereview.FieldAccomplished:
		return &req.Accomplished
	case corereview.FieldDistractions:
		return &req.Distractions
	case corereview.FieldTomorrowsShift:
		return &req.TomorrowsShift
	}
	return nil
}

func updateField(req *primary.UpdateDailyReviewRequest, field string) *primary.OptionalText {
	switch field {
	case corereview.FieldTodaysOneThing:
		return &req.TodaysOneThing
	case corereview.FieldTopThreeTasks:
		return &req.TopThreeTasks
	case corereview.FieldGratitude:
		return &req.Gratitude
	case corereview.FieldAccomplished:
		return &req.Accomplished
	case corereview.FieldDistractions:
		return &req.Distractions
	case corereview.FieldTomorrowsShift:
		return &req.TomorrowsShift
	}
	return nil
}
