package app

import (
	"context"
	"fmt"

	corereview "github.com/example/dayboard/internal/core/review"
	"github.com/example/dayboard/internal/ports/primary"
	"github.com/example/dayboard/internal/ports/secondary"
)

// ReviewServiceImpl implements the ReviewService interface.
type ReviewServiceImpl struct {
	reviewRepo secondary.DailyReviewRepository
}

// NewReviewService creates a new ReviewService with injected dependencies.
func NewReviewService(reviewRepo secondary.DailyReviewRepository) *ReviewServiceImpl {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
	}
}

// CreateDailyReview stores a new review row. Duplicates for the same date
// and type are permitted.
func (s *ReviewServiceImpl) CreateDailyReview(ctx context.Context, req primary.CreateDailyReviewRequest) (*primary.DailyReview, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	guard := corereview.CanCreateReview(corereview.CreateReviewContext{
		ReviewDate: req.ReviewDate,
		Type:       req.Type,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	record := &secondary.DailyReviewRecord{
		UserID:         req.UserID,
		ReviewDate:     req.ReviewDate,
		Type:           req.Type,
		TodaysOneThing: req.TodaysOneThing,
		TopThreeTasks:  req.TopThreeTasks,
		Gratitude:      req.Gratitude,
		Accomplished:   req.Accomplished,
		Distractions:   req.Distractions,
		TomorrowsShift: req.TomorrowsShift,
	}
	if err := s.reviewRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create daily review: %w", err)
	}

	created, err := s.reviewRepo.GetByID(ctx, record.ID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created daily review: %w", err)
	}
	return recordToDailyReview(created), nil
}

// GetDailyReview returns the oldest review matching the date and optional
// type, or nil when none exists.
func (s *ReviewServiceImpl) GetDailyReview(ctx context.Context, req primary.GetDailyReviewRequest) (*primary.DailyReview, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	guard := corereview.CanLookupReview(corereview.LookupContext{
		ReviewDate: req.ReviewDate,
		Type:       req.Type,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	records, err := s.reviewRepo.List(ctx, secondary.DailyReviewFilters{
		UserID:     req.UserID,
		ReviewDate: req.ReviewDate,
		Type:       req.Type,
		Limit:      1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get daily review: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return recordToDailyReview(records[0]), nil
}

// UpdateDailyReview changes only the supplied text fields.
func (s *ReviewServiceImpl) UpdateDailyReview(ctx context.Context, req primary.UpdateDailyReviewRequest) (*primary.DailyReview, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	err := s.reviewRepo.Update(ctx, req.ID, req.UserID, secondary.DailyReviewPatch{
		TodaysOneThing: toNullableText(req.TodaysOneThing),
		TopThreeTasks:  toNullableText(req.TopThreeTasks),
		Gratitude:      toNullableText(req.Gratitude),
		Accomplished:   toNullableText(req.Accomplished),
		Distractions:   toNullableText(req.Distractions),
		TomorrowsShift: toNullableText(req.TomorrowsShift),
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.reviewRepo.GetByID(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated daily review: %w", err)
	}
	return recordToDailyReview(updated), nil
}

// DeleteDailyReview removes a review and reports whether it existed.
func (s *ReviewServiceImpl) DeleteDailyReview(ctx context.Context, req primary.DeleteRequest) (*primary.DeleteResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	removed, err := s.reviewRepo.Delete(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, err
	}
	return &primary.DeleteResponse{Success: removed}, nil
}

// ListDailyReviews returns review history for a date range, oldest first.
func (s *ReviewServiceImpl) ListDailyReviews(ctx context.Context, req primary.ListDailyReviewsRequest) ([]*primary.DailyReview, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	guard := corereview.CanListRange(corereview.RangeContext{
		From: req.From,
		To:   req.To,
		Type: req.Type,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	records, err := s.reviewRepo.List(ctx, secondary.DailyReviewFilters{
		UserID: req.UserID,
		From:   req.From,
		To:     req.To,
		Type:   req.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list daily reviews: %w", err)
	}

	reviews := make([]*primary.DailyReview, len(records))
	for i, r := range records {
		reviews[i] = recordToDailyReview(r)
	}
	return reviews, nil
}

func toNullableText(o primary.OptionalText) secondary.NullableText {
	return secondary.NullableText{Set: o.Set, Value: o.Value}
}

func recordToDailyReview(r *secondary.DailyReviewRecord) *primary.DailyReview {
	return &primary.DailyReview{
		ID:             r.ID,
		UserID:         r.UserID,
		ReviewDate:     r.ReviewDate,
		Type:           r.Type,
		TodaysOneThing: r.TodaysOneThing,
		TopThreeTasks:  r.TopThreeTasks,
		Gratitude:      r.Gratitude,
		Accomplished:   r.Accomplished,
		Distractions:   r.Distractions,
		TomorrowsShift: r.TomorrowsShift,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Ensure ReviewServiceImpl implements the interface
var _ primary.ReviewService = (*ReviewServiceImpl)(nil)
