package app

import (
	"context"
	"fmt"

	"github.com/example/dayboard/internal/core/weekly"
	"github.com/example/dayboard/internal/ports/secondary"
)

// PositionAllocator assigns board positions within a (user, column, week)
// partition.
//
// The max-then-insert sequence is not serialized: two concurrent creates in
// one partition can both receive the same position. The board tolerates
// duplicates and gaps, ordering only by ascending position.
type PositionAllocator struct {
	taskRepo secondary.WeeklyTaskRepository
}

// NewPositionAllocator creates an allocator reading from taskRepo.
func NewPositionAllocator(taskRepo secondary.WeeklyTaskRepository) *PositionAllocator {
	return &PositionAllocator{taskRepo: taskRepo}
}

// NextPosition returns max(position)+1 for the partition, or 1 when empty.
// A partition already holding MaxPosition returns a conflict.
func (a *PositionAllocator) NextPosition(ctx context.Context, p weekly.Partition) (int, error) {
	max, found, err := a.taskRepo.MaxPosition(ctx, p.UserID, p.Column, p.WeekStartDate)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate position: %w", err)
	}
	return weekly.NextPosition(max, found)
}

// Assign returns explicit verbatim when set, without checking for
// collisions, and otherwise the partition's next position.
func (a *PositionAllocator) Assign(ctx context.Context, p weekly.Partition, explicit *int) (int, error) {
	if explicit != nil {
		return *explicit, nil
	}
	return a.NextPosition(ctx, p)
}
