package app

import (
	"context"
	"fmt"

	"github.com/example/dayboard/internal/core/weekly"
	"github.com/example/dayboard/internal/models"
	"github.com/example/dayboard/internal/ports/primary"
	"github.com/example/dayboard/internal/ports/secondary"
)

// PlannerServiceImpl implements the PlannerService interface.
type PlannerServiceImpl struct {
	taskRepo  secondary.WeeklyTaskRepository
	allocator *PositionAllocator
}

// NewPlannerService creates a new PlannerService with injected dependencies.
func NewPlannerService(taskRepo secondary.WeeklyTaskRepository) *PlannerServiceImpl {
	return &PlannerServiceImpl{
		taskRepo:  taskRepo,
		allocator: NewPositionAllocator(taskRepo),
	}
}

// CreateWeeklyTask adds a card, auto-positioning it when no position is given.
func (s *PlannerServiceImpl) CreateWeeklyTask(ctx context.Context, req primary.CreateWeeklyTaskRequest) (*primary.WeeklyTask, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	guard := weekly.CanCreateTask(weekly.CreateTaskContext{
		Title:         req.Title,
		Column:        req.Column,
		WeekStartDate: req.WeekStartDate,
		Position:      req.Position,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	partition := weekly.Partition{
		UserID:        req.UserID,
		Column:        req.Column,
		WeekStartDate: req.WeekStartDate,
	}
	position, err := s.allocator.Assign(ctx, partition, req.Position)
	if err != nil {
		return nil, err
	}

	record := &secondary.WeeklyTaskRecord{
		UserID:        req.UserID,
		Title:         req.Title,
		Column:        req.Column,
		Position:      position,
		WeekStartDate: req.WeekStartDate,
	}
	if err := s.taskRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create weekly task: %w", err)
	}

	created, err := s.taskRepo.GetByID(ctx, record.ID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created weekly task: %w", err)
	}
	return recordToWeeklyTask(created), nil
}

// GetWeeklyTasks lists a week's cards as one flat list ascending by position.
func (s *PlannerServiceImpl) GetWeeklyTasks(ctx context.Context, req primary.GetWeeklyTasksRequest) ([]*primary.WeeklyTask, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	if err := weekly.CanListWeek(req.WeekStartDate).Error(); err != nil {
		return nil, err
	}

	records, err := s.taskRepo.List(ctx, secondary.WeeklyTaskFilters{
		UserID:        req.UserID,
		WeekStartDate: req.WeekStartDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly tasks: %w", err)
	}

	tasks := make([]*primary.WeeklyTask, len(records))
	for i, r := range records {
		tasks[i] = recordToWeeklyTask(r)
	}
	return tasks, nil
}

// GetWeeklyBoard lists a week's cards grouped into the four columns.
func (s *PlannerServiceImpl) GetWeeklyBoard(ctx context.Context, req primary.GetWeeklyTasksRequest) (*primary.WeeklyBoard, error) {
	tasks, err := s.GetWeeklyTasks(ctx, req)
	if err != nil {
		return nil, err
	}

	lanes := weekly.GroupByColumn(tasks, func(t *primary.WeeklyTask) models.Column { return t.Column })
	board := &primary.WeeklyBoard{
		WeekStartDate: req.WeekStartDate,
		Columns:       make([]primary.BoardColumn, len(lanes)),
	}
	for i, lane := range lanes {
		board.Columns[i] = primary.BoardColumn{Column: lane.Column, Tasks: lane.Tasks}
	}
	return board, nil
}

// UpdateWeeklyTask changes only the supplied fields. Column, week and
// position changes are plain field writes; neighbours are not renumbered.
func (s *PlannerServiceImpl) UpdateWeeklyTask(ctx context.Context, req primary.UpdateWeeklyTaskRequest) (*primary.WeeklyTask, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	guard := weekly.CanUpdateTask(weekly.UpdateTaskContext{
		Title:         req.Title,
		Column:        req.Column,
		Position:      req.Position,
		WeekStartDate: req.WeekStartDate,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	err := s.taskRepo.Update(ctx, req.ID, req.UserID, secondary.WeeklyTaskPatch{
		Title:         req.Title,
		Column:        req.Column,
		Position:      req.Position,
		WeekStartDate: req.WeekStartDate,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.GetByID(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated weekly task: %w", err)
	}
	return recordToWeeklyTask(updated), nil
}

// DeleteWeeklyTask removes a card and reports whether a row was removed.
func (s *PlannerServiceImpl) DeleteWeeklyTask(ctx context.Context, req primary.DeleteRequest) (*primary.DeleteResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	removed, err := s.taskRepo.Delete(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, err
	}
	return &primary.DeleteResponse{Success: removed}, nil
}

func recordToWeeklyTask(r *secondary.WeeklyTaskRecord) *primary.WeeklyTask {
	return &primary.WeeklyTask{
		ID:            r.ID,
		UserID:        r.UserID,
		Title:         r.Title,
		Column:        r.Column,
		Position:      r.Position,
		WeekStartDate: r.WeekStartDate,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Ensure PlannerServiceImpl implements the interface
var _ primary.PlannerService = (*PlannerServiceImpl)(nil)
