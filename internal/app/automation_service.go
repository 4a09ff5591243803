package app

import (
	"context"
	"fmt"

	coreautomation "github.com/example/dayboard/internal/core/automation"
	"github.com/example/dayboard/internal/ports/primary"
	"github.com/example/dayboard/internal/ports/secondary"
)

// AutomationServiceImpl implements the AutomationService interface.
type AutomationServiceImpl struct {
	automationRepo secondary.AutomationTaskRepository
}

// NewAutomationService creates a new AutomationService with injected dependencies.
func NewAutomationService(automationRepo secondary.AutomationTaskRepository) *AutomationServiceImpl {
	return &AutomationServiceImpl{
		automationRepo: automationRepo,
	}
}

// CreateAutomationTask records a candidate; status defaults to To Automate.
func (s *AutomationServiceImpl) CreateAutomationTask(ctx context.Context, req primary.CreateAutomationTaskRequest) (*primary.AutomationTask, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	guard := coreautomation.CanCreateTask(coreautomation.CreateTaskContext{
		TaskName: req.TaskName,
		Status:   req.Status,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	record := &secondary.AutomationTaskRecord{
		UserID:        req.UserID,
		TaskName:      req.TaskName,
		WorkflowNotes: req.WorkflowNotes,
		Status:        coreautomation.DefaultStatus(req.Status),
	}
	if err := s.automationRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create automation task: %w", err)
	}

	created, err := s.automationRepo.GetByID(ctx, record.ID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created automation task: %w", err)
	}
	return recordToAutomationTask(created), nil
}

// GetAutomationTasks lists the caller's tasks, optionally by status.
func (s *AutomationServiceImpl) GetAutomationTasks(ctx context.Context, req primary.GetAutomationTasksRequest) ([]*primary.AutomationTask, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	if err := coreautomation.CanFilterByStatus(req.Status).Error(); err != nil {
		return nil, err
	}

	records, err := s.automationRepo.List(ctx, secondary.AutomationTaskFilters{
		UserID: req.UserID,
		Status: req.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list automation tasks: %w", err)
	}

	tasks := make([]*primary.AutomationTask, len(records))
	for i, r := range records {
		tasks[i] = recordToAutomationTask(r)
	}
	return tasks, nil
}

// UpdateAutomationTask changes only the supplied fields.
func (s *AutomationServiceImpl) UpdateAutomationTask(ctx context.Context, req primary.UpdateAutomationTaskRequest) (*primary.AutomationTask, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	guard := coreautomation.CanUpdateTask(coreautomation.UpdateTaskContext{
		TaskName: req.TaskName,
		Status:   req.Status,
	})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	err := s.automationRepo.Update(ctx, req.ID, req.UserID, secondary.AutomationTaskPatch{
		TaskName:      req.TaskName,
		WorkflowNotes: toNullableText(req.WorkflowNotes),
		Status:        req.Status,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.automationRepo.GetByID(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated automation task: %w", err)
	}
	return recordToAutomationTask(updated), nil
}

// DeleteAutomationTask removes a task and reports whether it existed.
func (s *AutomationServiceImpl) DeleteAutomationTask(ctx context.Context, req primary.DeleteRequest) (*primary.DeleteResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	removed, err := s.automationRepo.Delete(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, err
	}
	return &primary.DeleteResponse{Success: removed}, nil
}

func recordToAutomationTask(r *secondary.AutomationTaskRecord) *primary.AutomationTask {
	return &primary.AutomationTask{
		ID:            r.ID,
		UserID:        r.UserID,
		TaskName:      r.TaskName,
		WorkflowNotes: r.WorkflowNotes,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Ensure AutomationServiceImpl implements the interface
var _ primary.AutomationService = (*AutomationServiceImpl)(nil)
