package cli

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"

	"github.com/example/dayboard/internal/ports/primary"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var errBoom = errors.New("boom")

// mockInboxService implements primary.InboxService for testing
type mockInboxService struct {
	createFn func(ctx context.Context, req primary.CreateInboxItemRequest) (*primary.InboxItem, error)
	listFn   func(ctx context.Context, req primary.GetInboxItemsRequest) ([]*primary.InboxItem, error)
	updateFn func(ctx context.Context, req primary.UpdateInboxItemRequest) (*primary.InboxItem, error)
	deleteFn func(ctx context.Context, req primary.DeleteRequest) (*primary.DeleteResponse, error)

	lastCreateReq primary.CreateInboxItemRequest
	lastListReq   primary.GetInboxItemsRequest
	lastUpdateReq primary.UpdateInboxItemRequest
	lastDeleteReq primary.DeleteRequest
}

func (m *mockInboxService) CreateInboxItem(ctx context.Context, req primary.CreateInboxItemRequest) (*primary.InboxItem, error) {
	m.lastCreateReq = req
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return &primary.InboxItem{ID: 1, UserID: req.UserID, Content: req.Content, Tag: req.Tag}, nil
}

func (m *mockInboxService) GetInboxItems(ctx context.Context, req primary.GetInboxItemsRequest) ([]*primary.InboxItem, error) {
	m.lastListReq = req
	if m.listFn != nil {
		return m.listFn(ctx, req)
	}
	return []*primary.InboxItem{}, nil
}

func (m *mockInboxService) UpdateInboxItem(ctx context.Context, req primary.UpdateInboxItemRequest) (*primary.InboxItem, error) {
	m.lastUpdateReq = req
	if m.updateFn != nil {
		return m.updateFn(ctx, req)
	}
	return &primary.InboxItem{ID: req.ID, UserID: req.UserID}, nil
}

func (m *mockInboxService) DeleteInboxItem(ctx context.Context, req primary.DeleteRequest) (*primary.DeleteResponse, error) {
	m.lastDeleteReq = req
	if m.deleteFn != nil {
		return m.deleteFn(ctx, req)
	}
	return &primary.DeleteResponse{Success: true}, nil
}

// mockReviewService implements primary.ReviewService for testing
type mockReviewService struct {
	getFn    func(ctx context.Context, req primary.GetDailyReviewRequest) (*primary.DailyReview, error)
	listFn   func(ctx context.Context, req primary.ListDailyReviewsRequest) ([]*primary.DailyReview, error)
	deleteFn func(ctx context.Context, req primary.DeleteRequest) (*primary.DeleteResponse, error)

	lastCreateReq primary.CreateDailyReviewRequest
	lastUpdateReq primary.UpdateDailyReviewRequest
}

func (m *mockReviewService) CreateDailyReview(ctx context.Context, req primary.CreateDailyReviewRequest) (*primary.DailyReview, error) {
	m.lastCreateReq = req
	return &primary.DailyReview{ID: 7, UserID: req.UserID, ReviewDate: req.ReviewDate, Type: req.Type}, nil
}

func (m *mockReviewService) GetDailyReview(ctx context.Context, req primary.GetDailyReviewRequest) (*primary.DailyReview, error) {
	if m.getFn != nil {
		return m.getFn(ctx, req)
	}
	return nil, nil
}

func (m *mockReviewService) UpdateDailyReview(ctx context.Context, req primary.UpdateDailyReviewRequest) (*primary.DailyReview, error) {
	m.lastUpdateReq = req
	return &primary.DailyReview{ID: req.ID, UserID: req.UserID}, nil
}

func (m *mockReviewService) DeleteDailyReview(ctx context.Context, req primary.DeleteRequest) (*primary.DeleteResponse, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, req)
	}
	return &primary.DeleteResponse{Success: true}, nil
}

func (m *mockReviewService) ListDailyReviews(ctx context.Context, req primary.ListDailyReviewsRequest) ([]*primary.DailyReview, error) {
	if m.listFn != nil {
		return m.listFn(ctx, req)
	}
	return []*primary.DailyReview{}, nil
}

// mockPlannerService implements primary.PlannerService for testing
type mockPlannerService struct {
	boardFn  func(ctx context.Context, req primary.GetWeeklyTasksRequest) (*primary.WeeklyBoard, error)
	updateFn func(ctx context.Context, req primary.UpdateWeeklyTaskRequest) (*primary.WeeklyTask, error)
	deleteFn func(ctx context.Context, req primary.DeleteRequest) (*primary.DeleteResponse, error)

	lastCreateReq primary.CreateWeeklyTaskRequest
	lastUpdateReq primary.UpdateWeeklyTaskRequest
}

func (m *mockPlannerService) CreateWeeklyTask(ctx context.Context, req primary.CreateWeeklyTaskRequest) (*primary.WeeklyTask, error) {
	m.lastCreateReq = req
	pos := 1
	if req.Position != nil {
		pos = *req.Position
	}
	return &primary.WeeklyTask{ID: 3, UserID: req.UserID, Title: req.Title, Column: req.Column, Position: pos, WeekStartDate: req.WeekStartDate}, nil
}

func (m *mockPlannerService) GetWeeklyTasks(ctx context.Context, req primary.GetWeeklyTasksRequest) ([]*primary.WeeklyTask, error) {
	return []*primary.WeeklyTask{}, nil
}

func (m *mockPlannerService) GetWeeklyBoard(ctx context.Context, req primary.GetWeeklyTasksRequest) (*primary.WeeklyBoard, error) {
	if m.boardFn != nil {
		return m.boardFn(ctx, req)
	}
	return &primary.WeeklyBoard{WeekStartDate: req.WeekStartDate}, nil
}

func (m *mockPlannerService) UpdateWeeklyTask(ctx context.Context, req primary.UpdateWeeklyTaskRequest) (*primary.WeeklyTask, error) {
	m.lastUpdateReq = req
	if m.updateFn != nil {
		return m.updateFn(ctx, req)
	}
	return &primary.WeeklyTask{ID: req.ID, UserID: req.UserID}, nil
}

func (m *mockPlannerService) DeleteWeeklyTask(ctx context.Context, req primary.DeleteRequest) (*primary.DeleteResponse, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, req)
	}
	return &primary.DeleteResponse{Success: true}, nil
}

// mockAutomationService implements primary.AutomationService for testing
type mockAutomationService struct {
	listFn   func(ctx context.Context, req primary.GetAutomationTasksRequest) ([]*primary.AutomationTask, error)
	deleteFn func(ctx context.Context, req primary.DeleteRequest) (*primary.DeleteResponse, error)

	lastCreateReq primary.CreateAutomationTaskRequest
	lastUpdateReq primary.UpdateAutomationTaskRequest
}

func (m *mockAutomationService) CreateAutomationTask(ctx context.Context, req primary.CreateAutomationTaskRequest) (*primary.AutomationTask, error) {
	m.lastCreateReq = req
	status := req.Status
	if status == "" {
		status = "To Automate"
	}
	return &primary.AutomationTask{ID: 5, UserID: req.UserID, TaskName: req.TaskName, WorkflowNotes: req.WorkflowNotes, Status: status}, nil
}

func (m *mockAutomationService) GetAutomationTasks(ctx context.Context, req primary.GetAutomationTasksRequest) ([]*primary.AutomationTask, error) {
	if m.listFn != nil {
		return m.listFn(ctx, req)
	}
	return []*primary.AutomationTask{}, nil
}

func (m *mockAutomationService) UpdateAutomationTask(ctx context.Context, req primary.UpdateAutomationTaskRequest) (*primary.AutomationTask, error) {
	m.lastUpdateReq = req
	task := &primary.AutomationTask{ID: req.ID, UserID: req.UserID, TaskName: "backups"}
	if req.Status != nil {
		task.Status = *req.Status
	}
	return task, nil
}

func (m *mockAutomationService) DeleteAutomationTask(ctx context.Context, req primary.DeleteRequest) (*primary.DeleteResponse, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, req)
	}
	return &primary.DeleteResponse{Success: true}, nil
}

// mockDashboardService implements primary.DashboardService for testing
type mockDashboardService struct {
	focus *primary.FocusTasks
	err   error
}

func (m *mockDashboardService) GetTodayFocusTasks(ctx context.Context, userID string) (*primary.FocusTasks, error) {
	return m.focus, m.err
}

// mockUserService implements primary.UserService for testing
type mockUserService struct {
	users map[string]*primary.User
	err   error
}

func (m *mockUserService) CreateUser(ctx context.Context, req primary.CreateUserRequest) (*primary.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u := &primary.User{ID: req.ID, Email: req.Email}
	if m.users == nil {
		m.users = map[string]*primary.User{}
	}
	m.users[req.ID] = u
	return u, nil
}

func (m *mockUserService) GetCurrentUser(ctx context.Context, id string) (*primary.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[id], nil
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]*primary.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*primary.User{}
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}
