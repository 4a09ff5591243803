package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"

	"github.com/example/dayboard/internal/ctxutil"
	"github.com/example/dayboard/internal/ports/primary"
)

// Kind separates read-only procedures from side-effecting ones.
type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

// Services are the primary ports the procedures dispatch to.
type Services struct {
	Inbox      primary.InboxService
	Review     primary.ReviewService
	Planner    primary.PlannerService
	Automation primary.AutomationService
	Dashboard  primary.DashboardService
	User       primary.UserService
	Health     primary.HealthService
}

type handlerFunc func(ctx context.Context, svc *Services, input json.RawMessage) (any, error)

// Procedure is one named remote operation.
type Procedure struct {
	Name   string
	Kind   Kind
	handle handlerFunc
}

var validate = newValidator()

// bind decodes and validates the input before calling fn.
func bind[In, Out any](fn func(ctx context.Context, svc *Services, in *In) (Out, error)) handlerFunc {
	return func(ctx context.Context, svc *Services, raw json.RawMessage) (any, error) {
		in := new(In)
		if err := decodeInput(ctx, raw, in); err != nil {
			return nil, err
		}
		return fn(ctx, svc, in)
	}
}

func decodeInput(ctx context.Context, raw json.RawMessage, dst any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		raw = json.RawMessage("{}")
	}

	var claimed struct {
		UserID *string `json:"user_id"`
	}
	if err := json.Unmarshal(raw, &claimed); err != nil {
		return newError(CodeBadRequest, "malformed input: %v", err)
	}
	if claimed.UserID != nil && *claimed.UserID != ctxutil.UserFromContext(ctx) {
		return newError(CodeBadRequest, "user_id does not match the caller identity")
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return newError(CodeBadRequest, "malformed input: %v", err)
	}
	if err := validate.Struct(dst); err != nil {
		return newError(CodeBadRequest, "invalid input: %s", describeValidation(err))
	}
	return nil
}

func query[In, Out any](name string, fn func(context.Context, *Services, *In) (Out, error)) Procedure {
	return Procedure{Name: name, Kind: KindQuery, handle: bind(fn)}
}

func mutation[In, Out any](name string, fn func(context.Context, *Services, *In) (Out, error)) Procedure {
	return Procedure{Name: name, Kind: KindMutation, handle: bind(fn)}
}

func caller(ctx context.Context) string {
	return ctxutil.UserFromContext(ctx)
}

var registry = buildRegistry(
	query("healthcheck", func(ctx context.Context, svc *Services, _ *noInput) (*primary.Health, error) {
		return svc.Health.Check(ctx)
	}),
	query("getCurrentUser", func(ctx context.Context, svc *Services, _ *noInput) (*primary.User, error) {
		return svc.User.GetCurrentUser(ctx, caller(ctx))
	}),

	mutation("createInboxItem", func(ctx context.Context, svc *Services, in *createInboxItemInput) (*primary.InboxItem, error) {
		return svc.Inbox.CreateInboxItem(ctx, primary.CreateInboxItemRequest{
			UserID:  caller(ctx),
			Content: in.Content,
			Tag:     in.Tag,
		})
	}),
	query("getInboxItems", func(ctx context.Context, svc *Services, in *getInboxItemsInput) ([]*primary.InboxItem, error) {
		return svc.Inbox.GetInboxItems(ctx, primary.GetInboxItemsRequest{
			UserID:        caller(ctx),
			ProcessedOnly: in.ProcessedOnly,
		})
	}),
	mutation("updateInboxItem", func(ctx context.Context, svc *Services, in *updateInboxItemInput) (*primary.InboxItem, error) {
		return svc.Inbox.UpdateInboxItem(ctx, primary.UpdateInboxItemRequest{
			ID:          in.ID,
			UserID:      caller(ctx),
			Content:     in.Content,
			Tag:         in.Tag,
			IsProcessed: in.IsProcessed,
		})
	}),
	mutation("deleteInboxItem", func(ctx context.Context, svc *Services, in *deleteInput) (*primary.DeleteResponse, error) {
		return svc.Inbox.DeleteInboxItem(ctx, primary.DeleteRequest{ID: *in.ID, UserID: caller(ctx)})
	}),

	mutation("createDailyReview", func(ctx context.Context, svc *Services, in *createDailyReviewInput) (*primary.DailyReview, error) {
		return svc.Review.CreateDailyReview(ctx, primary.CreateDailyReviewRequest{
			UserID:         caller(ctx),
			ReviewDate:     in.ReviewDate,
			Type:           in.Type,
			TodaysOneThing: in.TodaysOneThing,
			TopThreeTasks:  in.TopThreeTasks,
			Gratitude:      in.Gratitude,
			Accomplished:   in.Accomplished,
			Distractions:   in.Distractions,
			TomorrowsShift: in.TomorrowsShift,
		})
	}),
	query("getDailyReview", func(ctx context.Context, svc *Services, in *getDailyReviewInput) (*primary.DailyReview, error) {
		return svc.Review.GetDailyReview(ctx, primary.GetDailyReviewRequest{
			UserID:     caller(ctx),
			ReviewDate: in.ReviewDate,
			Type:       in.Type,
		})
	}),
	mutation("updateDailyReview", func(ctx context.Context, svc *Services, in *updateDailyReviewInput) (*primary.DailyReview, error) {
		return svc.Review.UpdateDailyReview(ctx, primary.UpdateDailyReviewRequest{
			ID:             in.ID,
			UserID:         caller(ctx),
			TodaysOneThing: in.TodaysOneThing.optional(),
			TopThreeTasks:  in.TopThreeTasks.optional(),
			Gratitude:      in.Gratitude.optional(),
			Accomplished:   in.Accomplished.optional(),
			Distractions:   in.Distractions.optional(),
			TomorrowsShift: in.TomorrowsShift.optional(),
		})
	}),
	mutation("deleteDailyReview", func(ctx context.Context, svc *Services, in *deleteInput) (*primary.DeleteResponse, error) {
		return svc.Review.DeleteDailyReview(ctx, primary.DeleteRequest{ID: *in.ID, UserID: caller(ctx)})
	}),
	query("listDailyReviews", func(ctx context.Context, svc *Services, in *listDailyReviewsInput) ([]*primary.DailyReview, error) {
		return svc.Review.ListDailyReviews(ctx, primary.ListDailyReviewsRequest{
			UserID: caller(ctx),
			From:   in.From,
			To:     in.To,
			Type:   in.Type,
		})
	}),

	mutation("createWeeklyTask", func(ctx context.Context, svc *Services, in *createWeeklyTaskInput) (*primary.WeeklyTask, error) {
		return svc.Planner.CreateWeeklyTask(ctx, primary.CreateWeeklyTaskRequest{
			UserID:        caller(ctx),
			Title:         in.Title,
			Column:        in.Column,
			WeekStartDate: in.WeekStartDate,
			Position:      in.Position,
		})
	}),
	query("getWeeklyTasks", func(ctx context.Context, svc *Services, in *weekInput) ([]*primary.WeeklyTask, error) {
		return svc.Planner.GetWeeklyTasks(ctx, primary.GetWeeklyTasksRequest{
			UserID:        caller(ctx),
			WeekStartDate: in.WeekStartDate,
		})
	}),
	query("getWeeklyBoard", func(ctx context.Context, svc *Services, in *weekInput) (*primary.WeeklyBoard, error) {
		return svc.Planner.GetWeeklyBoard(ctx, primary.GetWeeklyTasksRequest{
			UserID:        caller(ctx),
			WeekStartDate: in.WeekStartDate,
		})
	}),
	mutation("updateWeeklyTask", func(ctx context.Context, svc *Services, in *updateWeeklyTaskInput) (*primary.WeeklyTask, error) {
		return svc.Planner.UpdateWeeklyTask(ctx, primary.UpdateWeeklyTaskRequest{
			ID:            in.ID,
			UserID:        caller(ctx),
			Title:         in.Title,
			Column:        in.Column,
			Position:      in.Position,
			WeekStartDate: in.WeekStartDate,
		})
	}),
	mutation("deleteWeeklyTask", func(ctx context.Context, svc *Services, in *deleteInput) (*primary.DeleteResponse, error) {
		return svc.Planner.DeleteWeeklyTask(ctx, primary.DeleteRequest{ID: *in.ID, UserID: caller(ctx)})
	}),

	mutation("createAutomationTask", func(ctx context.Context, svc *Services, in *createAutomationTaskInput) (*primary.AutomationTask, error) {
		return svc.Automation.CreateAutomationTask(ctx, primary.CreateAutomationTaskRequest{
			UserID:        caller(ctx),
			TaskName:      in.TaskName,
			WorkflowNotes: in.WorkflowNotes,
			Status:        in.Status,
		})
	}),
	query("getAutomationTasks", func(ctx context.Context, svc *Services, in *getAutomationTasksInput) ([]*primary.AutomationTask, error) {
		return svc.Automation.GetAutomationTasks(ctx, primary.GetAutomationTasksRequest{
			UserID: caller(ctx),
			Status: in.Status,
		})
	}),
	mutation("updateAutomationTask", func(ctx context.Context, svc *Services, in *updateAutomationTaskInput) (*primary.AutomationTask, error) {
		return svc.Automation.UpdateAutomationTask(ctx, primary.UpdateAutomationTaskRequest{
			ID:            in.ID,
			UserID:        caller(ctx),
			TaskName:      in.TaskName,
			WorkflowNotes: in.WorkflowNotes.optional(),
			Status:        in.Status,
		})
	}),
	mutation("deleteAutomationTask", func(ctx context.Context, svc *Services, in *deleteInput) (*primary.DeleteResponse, error) {
		return svc.Automation.DeleteAutomationTask(ctx, primary.DeleteRequest{ID: *in.ID, UserID: caller(ctx)})
	}),

	query("getTodayFocusTasks", func(ctx context.Context, svc *Services, _ *noInput) (*primary.FocusTasks, error) {
		return svc.Dashboard.GetTodayFocusTasks(ctx, caller(ctx))
	}),
)

func buildRegistry(procs ...Procedure) map[string]Procedure {
	m := make(map[string]Procedure, len(procs))
	for _, p := range procs {
		if _, dup := m[p.Name]; dup {
			panic("duplicate procedure " + p.Name)
		}
		m[p.Name] = p
	}
	return m
}

// Lookup returns the procedure registered under name.
func Lookup(name string) (Procedure, bool) {
	p, ok := registry[name]
	return p, ok
}

// Procedures lists every registered procedure sorted by name.
func Procedures() []Procedure {
	out := make([]Procedure, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
