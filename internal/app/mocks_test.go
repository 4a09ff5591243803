package app

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/example/dayboard/internal/apperr"
	"github.com/example/dayboard/internal/models"
	"github.com/example/dayboard/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockClock hands out strictly increasing instants.
type mockClock struct {
	cur time.Time
}

func newMockClock() *mockClock {
	return &mockClock{cur: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *mockClock) now() time.Time {
	c.cur = c.cur.Add(time.Second)
	return c.cur
}

var errStoreDown = errors.New("database is locked")

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

// mockInboxRepository implements secondary.InboxItemRepository for testing.
type mockInboxRepository struct {
	items     map[int64]*secondary.InboxItemRecord
	nextID    int64
	clock     *mockClock
	createErr error
	listErr   error
	lastList  secondary.InboxItemFilters
}

func newMockInboxRepository() *mockInboxRepository {
	return &mockInboxRepository{
		items: make(map[int64]*secondary.InboxItemRecord),
		clock: newMockClock(),
	}
}

func (m *mockInboxRepository) Create(ctx context.Context, item *secondary.InboxItemRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	now := m.clock.now()
	stored := *item
	stored.ID = m.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.items[stored.ID] = &stored
	item.ID = stored.ID
	return nil
}

func (m *mockInboxRepository) GetByID(ctx context.Context, id int64, userID string) (*secondary.InboxItemRecord, error) {
	item, ok := m.items[id]
	if !ok || item.UserID != userID {
		return nil, apperr.NotFound("inbox item", id)
	}
	c := *item
	return &c, nil
}

func (m *mockInboxRepository) List(ctx context.Context, filters secondary.InboxItemFilters) ([]*secondary.InboxItemRecord, error) {
	m.lastList = filters
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := []*secondary.InboxItemRecord{}
	for _, item := range m.items {
		if item.UserID != filters.UserID {
			continue
		}
		if filters.Processed != nil && item.IsProcessed != *filters.Processed {
			continue
		}
		if len(filters.Tags) > 0 && !containsTag(filters.Tags, item.Tag) {
			continue
		}
		c := *item
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockInboxRepository) Update(ctx context.Context, id int64, userID string, patch secondary.InboxItemPatch) error {
	item, ok := m.items[id]
	if !ok || item.UserID != userID {
		return apperr.NotFound("inbox item", id)
	}
	if patch.Content != nil {
		item.Content = *patch.Content
	}
	if patch.Tag != nil {
		item.Tag = *patch.Tag
	}
	if patch.IsProcessed != nil {
		item.IsProcessed = *patch.IsProcessed
	}
	item.UpdatedAt = m.clock.now()
	return nil
}

func (m *mockInboxRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	item, ok := m.items[id]
	if !ok || item.UserID != userID {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func containsTag(tags []models.Tag, tag models.Tag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// mockReviewRepository implements secondary.DailyReviewRepository for testing.
type mockReviewRepository struct {
	reviews  map[int64]*secondary.DailyReviewRecord
	nextID   int64
	clock    *mockClock
	lastList secondary.DailyReviewFilters
}

func newMockReviewRepository() *mockReviewRepository {
	return &mockReviewRepository{
		reviews: make(map[int64]*secondary.DailyReviewRecord),
		clock:   newMockClock(),
	}
}

func (m *mockReviewRepository) Create(ctx context.Context, review *secondary.DailyReviewRecord) error {
	m.nextID++
	now := m.clock.now()
	stored := *review
	stored.ID = m.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.reviews[stored.ID] = &stored
	review.ID = stored.ID
	return nil
}

func (m *mockReviewRepository) GetByID(ctx context.Context, id int64, userID string) (*secondary.DailyReviewRecord, error) {
	review, ok := m.reviews[id]
	if !ok || review.UserID != userID {
		return nil, apperr.NotFound("daily review", id)
	}
	c := *review
	return &c, nil
}

func (m *mockReviewRepository) List(ctx context.Context, filters secondary.DailyReviewFilters) ([]*secondary.DailyReviewRecord, error) {
	m.lastList = filters
	result := []*secondary.DailyReviewRecord{}
	for _, r := range m.reviews {
		if r.UserID != filters.UserID {
			continue
		}
		if filters.ReviewDate != "" && r.ReviewDate != filters.ReviewDate {
			continue
		}
		if filters.Type != "" && r.Type != filters.Type {
			continue
		}
		if filters.From != "" && r.ReviewDate < filters.From {
			continue
		}
		if filters.To != "" && r.ReviewDate > filters.To {
			continue
		}
		c := *r
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockReviewRepository) Update(ctx context.Context, id int64, userID string, patch secondary.DailyReviewPatch) error {
	r, ok := m.reviews[id]
	if !ok || r.UserID != userID {
		return apperr.NotFound("daily review", id)
	}
	apply := func(dst **string, v secondary.NullableText) {
		if v.Set {
			*dst = v.Value
		}
	}
	apply(&r.TodaysOneThing, patch.TodaysOneThing)
	apply(&r.TopThreeTasks, patch.TopThreeTasks)
	apply(&r.Gratitude, patch.Gratitude)
	apply(&r.Accomplished, patch.Accomplished)
	apply(&r.Distractions, patch.Distractions)
	apply(&r.TomorrowsShift, patch.TomorrowsShift)
	r.UpdatedAt = m.clock.now()
	return nil
}

func (m *mockReviewRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	r, ok := m.reviews[id]
	if !ok || r.UserID != userID {
		return false, nil
	}
	delete(m.reviews, id)
	return true, nil
}

// mockWeeklyTaskRepository implements secondary.WeeklyTaskRepository for testing.
type mockWeeklyTaskRepository struct {
	tasks     map[int64]*secondary.WeeklyTaskRecord
	nextID    int64
	clock     *mockClock
	maxErr    error
	deleteErr error
	maxCalls  int
}

func newMockWeeklyTaskRepository() *mockWeeklyTaskRepository {
	return &mockWeeklyTaskRepository{
		tasks: make(map[int64]*secondary.WeeklyTaskRecord),
		clock: newMockClock(),
	}
}

func (m *mockWeeklyTaskRepository) Create(ctx context.Context, task *secondary.WeeklyTaskRecord) error {
	m.nextID++
	now := m.clock.now()
	stored := *task
	stored.ID = m.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.tasks[stored.ID] = &stored
	task.ID = stored.ID
	return nil
}

func (m *mockWeeklyTaskRepository) GetByID(ctx context.Context, id int64, userID string) (*secondary.WeeklyTaskRecord, error) {
	task, ok := m.tasks[id]
	if !ok || task.UserID != userID {
		return nil, apperr.NotFound("weekly task", id)
	}
	c := *task
	return &c, nil
}

func (m *mockWeeklyTaskRepository) List(ctx context.Context, filters secondary.WeeklyTaskFilters) ([]*secondary.WeeklyTaskRecord, error) {
	result := []*secondary.WeeklyTaskRecord{}
	for _, t := range m.tasks {
		if t.UserID != filters.UserID || t.WeekStartDate != filters.WeekStartDate {
			continue
		}
		if filters.Column != "" && t.Column != filters.Column {
			continue
		}
		c := *t
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Position != result[j].Position {
			return result[i].Position < result[j].Position
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *mockWeeklyTaskRepository) MaxPosition(ctx context.Context, userID string, column models.Column, weekStartDate string) (int, bool, error) {
	m.maxCalls++
	if m.maxErr != nil {
		return 0, false, m.maxErr
	}
	max, found := 0, false
	for _, t := range m.tasks {
		if t.UserID != userID || t.Column != column || t.WeekStartDate != weekStartDate {
			continue
		}
		if !found || t.Position > max {
			max = t.Position
		}
		found = true
	}
	return max, found, nil
}

func (m *mockWeeklyTaskRepository) Update(ctx context.Context, id int64, userID string, patch secondary.WeeklyTaskPatch) error {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return apperr.NotFound("weekly task", id)
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Column != nil {
		t.Column = *patch.Column
	}
	if patch.Position != nil {
		t.Position = *patch.Position
	}
	if patch.WeekStartDate != nil {
		t.WeekStartDate = *patch.WeekStartDate
	}
	t.UpdatedAt = m.clock.now()
	return nil
}

func (m *mockWeeklyTaskRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return false, nil
	}
	delete(m.tasks, id)
	return true, nil
}

// mockAutomationRepository implements secondary.AutomationTaskRepository for testing.
type mockAutomationRepository struct {
	tasks  map[int64]*secondary.AutomationTaskRecord
	nextID int64
	clock  *mockClock
}

func newMockAutomationRepository() *mockAutomationRepository {
	return &mockAutomationRepository{
		tasks: make(map[int64]*secondary.AutomationTaskRecord),
		clock: newMockClock(),
	}
}

func (m *mockAutomationRepository) Create(ctx context.Context, task *secondary.AutomationTaskRecord) error {
	m.nextID++
	now := m.clock.now()
	stored := *task
	stored.ID = m.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.tasks[stored.ID] = &stored
	task.ID = stored.ID
	return nil
}

func (m *mockAutomationRepository) GetByID(ctx context.Context, id int64, userID string) (*secondary.AutomationTaskRecord, error) {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return nil, apperr.NotFound("automation task", id)
	}
	c := *t
	return &c, nil
}

func (m *mockAutomationRepository) List(ctx context.Context, filters secondary.AutomationTaskFilters) ([]*secondary.AutomationTaskRecord, error) {
	result := []*secondary.AutomationTaskRecord{}
	for _, t := range m.tasks {
		if t.UserID != filters.UserID {
			continue
		}
		if filters.Status != "" && t.Status != filters.Status {
			continue
		}
		c := *t
		result = append(result, &c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockAutomationRepository) Update(ctx context.Context, id int64, userID string, patch secondary.AutomationTaskPatch) error {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return apperr.NotFound("automation task", id)
	}
	if patch.TaskName != nil {
		t.TaskName = *patch.TaskName
	}
	if patch.WorkflowNotes.Set {
		t.WorkflowNotes = patch.WorkflowNotes.Value
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	t.UpdatedAt = m.clock.now()
	return nil
}

func (m *mockAutomationRepository) Delete(ctx context.Context, id int64, userID string) (bool, error) {
	t, ok := m.tasks[id]
	if !ok || t.UserID != userID {
		return false, nil
	}
	delete(m.tasks, id)
	return true, nil
}

// mockUserRepository implements secondary.UserRepository for testing.
type mockUserRepository struct {
	users   map[string]*secondary.UserRecord
	order   []string
	clock   *mockClock
	getErr  error
	listErr error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users: make(map[string]*secondary.UserRecord),
		clock: newMockClock(),
	}
}

func (m *mockUserRepository) Create(ctx context.Context, user *secondary.UserRecord) error {
	if _, ok := m.users[user.ID]; ok {
		return apperr.Conflict("user %s already exists", user.ID)
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperr.Conflict("email %s already exists", user.Email)
		}
	}
	now := m.clock.now()
	stored := *user
	stored.CreatedAt = now
	stored.UpdatedAt = now
	m.users[user.ID] = &stored
	m.order = append(m.order, user.ID)
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*secondary.UserRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	u, ok := m.users[id]
	if !ok {
		return nil, apperr.NotFound("user", id)
	}
	c := *u
	return &c, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*secondary.UserRecord, error) {
	for _, u := range m.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, apperr.NotFound("user", email)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*secondary.UserRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]*secondary.UserRecord, 0, len(m.order))
	for _, id := range m.order {
		c := *m.users[id]
		result = append(result, &c)
	}
	return result, nil
}

// mockHealthProbe implements secondary.HealthProbe for testing.
type mockHealthProbe struct {
	err error
}

func (m *mockHealthProbe) Ping(ctx context.Context) error { return m.err }

var (
	_ secondary.InboxItemRepository      = (*mockInboxRepository)(nil)
	_ secondary.DailyReviewRepository    = (*mockReviewRepository)(nil)
	_ secondary.WeeklyTaskRepository     = (*mockWeeklyTaskRepository)(nil)
	_ secondary.AutomationTaskRepository = (*mockAutomationRepository)(nil)
	_ secondary.UserRepository           = (*mockUserRepository)(nil)
	_ secondary.HealthProbe              = (*mockHealthProbe)(nil)
)
