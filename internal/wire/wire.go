// Package wire provides dependency injection for the dayboard application.
// It builds services from a database handle, and exposes lazily initialised
// singletons for the CLI.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	cliadapter "github.com/example/dayboard/internal/adapters/cli"
	"github.com/example/dayboard/internal/adapters/rpc"
	"github.com/example/dayboard/internal/adapters/sqlite"
	"github.com/example/dayboard/internal/app"
	"github.com/example/dayboard/internal/db"
	"github.com/example/dayboard/internal/ports/primary"
)

// Services holds every primary port implementation.
type Services struct {
	Inbox      primary.InboxService
	Review     primary.ReviewService
	Planner    primary.PlannerService
	Automation primary.AutomationService
	Dashboard  primary.DashboardService
	User       primary.UserService
	Health     primary.HealthService
}

// NewServices creates repository adapters over database and the services on top.
func NewServices(database *sql.DB, opts ...sqlite.Option) *Services {
	// Create repository adapters (secondary ports)
	inboxRepo := sqlite.NewInboxItemRepository(database, opts...)
	reviewRepo := sqlite.NewDailyReviewRepository(database, opts...)
	taskRepo := sqlite.NewWeeklyTaskRepository(database, opts...)
	automationRepo := sqlite.NewAutomationTaskRepository(database, opts...)
	userRepo := sqlite.NewUserRepository(database, opts...)

	// Create services (primary ports implementation)
	return &Services{
		Inbox:      app.NewInboxService(inboxRepo),
		Review:     app.NewReviewService(reviewRepo),
		Planner:    app.NewPlannerService(taskRepo),
		Automation: app.NewAutomationService(automationRepo),
		Dashboard:  app.NewDashboardService(inboxRepo),
		User:       app.NewUserService(userRepo),
		Health:     app.NewHealthService(sqlite.NewHealthProbe(database)),
	}
}

// RPC returns the procedure dispatch table backed by these services.
func (s *Services) RPC() *rpc.Services {
	return &rpc.Services{
		Inbox:      s.Inbox,
		Review:     s.Review,
		Planner:    s.Planner,
		Automation: s.Automation,
		Dashboard:  s.Dashboard,
		User:       s.User,
		Health:     s.Health,
	}
}

var (
	dbPath   string
	database *sql.DB
	services *Services
	initErr  error
	once     sync.Once
	mu       sync.Mutex
)

// SetDatabasePath selects the database the singletons open. It must be
// called before the first singleton accessor.
func SetDatabasePath(path string) {
	dbPath = path
}

// Default returns the singleton services, opening the database on first use.
func Default() (*Services, error) {
	mu.Lock()
	defer mu.Unlock()
	once.Do(initServices)
	return services, initErr
}

// DB returns the singleton database handle.
func DB() (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()
	once.Do(initServices)
	return database, initErr
}

// Close releases the singleton database handle, if opened. The next
// accessor opens it again.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if database == nil {
		return nil
	}
	err := database.Close()
	database, services, initErr = nil, nil, nil
	once = sync.Once{}
	return err
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	path := dbPath
	if path == "" {
		var err error
		if path, err = db.DefaultPath(); err != nil {
			initErr = err
			return
		}
	}

	database, initErr = db.Open(context.Background(), path)
	if initErr != nil {
		initErr = fmt.Errorf("failed to initialize database: %w", initErr)
		return
	}
	services = NewServices(database)
}

// Adapters bundles the CLI adapters writing to one output.
type Adapters struct {
	Inbox      *cliadapter.InboxAdapter
	Review     *cliadapter.ReviewAdapter
	Planner    *cliadapter.PlannerAdapter
	Automation *cliadapter.AutomationAdapter
	Dashboard  *cliadapter.DashboardAdapter
	User       *cliadapter.UserAdapter
}

// CLIAdapters returns adapters writing to stdout.
// Each call creates new adapters (adapters are stateless translators).
func CLIAdapters() (*Adapters, error) {
	return CLIAdaptersWithOutput(os.Stdout)
}

// CLIAdaptersWithOutput returns adapters writing to the given output.
func CLIAdaptersWithOutput(out io.Writer) (*Adapters, error) {
	svc, err := Default()
	if err != nil {
		return nil, err
	}
	return NewAdapters(svc, out), nil
}

// NewAdapters builds CLI adapters over explicit services.
func NewAdapters(svc *Services, out io.Writer) *Adapters {
	return &Adapters{
		Inbox:      cliadapter.NewInboxAdapter(svc.Inbox, out),
		Review:     cliadapter.NewReviewAdapter(svc.Review, out),
		Planner:    cliadapter.NewPlannerAdapter(svc.Planner, out),
		Automation: cliadapter.NewAutomationAdapter(svc.Automation, out),
		Dashboard:  cliadapter.NewDashboardAdapter(svc.Dashboard, out),
		User:       cliadapter.NewUserAdapter(svc.User, out),
	}
}
