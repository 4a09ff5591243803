// Package cli implements the dayboard command tree.
package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/example/dayboard/internal/config"
	"github.com/example/dayboard/internal/logging"
	"github.com/example/dayboard/internal/models"
	"github.com/example/dayboard/internal/version"
	"github.com/example/dayboard/internal/wire"
)

// state is resolved once per invocation by the root pre-run hook.
type state struct {
	cfg *config.Config
	log zerolog.Logger
}

// flagKeys maps config keys to the flags that override them. Flags are
// looked up on the executing command, so local flags like serve's --addr bind too.
var flagKeys = map[string]string{
	"database.path":        "db",
	"auth.default_user_id": "user",
	"log.level":            "log-level",
	"log.format":           "log-format",
	"server.addr":          "addr",
	"telemetry.enabled":    "telemetry",
}

// NewRootCmd builds the dayboard command tree.
func NewRootCmd() *cobra.Command {
	st := &state{}
	var configFile string

	root := &cobra.Command{
		Use:     "dayboard",
		Short:   "Personal productivity dashboard",
		Version: version.String(),
		Long: `dayboard keeps an inbox, AM/PM daily reviews, a weekly kanban board and
an automation tracker in a local SQLite database, and serves them to the
web UI over a tRPC-compatible HTTP interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			for key, name := range flagKeys {
				if f := cmd.Flags().Lookup(name); f != nil {
					if err := v.BindPFlag(key, f); err != nil {
						return fmt.Errorf("failed to bind --%s: %w", name, err)
					}
				}
			}

			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{
				Level:  cfg.Log.Level,
				Format: logging.Format(cfg.Log.Format),
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			st.cfg = cfg
			st.log = logger
			wire.SetDatabasePath(cfg.Database.Path)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return wire.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default: ./config.yaml or ~/.dayboard/config.yaml)")
	pf.String("db", "", "SQLite database path")
	pf.String("user", "", "act as this user id")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (json, console)")

	root.AddCommand(
		initCmd(st),
		configCmd(),
		serveCmd(st),
		inboxCmd(st),
		focusCmd(st),
		weekCmd(st),
		reviewCmd(st),
		autoCmd(st),
		userCmd(st),
		callCmd(st),
		proceduresCmd(),
	)
	return root
}

func (s *state) userID() string {
	return s.cfg.Auth.DefaultUserID
}

func (s *state) adapters(cmd *cobra.Command) (*wire.Adapters, error) {
	return wire.CLIAdaptersWithOutput(cmd.OutOrStdout())
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}

func today() string {
	return models.FormatDate(time.Now())
}

func thisWeek() string {
	return models.WeekStart(time.Now())
}
