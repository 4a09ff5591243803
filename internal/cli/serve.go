package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/example/dayboard/internal/adapters/rpc"
	"github.com/example/dayboard/internal/db"
	"github.com/example/dayboard/internal/telemetry"
	"github.com/example/dayboard/internal/version"
	"github.com/example/dayboard/internal/wire"
)

func serveCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tRPC interface for the web UI",
		Long: `Serve every procedure under /trpc/<name> and a liveness probe at /healthz.

Callers identify themselves with the X-User-ID header; requests without it
act as the configured default user, which is created on startup.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := st.cfg
			log := st.log

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := telemetry.Init(ctx, telemetry.Config{
				Enabled:      cfg.Telemetry.Enabled,
				Stdout:       cfg.Telemetry.Stdout,
				OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
				Output:       cmd.ErrOrStderr(),
			}, "dayboard", version.Commit); err != nil {
				return err
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := telemetry.Shutdown(shutdownCtx); err != nil {
					log.Warn().Err(err).Msg("telemetry shutdown failed")
				}
			}()

			database, err := wire.DB()
			if err != nil {
				return err
			}
			if err := db.EnsureUser(ctx, database, cfg.Auth.DefaultUserID, cfg.Auth.DefaultEmail); err != nil {
				return err
			}
			services, err := wire.Default()
			if err != nil {
				return err
			}

			srv, err := rpc.NewServer(services.RPC(), rpc.Options{
				Addr:          cfg.Server.Addr,
				DefaultUserID: cfg.Auth.DefaultUserID,
				CORSOrigins:   cfg.Server.CORSOrigins,
				Logger:        log,
			})
			if err != nil {
				return err
			}

			log.Info().
				Str("db", cfg.Database.Path).
				Str("default_user", cfg.Auth.DefaultUserID).
				Str("version", version.String()).
				Msg("starting dayboard")

			if _, err := services.Health.Check(ctx); err != nil {
				return fmt.Errorf("database not ready: %w", err)
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return srv.Start(gctx)
			})

			if err := g.Wait(); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			log.Info().Msg("shutdown complete")
			return nil
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :2022)")
	cmd.Flags().Bool("telemetry", false, "export traces and metrics")
	return cmd
}
