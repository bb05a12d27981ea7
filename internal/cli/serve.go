package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sjf-simulator/api"
	"sjf-simulator/internal/store"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve simulations over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg

			var history api.HistoryStore
			if cfg.History.Enabled {
				st, err := store.NewSQLiteStore(cfg.History.Path)
				if err != nil {
					return err
				}
				defer st.Close()
				if err := st.Migrate(cmd.Context()); err != nil {
					return fmt.Errorf("migrate history: %w", err)
				}
				log.WithField("path", cfg.History.Path).Info("simulation history enabled")
				history = st
			}

			app := api.NewApp(cfg, api.NewSchedulerHandlerImpl(cfg, history))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.WithField("addr", cfg.Addr()).Info("server starting")
				errCh <- app.Listen(cfg.Addr())
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("shutting down")
			if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			log.Info("server stopped")
			return nil
		},
	}
}
