package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conectone/platform/internal/api"
	"github.com/conectone/platform/internal/scheduler"
	"github.com/conectone/platform/internal/storage"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long:  `Start the HTTP API server with the background housekeeping scheduler`,
	RunE:  runServer,
}

var noScheduler bool

func init() {
	serverCmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "disable the housekeeping scheduler")
}

func runServer(cmd *cobra.Command, args []string) error {
	store, err := storage.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	if err := store.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	server := api.New(cfg, store)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled && !noScheduler {
		sched = scheduler.New(store, cfg.Scheduler)
		sched.Start()
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		fmt.Println("\nShutdown signal received")

		if sched != nil {
			sched.Stop()
		}

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil

	case err := <-errChan:
		if sched != nil {
			sched.Stop()
		}
		return fmt.Errorf("server error: %w", err)
	}
}
