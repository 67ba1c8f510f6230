package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cpu-scheduler/api"

	"github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduling http api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				opts.config.Port = port
			}
			if err := opts.config.Validate(); err != nil {
				return err
			}
			logger := opts.logger

			registry := metrics.NewRegistry()
			app := api.NewApp(opts.config, logger, registry)

			errCh := make(chan error, 1)
			go func() {
				addr := fmt.Sprintf(":%d", opts.config.Port)
				logger.Info("Started api service", zap.String("addr", addr))
				errCh <- app.Listen(addr)
			}()

			sigChan := make(chan os.Signal, 2)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigChan:
				logger.Info("shutting down", zap.String("signal", sig.String()))
			}

			if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
				logger.Error("HTTP shutdown error", zap.Error(err))
				return err
			}
			registry.Each(func(name string, _ interface{}) {
				logger.Debug("unregister metric", zap.String("metric", name))
			})
			registry.UnregisterAll()
			logger.Info("Graceful shutdown complete.")
			return nil
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides config)")
	return cmd
}
