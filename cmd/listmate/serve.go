package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"listmate/internal/app"
	"listmate/internal/handler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return err
		}
		defer a.Log.Sync()

		router := a.Router(handler.VersionInfo{
			Version:   Version,
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		})

		addr := a.Addr()
		a.Log.Info("server listening", "addr", addr)

		errCh := make(chan error, 1)
		go func() {
			errCh <- router.Run(addr)
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-quit:
			a.Log.Info("shutting down")
			return nil
		}
	},
}
