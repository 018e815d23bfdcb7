package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"listmate/internal/app"
	"listmate/internal/handler"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.Log.Sync()

	a.Log.Info("listmate starting",
		"version", Version,
		"build_time", BuildTime,
		"git_commit", GitCommit)

	router := a.Router(handler.VersionInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})

	addr := a.Addr()
	a.Log.Info("server listening", "addr", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			a.Log.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.Log.Info("shutting down")
}
