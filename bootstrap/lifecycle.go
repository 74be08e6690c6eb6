package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	logger "news-ingestor/utils/logger"
)

// Run is the main application entry point. It initializes all dependencies,
// starts the server and the daily ingestion job, then waits for a shutdown
// signal.
func Run(ctx context.Context) error {
	log := logger.Init()

	log.Info("starting news ingestor service")

	deps, cleanup, err := BuildDependencies(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()

	httpServer := NewHTTPServer(deps)
	StartHTTPServer(httpServer, deps.Config.Server.Port, log)

	if err := deps.JobHandler.StartDailyIngestionJob(ctx); err != nil {
		return fmt.Errorf("failed to start daily ingestion job: %w", err)
	}

	log.Info("news ingestor service started successfully",
		"port", deps.Config.Server.Port,
		"feed_count", len(deps.Config.Ingestion.Feeds),
		"daily_run_utc_hour", deps.Config.Ingestion.DailyRunUTCHour)

	waitForShutdown(httpServer, deps, log)

	return nil
}

func waitForShutdown(httpServer interface{ Shutdown(context.Context) error }, deps *Dependencies, log *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down news ingestor service")

	timeout := deps.Config.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("error shutting down HTTP server", "error", err)
	}

	if err := deps.JobHandler.Stop(); err != nil {
		log.Error("error stopping job handler", "error", err)
	}

	log.Info("news ingestor service stopped")
}
