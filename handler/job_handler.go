package handler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"news-ingestor/domain"
	"news-ingestor/service"
)

// JobHandler implementation.
type jobHandler struct {
	ingestion service.IngestionService
	logger    *slog.Logger

	// Job control
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	runUTCHour int
	now        func() time.Time
}

// NewJobHandler creates a new job handler. runUTCHour is the wall-clock UTC
// hour at which the daily ingestion run fires.
func NewJobHandler(ingestion service.IngestionService, runUTCHour int, logger *slog.Logger) JobHandler {
	ctx, cancel := context.WithCancel(context.Background())

	return &jobHandler{
		ingestion:  ingestion,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		runUTCHour: runUTCHour,
		now:        time.Now,
	}
}

// NextRunAt returns the next occurrence of hour o'clock UTC strictly after
// now. A run scheduled for the current instant waits a full day.
func NextRunAt(now time.Time, hour int) time.Time {
	utc := now.UTC()
	next := time.Date(utc.Year(), utc.Month(), utc.Day(), hour, 0, 0, 0, time.UTC)

	if !next.After(utc) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

// StartDailyIngestionJob starts the daily ingestion job.
func (h *jobHandler) StartDailyIngestionJob(ctx context.Context) error {
	h.logger.InfoContext(ctx, "starting daily ingestion job", "run_utc_hour", h.runUTCHour)

	h.wg.Add(1)

	go func() {
		defer h.wg.Done()
		h.runDailyLoop()
	}()

	return nil
}

// runDailyLoop runs the daily ingestion loop.
func (h *jobHandler) runDailyLoop() {
	defer func() {
		if r := recover(); r != nil {
			h.logger.ErrorContext(h.ctx, "panic in runDailyLoop", "panic", r)
		}
	}()

	for {
		next := NextRunAt(h.now(), h.runUTCHour)
		wait := next.Sub(h.now())

		h.logger.InfoContext(h.ctx, "next ingestion run scheduled",
			"next_run", next.Format(time.RFC3339), "wait", wait.String())

		timer := time.NewTimer(wait)

		select {
		case <-h.ctx.Done():
			timer.Stop()
			h.logger.InfoContext(h.ctx, "daily ingestion job stopped")

			return
		case <-timer.C:
		}

		h.runIngestion()
	}
}

// runIngestion executes one scheduled run. Failures are logged and the loop
// keeps its cadence.
func (h *jobHandler) runIngestion() {
	count, err := h.ingestion.RunOnce(h.ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}

		if errors.Is(err, domain.ErrRunInProgress) {
			h.logger.WarnContext(h.ctx, "scheduled run skipped, another run in progress")
			return
		}

		h.logger.ErrorContext(h.ctx, "scheduled ingestion run failed", "error", err, "upserted", count)

		return
	}

	h.logger.InfoContext(h.ctx, "scheduled ingestion run completed", "upserted", count)
}

// Stop stops all jobs.
func (h *jobHandler) Stop() error {
	h.logger.InfoContext(h.ctx, "stopping all jobs")
	h.cancel()
	h.wg.Wait()
	h.logger.InfoContext(h.ctx, "all jobs stopped")

	return nil
}
