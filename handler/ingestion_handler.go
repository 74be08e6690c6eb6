package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"news-ingestor/domain"
	"news-ingestor/service"

	"github.com/labstack/echo/v4"
)

// RunResponse represents the response for a manually triggered run.
type RunResponse struct {
	Status string `json:"status"`
}

// IngestionHealthResponse reports the configured feed surface.
type IngestionHealthResponse struct {
	Status    string   `json:"status"`
	FeedCount int      `json:"feed_count"`
	Feeds     []string `json:"feeds"`
}

// IngestionHandler exposes the ingestion pipeline over HTTP.
type IngestionHandler struct {
	ingestion service.IngestionService
	feeds     []string
	logger    *slog.Logger
}

// NewIngestionHandler creates a new ingestion handler.
func NewIngestionHandler(ingestion service.IngestionService, feeds []string, logger *slog.Logger) *IngestionHandler {
	return &IngestionHandler{
		ingestion: ingestion,
		feeds:     feeds,
		logger:    logger,
	}
}

// HandleRun handles POST /api/v1/ingestion/news/run requests. The run is
// kicked off in the background and the request returns immediately.
func (h *IngestionHandler) HandleRun(c echo.Context) error {
	h.logger.Info("manual ingestion run requested", "remote_ip", c.RealIP())

	go func() {
		count, err := h.ingestion.RunOnce(context.Background())
		if err != nil {
			if errors.Is(err, domain.ErrRunInProgress) {
				h.logger.Warn("manual run skipped, another run in progress")
				return
			}

			h.logger.Error("manual ingestion run failed", "error", err, "upserted", count)

			return
		}

		h.logger.Info("manual ingestion run completed", "upserted", count)
	}()

	return c.JSON(http.StatusAccepted, RunResponse{Status: "accepted"})
}

// HandleHealth handles GET /api/v1/health/ingestion requests.
func (h *IngestionHandler) HandleHealth(c echo.Context) error {
	feeds := h.feeds
	if feeds == nil {
		feeds = []string{}
	}

	return c.JSON(http.StatusOK, IngestionHealthResponse{
		Status:    "healthy",
		FeedCount: len(feeds),
		Feeds:     feeds,
	})
}
