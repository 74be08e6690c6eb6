package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"news-ingestor/config"
	"news-ingestor/service"

	"github.com/labstack/echo/v4"
)

// SignalRequest represents the request body for signal generation.
type SignalRequest struct {
	Symbol          string `json:"symbol"`
	LookbackMinutes int    `json:"lookback_minutes"`
	HorizonMinutes  int    `json:"horizon_minutes"`
}

// SignalHandler handles on-demand short-term signal requests. Requests may
// omit the window; the configured defaults fill it in.
type SignalHandler struct {
	signals  service.SignalService
	defaults config.SignalConfig
	logger   *slog.Logger
}

// NewSignalHandler creates a new signal handler.
func NewSignalHandler(signals service.SignalService, defaults config.SignalConfig, logger *slog.Logger) *SignalHandler {
	return &SignalHandler{
		signals:  signals,
		defaults: defaults,
		logger:   logger,
	}
}

// HandleGenerate handles POST /api/v1/signals/short-term/generate requests.
func (h *SignalHandler) HandleGenerate(c echo.Context) error {
	var req SignalRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind signal request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	req.Symbol = strings.ToUpper(strings.TrimSpace(req.Symbol))
	if req.Symbol == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "symbol is required")
	}

	if req.LookbackMinutes <= 0 {
		req.LookbackMinutes = h.defaults.LookbackMinutes
	}

	if req.HorizonMinutes <= 0 {
		req.HorizonMinutes = h.defaults.HorizonMinutes
	}

	signal, err := h.signals.GenerateShortTerm(c.Request().Context(), req.Symbol, req.LookbackMinutes, req.HorizonMinutes)
	if err != nil {
		h.logger.Error("signal generation failed", "symbol", req.Symbol, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate signal")
	}

	return c.JSON(http.StatusOK, signal)
}
