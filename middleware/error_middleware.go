// ABOUTME: Centralized error handling middleware for Echo framework
// ABOUTME: Converts errors to consistent HTTP responses, hides internal details
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-ingestor/domain"
)

// ErrorResponse is the JSON body sent for every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CustomHTTPErrorHandler creates the centralized HTTP error handler for Echo.
// Known domain errors map to specific statuses; everything else becomes a
// generic 500 so internal details never reach the client.
func CustomHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		// Don't write to already committed responses
		if c.Response().Committed {
			return
		}

		requestID := c.Response().Header().Get(echo.HeaderXRequestID)

		var (
			status   int
			response ErrorResponse
		)

		var httpErr *echo.HTTPError

		switch {
		case errors.Is(err, domain.ErrRunInProgress):
			status = http.StatusConflict
			response = ErrorResponse{Error: ErrorDetail{
				Code:    "RUN_IN_PROGRESS",
				Message: "an ingestion run is already in progress",
			}}

			logger.Warn("concurrent run rejected", "request_id", requestID)

		case errors.As(err, &httpErr):
			status = httpErr.Code

			msg := "An error occurred"
			if m, ok := httpErr.Message.(string); ok {
				msg = m
			}

			// For 5xx errors, hide the actual message
			if status >= 500 {
				msg = "An unexpected error occurred. Please try again later."
			}

			response = ErrorResponse{Error: ErrorDetail{
				Code:    "HTTP_ERROR",
				Message: msg,
			}}

			logger.Warn("HTTP error",
				"request_id", requestID,
				"status", status,
				"message", httpErr.Message,
			)

		default:
			status = http.StatusInternalServerError
			response = ErrorResponse{Error: ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: "An unexpected error occurred. Please try again later.",
			}}

			// Log the actual error for debugging (never expose to client)
			logger.Error("unhandled error",
				"request_id", requestID,
				"error", err.Error(),
			)
		}

		if err := c.JSON(status, response); err != nil {
			logger.Error("failed to send error response",
				"request_id", requestID,
				"error", err,
			)
		}
	}
}
