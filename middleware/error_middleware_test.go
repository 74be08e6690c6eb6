// ABOUTME: Tests for centralized error handling middleware
// ABOUTME: Verifies error responses are consistent and hide internal details
package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"

	"news-ingestor/domain"
)

func testMiddlewareLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCustomHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		checkMessage   func(t *testing.T, msg string)
	}{
		{
			name:           "run in progress maps to conflict",
			err:            fmt.Errorf("run rejected: %w", domain.ErrRunInProgress),
			expectedStatus: http.StatusConflict,
			expectedCode:   "RUN_IN_PROGRESS",
		},
		{
			name:           "client error shows message",
			err:            echo.NewHTTPError(http.StatusBadRequest, "symbol is required"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "HTTP_ERROR",
			checkMessage: func(t *testing.T, msg string) {
				if msg != "symbol is required" {
					t.Errorf("expected message 'symbol is required', got %q", msg)
				}
			},
		},
		{
			name:           "server error hides message",
			err:            echo.NewHTTPError(http.StatusInternalServerError, "pgx: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "HTTP_ERROR",
			checkMessage: func(t *testing.T, msg string) {
				if msg == "pgx: connection refused" {
					t.Error("server error details should not be exposed")
				}
			},
		},
		{
			name:           "unknown error hides details",
			err:            errors.New("panic: nil pointer"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
			checkMessage: func(t *testing.T, msg string) {
				if msg == "panic: nil pointer" {
					t.Error("internal error message should not be exposed")
				}
				if msg == "" {
					t.Error("message should not be empty")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = CustomHTTPErrorHandler(testMiddlewareLogger())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			e.HTTPErrorHandler(tt.err, c)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}

			var resp ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Error.Code != tt.expectedCode {
				t.Errorf("expected code %q, got %q", tt.expectedCode, resp.Error.Code)
			}

			if tt.checkMessage != nil {
				tt.checkMessage(t, resp.Error.Message)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	t.Run("generates an ID when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		if rec.Header().Get(echo.HeaderXRequestID) == "" {
			t.Error("expected a generated request ID")
		}
	})

	t.Run("echoes a caller-supplied ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		if got := rec.Header().Get(echo.HeaderXRequestID); got != "abc-123" {
			t.Errorf("expected request ID to round-trip, got %q", got)
		}
	})
}
