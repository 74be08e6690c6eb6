package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"news-ingestor/config"
	"news-ingestor/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefaults() config.SignalConfig {
	return config.SignalConfig{LookbackMinutes: 30, HorizonMinutes: 10}
}

// fakeSignals records the last request and returns a canned signal.
type fakeSignals struct {
	lastSymbol   string
	lastLookback int
	lastHorizon  int
	err          error
}

func (f *fakeSignals) GenerateShortTerm(ctx context.Context, symbol string, lookback, horizon int) (*domain.ShortTermSignal, error) {
	f.lastSymbol = symbol
	f.lastLookback = lookback
	f.lastHorizon = horizon

	if f.err != nil {
		return nil, f.err
	}

	return &domain.ShortTermSignal{
		Symbol:     symbol,
		Signal:     domain.SignalBuy,
		Confidence: 0.42,
		AsOfUTC:    time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

func postSignal(t *testing.T, h *SignalHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/signals/short-term/generate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.HandleGenerate(e.NewContext(req, rec))
	if err != nil {
		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		rec.Code = httpErr.Code
	}

	return rec
}

func TestSignalHandler_HandleGenerate(t *testing.T) {
	t.Run("returns the generated signal", func(t *testing.T) {
		signals := &fakeSignals{}
		h := NewSignalHandler(signals, testDefaults(), testLogger())

		rec := postSignal(t, h, `{"symbol":"aapl","lookback_minutes":20,"horizon_minutes":5}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp domain.ShortTermSignal
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "AAPL", resp.Symbol)
		assert.Equal(t, domain.SignalBuy, resp.Signal)
		assert.InDelta(t, 0.42, resp.Confidence, 1e-9)

		assert.Equal(t, "AAPL", signals.lastSymbol)
		assert.Equal(t, 20, signals.lastLookback)
		assert.Equal(t, 5, signals.lastHorizon)
	})

	t.Run("missing symbol is rejected", func(t *testing.T) {
		h := NewSignalHandler(&fakeSignals{}, testDefaults(), testLogger())

		rec := postSignal(t, h, `{"lookback_minutes":20}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		h := NewSignalHandler(&fakeSignals{}, testDefaults(), testLogger())

		rec := postSignal(t, h, `{"symbol":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("omitted window falls back to defaults", func(t *testing.T) {
		signals := &fakeSignals{}
		h := NewSignalHandler(signals, testDefaults(), testLogger())

		rec := postSignal(t, h, `{"symbol":"MSFT"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 30, signals.lastLookback)
		assert.Equal(t, 10, signals.lastHorizon)
	})

	t.Run("generator failures map to 500", func(t *testing.T) {
		h := NewSignalHandler(&fakeSignals{err: errors.New("prices unavailable")}, testDefaults(), testLogger())

		rec := postSignal(t, h, `{"symbol":"AAPL"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
