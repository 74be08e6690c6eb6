package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"news-ingestor/domain"
	"news-ingestor/repository"
)

// signalService produces a toy short-term momentum signal: the average of
// the newer half of the lookback window against the older half.
type signalService struct {
	prices repository.PriceRepository
	logger *slog.Logger
}

// NewSignalService creates the momentum signal generator.
func NewSignalService(prices repository.PriceRepository, logger *slog.Logger) SignalService {
	return &signalService{
		prices: prices,
		logger: logger,
	}
}

func (s *signalService) GenerateShortTerm(ctx context.Context, symbol string, lookback, horizon int) (*domain.ShortTermSignal, error) {
	minutes := lookback + horizon
	if minutes < 10 {
		minutes = 10
	}

	points, err := s.prices.GetRecent(ctx, symbol, minutes)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent prices: %w", err)
	}

	if len(points) < lookback {
		return &domain.ShortTermSignal{
			Symbol:     symbol,
			Signal:     domain.SignalHold,
			Confidence: 0,
			AsOfUTC:    time.Now().UTC(),
		}, nil
	}

	window := points[len(points)-lookback:]
	half := lookback / 2

	avgOld := meanClose(window[:half])
	avgNew := meanClose(window[half:])

	var rel float64
	if avgOld != 0 {
		rel = (avgNew - avgOld) / avgOld
	}

	signal := domain.SignalHold
	if math.Abs(rel) >= 0.0005 {
		if rel > 0 {
			signal = domain.SignalBuy
		} else {
			signal = domain.SignalSell
		}
	}

	confidence := math.Min(0.99, math.Abs(rel)*500)

	s.logger.InfoContext(ctx, "short-term signal generated",
		"symbol", symbol, "signal", signal, "confidence", confidence)

	return &domain.ShortTermSignal{
		Symbol:     symbol,
		Signal:     signal,
		Confidence: confidence,
		AsOfUTC:    time.Now().UTC(),
	}, nil
}

func meanClose(points []domain.PricePoint) float64 {
	if len(points) == 0 {
		return 0
	}

	var sum float64
	for _, p := range points {
		sum += p.Close
	}

	return sum / float64(len(points))
}
