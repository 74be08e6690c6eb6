package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"news-ingestor/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rampPrices returns n points stepping by delta per minute from base.
type rampPrices struct {
	base  float64
	delta float64
	err   error
}

func (p *rampPrices) GetRecent(ctx context.Context, symbol string, minutes int) ([]domain.PricePoint, error) {
	if p.err != nil {
		return nil, p.err
	}

	now := time.Now().UTC()
	points := make([]domain.PricePoint, 0, minutes)
	for i := 0; i < minutes; i++ {
		points = append(points, domain.PricePoint{
			Timestamp: now.Add(time.Duration(i-minutes) * time.Minute),
			Close:     p.base + p.delta*float64(i),
		})
	}

	return points, nil
}

// shortPrices always returns fewer points than any lookback.
type shortPrices struct{}

func (p *shortPrices) GetRecent(ctx context.Context, symbol string, minutes int) ([]domain.PricePoint, error) {
	return []domain.PricePoint{{Close: 100}}, nil
}

func TestSignalService_GenerateShortTerm(t *testing.T) {
	ctx := context.Background()

	t.Run("rising prices produce a buy", func(t *testing.T) {
		svc := NewSignalService(&rampPrices{base: 100, delta: 0.5}, testSourceLogger())

		sig, err := svc.GenerateShortTerm(ctx, "AAPL", 20, 5)
		require.NoError(t, err)

		assert.Equal(t, "AAPL", sig.Symbol)
		assert.Equal(t, domain.SignalBuy, sig.Signal)
		assert.Greater(t, sig.Confidence, 0.0)
		assert.LessOrEqual(t, sig.Confidence, 0.99)
	})

	t.Run("falling prices produce a sell", func(t *testing.T) {
		svc := NewSignalService(&rampPrices{base: 200, delta: -0.5}, testSourceLogger())

		sig, err := svc.GenerateShortTerm(ctx, "MSFT", 20, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.SignalSell, sig.Signal)
	})

	t.Run("flat prices hold", func(t *testing.T) {
		svc := NewSignalService(&rampPrices{base: 150, delta: 0}, testSourceLogger())

		sig, err := svc.GenerateShortTerm(ctx, "KO", 20, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.SignalHold, sig.Signal)
		assert.Zero(t, sig.Confidence)
	})

	t.Run("insufficient history holds with zero confidence", func(t *testing.T) {
		svc := NewSignalService(&shortPrices{}, testSourceLogger())

		sig, err := svc.GenerateShortTerm(ctx, "TSLA", 30, 10)
		require.NoError(t, err)
		assert.Equal(t, domain.SignalHold, sig.Signal)
		assert.Zero(t, sig.Confidence)
		assert.False(t, sig.AsOfUTC.IsZero())
	})

	t.Run("steep moves cap confidence at 0.99", func(t *testing.T) {
		svc := NewSignalService(&rampPrices{base: 10, delta: 5}, testSourceLogger())

		sig, err := svc.GenerateShortTerm(ctx, "NVDA", 20, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.SignalBuy, sig.Signal)
		assert.InDelta(t, 0.99, sig.Confidence, 1e-9)
	})

	t.Run("price source failures propagate", func(t *testing.T) {
		svc := NewSignalService(&rampPrices{err: errors.New("feed down")}, testSourceLogger())

		_, err := svc.GenerateShortTerm(ctx, "AAPL", 20, 5)
		assert.ErrorContains(t, err, "feed down")
	})
}
