package repository

import (
	"context"
	"math"
	"math/rand"
	"time"

	"news-ingestor/domain"
)

// InMemoryPriceRepository fabricates a gentle sine wave around 100 with a
// little noise, one close per minute. It exists so the signal generator has
// something to chew on without a market data subscription.
type InMemoryPriceRepository struct{}

func NewInMemoryPriceRepository() *InMemoryPriceRepository {
	return &InMemoryPriceRepository{}
}

func (r *InMemoryPriceRepository) GetRecent(ctx context.Context, symbol string, minutes int) ([]domain.PricePoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	points := make([]domain.PricePoint, 0, minutes)

	for i := 0; i < minutes; i++ {
		t := now.Add(time.Duration(-minutes+i+1) * time.Minute)
		base := 100 + math.Sin(float64(i)/6.0)*0.6
		noise := (rand.Float64() - 0.5) * 0.15

		points = append(points, domain.PricePoint{
			Timestamp: t,
			Close:     base + noise,
		})
	}

	return points, nil
}
