package service

import (
	"context"

	"news-ingestor/domain"
)

// FeedFetcher performs one bounded, watchdog-guarded fetch of a feed URL.
// A nil body with a nil error is a soft skip (suspicious content type).
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) ([]byte, error)
}

// FeedParser maps a raw syndication document to canonical news records.
type FeedParser interface {
	Parse(body []byte, feedURL string) ([]domain.RawNews, error)
}

// NewsSource streams news records across all configured feeds. The channel
// is closed when all feeds have been visited or the context is done;
// per-feed failures are absorbed and logged, never surfaced on the channel.
type NewsSource interface {
	Stream(ctx context.Context) <-chan domain.RawNews
}

// IngestionService runs one full ingestion pass: stream records from the
// news source, upsert each into the store, and report the upserted count.
type IngestionService interface {
	RunOnce(ctx context.Context) (int, error)
}

// SignalService generates short-term momentum signals from recent prices.
type SignalService interface {
	GenerateShortTerm(ctx context.Context, symbol string, lookback, horizon int) (*domain.ShortTermSignal, error)
}
