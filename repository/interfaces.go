package repository

import (
	"context"

	"news-ingestor/domain"
)

// RawNewsRepository handles persistence of raw news records. Upsert is the
// sole dedup authority in the system: records match by fingerprint, and the
// ingestion pipeline never dedups in memory across feeds or runs.
type RawNewsRepository interface {
	// Upsert inserts the record, or refreshes the descriptive fields of
	// the row with the same fingerprint. Returns the affected row count
	// (0 or 1).
	Upsert(ctx context.Context, item *domain.RawNews) (int64, error)
}

// PriceRepository provides recent close prices for the signal generator.
type PriceRepository interface {
	GetRecent(ctx context.Context, symbol string, minutes int) ([]domain.PricePoint, error)
}
