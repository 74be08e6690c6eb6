package driver

import (
	"context"
	"fmt"

	"news-ingestor/domain"
	"news-ingestor/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UpsertRawNews inserts a news record or, when a row with the same
// fingerprint already exists, refreshes its descriptive fields. The stored
// id and fingerprint are never touched on a match, so the first-insert
// identity survives re-ingestion. Returns the affected row count (0 or 1).
func UpsertRawNews(ctx context.Context, db *pgxpool.Pool, item *domain.RawNews) (int64, error) {
	if db == nil {
		return 0, fmt.Errorf("database connection is nil")
	}

	query := `
		INSERT INTO raw_news (id, source, title, url, published_at, ingested_at, fingerprint)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (fingerprint) DO UPDATE SET
			source = EXCLUDED.source,
			title = EXCLUDED.title,
			url = EXCLUDED.url,
			published_at = EXCLUDED.published_at,
			ingested_at = EXCLUDED.ingested_at
	`

	tag, err := db.Exec(ctx, query,
		item.ID,
		item.Source,
		item.Title,
		item.URL,
		item.PublishedAt,
		item.IngestedAt,
		item.Fingerprint,
	)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to upsert raw news", "fingerprint", item.Fingerprint, "error", err)
		return 0, err
	}

	logger.Logger.DebugContext(ctx, "raw news upserted", "fingerprint", item.Fingerprint, "rows", tag.RowsAffected())

	return tag.RowsAffected(), nil
}
