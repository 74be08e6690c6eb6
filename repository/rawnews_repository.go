package repository

import (
	"context"
	"fmt"
	"log/slog"

	"news-ingestor/domain"
	"news-ingestor/driver"

	"github.com/jackc/pgx/v5/pgxpool"
)

// rawNewsRepository is the PostgreSQL-backed RawNewsRepository.
type rawNewsRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewRawNewsRepository creates a new raw news repository.
func NewRawNewsRepository(db *pgxpool.Pool, logger *slog.Logger) RawNewsRepository {
	return &rawNewsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *rawNewsRepository) Upsert(ctx context.Context, item *domain.RawNews) (int64, error) {
	rows, err := driver.UpsertRawNews(ctx, r.db, item)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert raw news: %w", err)
	}

	return rows, nil
}
