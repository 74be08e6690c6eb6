package service

import (
	"context"
	"fmt"
	"log/slog"

	"news-ingestor/domain"
	"news-ingestor/repository"

	"golang.org/x/sync/semaphore"
)

// ingestionService orchestrates one ingestion pass: it consumes the news
// source stream and upserts every record. Feeds run sequentially inside
// the source; records are upserted in document order. Store errors are not
// absorbed here — they cancel the stream and propagate to the caller.
type ingestionService struct {
	source NewsSource
	store  repository.RawNewsRepository
	logger *slog.Logger
	gate   *semaphore.Weighted
}

// NewIngestionService creates the ingestion orchestrator. A size-1 gate
// keeps the daily run and on-demand triggers from racing each other over
// the same feeds and store rows.
func NewIngestionService(source NewsSource, store repository.RawNewsRepository, logger *slog.Logger) IngestionService {
	return &ingestionService{
		source: source,
		store:  store,
		logger: logger,
		gate:   semaphore.NewWeighted(1),
	}
}

func (s *ingestionService) RunOnce(ctx context.Context) (int, error) {
	if !s.gate.TryAcquire(1) {
		s.logger.WarnContext(ctx, "ingestion run skipped", "reason", "run already in progress")
		return 0, domain.ErrRunInProgress
	}
	defer s.gate.Release(1)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	count := 0

	for record := range s.source.Stream(runCtx) {
		if _, err := s.store.Upsert(runCtx, &record); err != nil {
			cancel()
			return count, fmt.Errorf("failed to upsert news record: %w", err)
		}

		count++
	}

	if err := ctx.Err(); err != nil {
		return count, err
	}

	s.logger.InfoContext(ctx, "news ingestion completed", "upserted", count)

	return count, nil
}
