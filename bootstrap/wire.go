package bootstrap

import (
	"context"
	"log/slog"

	"news-ingestor/config"
	"news-ingestor/driver"
	"news-ingestor/handler"
	"news-ingestor/repository"
	"news-ingestor/service"
	"news-ingestor/utils/rate_limiter"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	Config           *config.Config
	DBPool           *pgxpool.Pool
	JobHandler       handler.JobHandler
	IngestionHandler *handler.IngestionHandler
	SignalHandler    *handler.SignalHandler
	Ingestion        service.IngestionService
	Logger           *slog.Logger
}

// BuildDependencies constructs all application dependencies.
// Returns a cleanup function that should be deferred.
func BuildDependencies(ctx context.Context, log *slog.Logger) (*Dependencies, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// Store selection: Postgres when configured, otherwise the in-memory
	// store so the service runs without external infrastructure.
	var (
		dbPool *pgxpool.Pool
		store  repository.RawNewsRepository
	)

	if cfg.Database.Host != "" {
		dbPool, err = driver.Init(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}

		store = repository.NewRawNewsRepository(dbPool, log)

		log.Info("using postgres news store", "host", cfg.Database.Host, "database", cfg.Database.Name)
	} else {
		store = repository.NewInMemoryRawNewsRepository()

		log.Warn("DB_HOST not set, using in-memory news store")
	}

	httpClient := service.NewFeedHTTPClient(&cfg.HTTP)
	fetcher := service.NewFeedFetcher(httpClient, cfg.HTTP.UserAgent, cfg.Ingestion.WatchdogTimeout, log)
	parser := service.NewFeedParser(log)
	limiter := rate_limiter.NewHostRateLimiter(cfg.Ingestion.HostRateInterval)
	source := service.NewRSSNewsSource(cfg.Ingestion.Feeds, fetcher, parser, limiter, log)

	ingestion := service.NewIngestionService(source, store, log)
	signals := service.NewSignalService(repository.NewInMemoryPriceRepository(), log)

	jobHandler := handler.NewJobHandler(ingestion, cfg.Ingestion.DailyRunUTCHour, log)
	ingestionHandler := handler.NewIngestionHandler(ingestion, cfg.Ingestion.Feeds, log)
	signalHandler := handler.NewSignalHandler(signals, cfg.Signals, log)

	cleanup := func() {
		if dbPool != nil {
			dbPool.Close()
		}
	}

	return &Dependencies{
		Config:           cfg,
		DBPool:           dbPool,
		JobHandler:       jobHandler,
		IngestionHandler: ingestionHandler,
		SignalHandler:    signalHandler,
		Ingestion:        ingestion,
		Logger:           log,
	}, cleanup, nil
}
