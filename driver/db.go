package driver

import (
	"context"
	"fmt"
	"time"

	"news-ingestor/config"
	"news-ingestor/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Init creates the PostgreSQL connection pool. The pool is shared by all
// repositories; per-upsert connection scope is handled by pgxpool itself.
func Init(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d pool_max_conn_lifetime=1h pool_max_conn_idle_time=30m",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
		cfg.MaxConns,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Logger.Info("database connection pool initialized",
		"host", cfg.Host, "database", cfg.Name, "max_conns", cfg.MaxConns)

	return pool, nil
}
