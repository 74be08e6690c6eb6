package handler

import (
	"context"
)

// JobHandler handles background job orchestration.
type JobHandler interface {
	StartDailyIngestionJob(ctx context.Context) error
	Stop() error
}
