package handler

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// fakeIngestion counts runs and can signal the first one.
type fakeIngestion struct {
	runs    atomic.Int64
	first   chan struct{}
	sigOnce sync.Once
}

func (f *fakeIngestion) RunOnce(ctx context.Context) (int, error) {
	f.runs.Add(1)

	if f.first != nil {
		f.sigOnce.Do(func() { close(f.first) })
	}

	return 0, nil
}

func TestNextRunAt(t *testing.T) {
	tests := map[string]struct {
		now  time.Time
		hour int
		want time.Time
	}{
		"before the hour runs today": {
			now:  time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC),
			hour: 4,
			want: time.Date(2024, 5, 1, 4, 0, 0, 0, time.UTC),
		},
		"after the hour runs tomorrow": {
			now:  time.Date(2024, 5, 1, 5, 0, 0, 0, time.UTC),
			hour: 4,
			want: time.Date(2024, 5, 2, 4, 0, 0, 0, time.UTC),
		},
		"exactly on the hour waits a day": {
			now:  time.Date(2024, 5, 1, 4, 0, 0, 0, time.UTC),
			hour: 4,
			want: time.Date(2024, 5, 2, 4, 0, 0, 0, time.UTC),
		},
		"one second before the hour runs today": {
			now:  time.Date(2024, 5, 1, 3, 59, 59, 0, time.UTC),
			hour: 4,
			want: time.Date(2024, 5, 1, 4, 0, 0, 0, time.UTC),
		},
		"non-UTC input is normalized": {
			now:  time.Date(2024, 5, 1, 3, 0, 0, 0, time.FixedZone("JST", 9*3600)),
			hour: 4,
			want: time.Date(2024, 5, 1, 4, 0, 0, 0, time.UTC),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := NextRunAt(tt.now, tt.hour)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			assert.True(t, got.After(tt.now.UTC()))
		})
	}
}

func TestJobHandler_StopBeforeRun(t *testing.T) {
	ingestion := &fakeIngestion{}
	h := NewJobHandler(ingestion, 4, testLogger())

	require.NoError(t, h.StartDailyIngestionJob(context.Background()))

	// Stop well before any plausible run time.
	done := make(chan struct{})
	go func() {
		_ = h.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}

	assert.Zero(t, ingestion.runs.Load())
}

func TestJobHandler_ScheduledRunFires(t *testing.T) {
	ingestion := &fakeIngestion{first: make(chan struct{})}

	h := NewJobHandler(ingestion, 4, testLogger()).(*jobHandler)

	// Pin the clock just short of the run hour so the wait is tiny.
	h.now = func() time.Time {
		return time.Date(2024, 5, 1, 3, 59, 59, 990_000_000, time.UTC)
	}

	require.NoError(t, h.StartDailyIngestionJob(context.Background()))
	defer func() { _ = h.Stop() }()

	select {
	case <-ingestion.first:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled run never fired")
	}

	assert.GreaterOrEqual(t, ingestion.runs.Load(), int64(1))
}
