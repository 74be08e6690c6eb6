package repository

import (
	"context"
	"sync"

	"news-ingestor/domain"
)

// InMemoryRawNewsRepository is a map-backed RawNewsRepository keyed by
// fingerprint. It backs tests and the no-database mode, and honors the
// same upsert contract as the SQL implementation: on a fingerprint match
// the stored id is preserved and only the descriptive fields change.
type InMemoryRawNewsRepository struct {
	mu    sync.RWMutex
	items map[string]domain.RawNews
}

func NewInMemoryRawNewsRepository() *InMemoryRawNewsRepository {
	return &InMemoryRawNewsRepository{
		items: make(map[string]domain.RawNews),
	}
}

func (r *InMemoryRawNewsRepository) Upsert(ctx context.Context, item *domain.RawNews) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *item
	if existing, ok := r.items[item.Fingerprint]; ok {
		stored.ID = existing.ID
	}

	r.items[item.Fingerprint] = stored

	return 1, nil
}

// Len reports the number of distinct stored records.
func (r *InMemoryRawNewsRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Get returns the stored record for a fingerprint, if present.
func (r *InMemoryRawNewsRepository) Get(fingerprint string) (domain.RawNews, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[fingerprint]

	return item, ok
}

// All returns a snapshot of every stored record.
func (r *InMemoryRawNewsRepository) All() []domain.RawNews {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.RawNews, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}

	return out
}
