package domain

import (
	"time"
)

// RawNews represents a raw, unprocessed news item produced by the feed
// parser. It is immutable once constructed; the store recognizes repeats
// by Fingerprint, never by ID.
type RawNews struct {
	ID          string    `db:"id"`
	Source      string    `db:"source"`
	Title       string    `db:"title"`
	URL         string    `db:"url"`
	PublishedAt time.Time `db:"published_at"`
	IngestedAt  time.Time `db:"ingested_at"`
	Fingerprint string    `db:"fingerprint"`
}
