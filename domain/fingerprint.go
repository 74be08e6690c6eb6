package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Tick granularity for the fingerprint input: 100-nanosecond intervals
// since 0001-01-01T00:00:00Z. This matches the tick representation the
// existing stored fingerprints were computed with, so it must not change.
const (
	ticksPerSecond = 10_000_000
	unixEpochTicks = 621_355_968_000_000_000
)

// UTCTicks converts t to an integer count of 100-nanosecond intervals
// since 0001-01-01T00:00:00Z.
func UTCTicks(t time.Time) int64 {
	t = t.UTC()
	return t.Unix()*ticksPerSecond + int64(t.Nanosecond())/100 + unixEpochTicks
}

// Fingerprint computes the dedup key for a news item: lowercase hex
// SHA-256 over "ticker|title|url|source|publishedAtUtcTicks". It is a
// pure function of its inputs; two parses of the same logical item always
// produce the same fingerprint regardless of the record ID.
func Fingerprint(ticker, title, url, source string, publishedAt time.Time) string {
	input := fmt.Sprintf("%s|%s|%s|%s|%d", ticker, title, url, source, UTCTicks(publishedAt))
	sum := sha256.Sum256([]byte(input))

	return hex.EncodeToString(sum[:])
}
