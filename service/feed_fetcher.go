package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"news-ingestor/domain"
)

// maxFeedBodyBytes caps how much of a feed document is read into memory.
const maxFeedBodyBytes = 10 << 20

// feedFetcher performs one HTTP GET per feed URL under a watchdog timer.
// The watchdog is layered on top of the transport's own timeouts and is
// the authoritative timeout signal in logs: transports have been seen to
// ignore cancellation, and the independent timer bounds the damage one
// slow feed can do to a run.
type feedFetcher struct {
	client    *http.Client
	userAgent string
	watchdog  time.Duration
	logger    *slog.Logger
}

// NewFeedFetcher creates a watchdog-guarded feed fetcher.
func NewFeedFetcher(client *http.Client, userAgent string, watchdog time.Duration, logger *slog.Logger) FeedFetcher {
	return &feedFetcher{
		client:    client,
		userAgent: userAgent,
		watchdog:  watchdog,
		logger:    logger,
	}
}

type fetchResult struct {
	body []byte
	err  error
}

// Fetch retrieves one feed document. Outcomes:
//   - (body, nil): document bytes ready for parsing
//   - (nil, nil): soft skip, the response did not look like a feed
//   - error wrapping domain.ErrFeedTimeout: the watchdog fired first
//   - ctx.Err(): the caller canceled
//   - any other error: transient fetch failure
func (f *feedFetcher) Fetch(ctx context.Context, feedURL string) ([]byte, error) {
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	f.logger.InfoContext(ctx, "fetching feed", "url", feedURL, "watchdog", f.watchdog)

	resultCh := make(chan fetchResult, 1)

	go func() {
		body, err := f.doFetch(fetchCtx, feedURL)
		resultCh <- fetchResult{body: body, err: err}
	}()

	timer := time.NewTimer(f.watchdog)
	defer timer.Stop()

	select {
	case res := <-resultCh:
		if res.err != nil {
			// The transport may report our own cancellation as a URL
			// error; surface the caller's cancellation directly.
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			return nil, res.err
		}

		return res.body, nil

	case <-ctx.Done():
		cancel()
		return nil, ctx.Err()

	case <-timer.C:
		cancel()
		return nil, fmt.Errorf("%w after %s for %s", domain.ErrFeedTimeout, f.watchdog, feedURL)
	}
}

func (f *feedFetcher) doFetch(ctx context.Context, feedURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml, text/xml;q=0.9, */*;q=0.8")

	start := time.Now()

	// Do returns as soon as response headers arrive; the body streams
	// below, still under the watchdog-linked context.
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", feedURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d from %s", domain.ErrFeedUnavailable, resp.StatusCode, feedURL)
	}

	if !looksLikeFeed(resp.Header.Get("Content-Type")) {
		f.logger.WarnContext(ctx, "unexpected content type, skipping feed",
			"url", feedURL, "content_type", resp.Header.Get("Content-Type"))
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read feed body from %s: %w", feedURL, err)
	}

	f.logger.InfoContext(ctx, "feed fetched",
		"url", feedURL, "bytes", len(body), "elapsed_ms", time.Since(start).Milliseconds())

	return body, nil
}

// looksLikeFeed reports whether a Content-Type header plausibly describes
// an RSS/Atom document. Substring match, case-insensitive.
func looksLikeFeed(contentType string) bool {
	mediaType := strings.ToLower(contentType)

	return strings.Contains(mediaType, "xml") ||
		strings.Contains(mediaType, "rss") ||
		strings.Contains(mediaType, "atom")
}
