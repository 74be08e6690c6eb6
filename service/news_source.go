package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"news-ingestor/domain"
	"news-ingestor/utils/rate_limiter"
)

// rssNewsSource walks the configured feed list strictly in order and
// streams the parsed records. Failures are scoped to one feed: a dead or
// malformed feed contributes zero items and the run moves on.
type rssNewsSource struct {
	feeds       []string
	fetcher     FeedFetcher
	parser      FeedParser
	rateLimiter *rate_limiter.HostRateLimiter
	logger      *slog.Logger
}

// NewRSSNewsSource creates the production news source over the configured
// feed URLs. rateLimiter may be nil.
func NewRSSNewsSource(
	feeds []string,
	fetcher FeedFetcher,
	parser FeedParser,
	rateLimiter *rate_limiter.HostRateLimiter,
	logger *slog.Logger,
) NewsSource {
	return &rssNewsSource{
		feeds:       feeds,
		fetcher:     fetcher,
		parser:      parser,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

func (s *rssNewsSource) Stream(ctx context.Context) <-chan domain.RawNews {
	out := make(chan domain.RawNews)

	go func() {
		defer close(out)

		if len(s.feeds) == 0 {
			return
		}

		s.logger.InfoContext(ctx, "starting feed collection", "feed_count", len(s.feeds))

		for _, feedURL := range s.feeds {
			if strings.TrimSpace(feedURL) == "" {
				continue
			}

			items, ok := s.readFeed(ctx, feedURL)
			if !ok {
				return
			}

			for i := range items {
				select {
				case <-ctx.Done():
					return
				case out <- items[i]:
				}
			}
		}
	}()

	return out
}

// readFeed fetches and parses one feed. The bool result is false only on
// caller cancellation; every other failure is logged and absorbed.
func (s *rssNewsSource) readFeed(ctx context.Context, feedURL string) ([]domain.RawNews, bool) {
	if err := s.rateLimiter.WaitForHost(ctx, feedURL); err != nil {
		if ctx.Err() != nil {
			return nil, false
		}

		s.logger.WarnContext(ctx, "rate limiter rejected feed", "url", feedURL, "error", err)

		return nil, true
	}

	body, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, false
		}

		if errors.Is(err, domain.ErrFeedTimeout) {
			s.logger.WarnContext(ctx, "feed fetch timed out", "url", feedURL, "error", err)
		} else {
			s.logger.WarnContext(ctx, "failed to read feed", "url", feedURL, "error", err)
		}

		return nil, true
	}

	if body == nil {
		return nil, true
	}

	items, err := s.parser.Parse(body, feedURL)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to parse feed", "url", feedURL, "error", err)
		return nil, true
	}

	return items, true
}
