package service

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"news-ingestor/domain"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
)

const noTitlePlaceholder = "(no title)"

// feedParser maps syndication documents to canonical RawNews records.
// It performs no I/O; every record gets a fresh id and a content
// fingerprint computed from the parsed fields.
type feedParser struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewFeedParser creates a feed parser.
func NewFeedParser(logger *slog.Logger) FeedParser {
	return &feedParser{
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (p *feedParser) Parse(body []byte, feedURL string) ([]domain.RawNews, error) {
	start := time.Now()

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed document from %s: %w", feedURL, err)
	}

	source := strings.TrimSpace(feed.Title)
	if source == "" {
		source = hostOf(feedURL)
	}

	records := make([]domain.RawNews, 0, len(feed.Items))

	for _, item := range feed.Items {
		records = append(records, p.toRecord(item, source))
	}

	p.logger.Info("feed parsed",
		"source", source, "items", len(records), "elapsed_ms", time.Since(start).Milliseconds())

	return records, nil
}

func (p *feedParser) toRecord(item *gofeed.Item, source string) domain.RawNews {
	headline := strings.TrimSpace(item.Title)
	if headline == "" {
		headline = noTitlePlaceholder
	}

	link := firstLink(item)

	publishedAt := p.publishedAt(item)
	ticker := domain.ExtractTicker(headline)

	return domain.RawNews{
		ID:          uuid.New().String(),
		Source:      source,
		Title:       headline,
		URL:         link,
		PublishedAt: publishedAt,
		IngestedAt:  p.now(),
		Fingerprint: domain.Fingerprint(ticker, headline, link, source, publishedAt),
	}
}

// publishedAt resolves the record timestamp: item publish time, then item
// update time, then the current time when the feed declares neither.
func (p *feedParser) publishedAt(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil && !item.PublishedParsed.IsZero() {
		return item.PublishedParsed.UTC()
	}

	if item.UpdatedParsed != nil && !item.UpdatedParsed.IsZero() {
		return item.UpdatedParsed.UTC()
	}

	return p.now()
}

// firstLink returns the first declared link of the item, or "".
func firstLink(item *gofeed.Item) string {
	if len(item.Links) > 0 && item.Links[0] != "" {
		return item.Links[0]
	}

	return item.Link
}

func hostOf(feedURL string) string {
	parsed, err := url.Parse(feedURL)
	if err != nil || parsed.Host == "" {
		return feedURL
	}

	return parsed.Host
}
