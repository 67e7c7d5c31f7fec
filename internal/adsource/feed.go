package adsource

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/seenimoa/adlens/internal/infra"
	"github.com/seenimoa/adlens/pkg/models"
)

// FeedReader reads ads from RSS and Atom feeds. Each item becomes one ad:
// the title is the headline, the description (or content) is the primary
// text and the link is the URL.
type FeedReader struct {
	parser  *gofeed.Parser
	limiter *infra.Limiter
	log     *zap.Logger
}

// NewFeedReader creates a feed reader. A nil limiter disables rate limiting
// and a nil logger discards output.
func NewFeedReader(limiter *infra.Limiter, log *zap.Logger) *FeedReader {
	if limiter == nil {
		limiter = infra.NewLimiter(0, 1)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FeedReader{
		parser:  gofeed.NewParser(),
		limiter: limiter,
		log:     log.Named("feed"),
	}
}

// ParseFeed fetches and parses the feed at url.
func (r *FeedReader) ParseFeed(ctx context.Context, url string) ([]models.Ad, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	feed, err := r.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", url, err)
	}
	ads := adsFromFeed(feed)
	r.log.Info("feed loaded", zap.String("url", url), zap.Int("ads", len(ads)))
	return ads, nil
}

// ParseFeedString parses an RSS or Atom document held in memory.
func ParseFeedString(doc string) ([]models.Ad, error) {
	feed, err := gofeed.NewParser().ParseString(doc)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return adsFromFeed(feed), nil
}

func adsFromFeed(feed *gofeed.Feed) []models.Ad {
	ads := make([]models.Ad, 0, len(feed.Items))
	for _, item := range feed.Items {
		body := item.Description
		if strings.TrimSpace(body) == "" {
			body = item.Content
		}
		ads = append(ads, models.Ad{
			ID:          item.GUID,
			PrimaryText: body,
			Headline:    item.Title,
			Platform:    feed.FeedType,
			URL:         item.Link,
		})
	}
	// An item with no text is not an ad.
	out := ads[:0]
	for _, ad := range Normalize(ads) {
		if ad.Text() != "" {
			out = append(out, ad)
		}
	}
	return out
}
