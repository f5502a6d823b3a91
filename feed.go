package pepper

import (
	"context"
	"time"
)

// FeedItem is one entry of the feed of newly published PEPs.
type FeedItem struct {
	Number    int
	Title     string
	Link      string
	Published time.Time
}

// FeedService reads the RSS feed of newly published PEPs.
type FeedService interface {
	// RecentPEPs fetches the feed at feedURL and returns its items in feed
	// order. Returns EMALFORMED if the document is not an RSS channel.
	RecentPEPs(ctx context.Context, feedURL string) ([]*FeedItem, error)
}
