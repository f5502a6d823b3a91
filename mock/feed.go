package mock

import (
	"context"

	"github.com/kevinshome/pepper"
)

var _ pepper.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of pepper.FeedService.
type FeedService struct {
	RecentPEPsFn func(ctx context.Context, feedURL string) ([]*pepper.FeedItem, error)
}

func (s *FeedService) RecentPEPs(ctx context.Context, feedURL string) ([]*pepper.FeedItem, error) {
	return s.RecentPEPsFn(ctx, feedURL)
}
