package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kevinshome/pepper"
)

// Ensure LoggingFeedService implements pepper.FeedService.
var _ pepper.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with logging.
type LoggingFeedService struct {
	next   pepper.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next pepper.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// RecentPEPs delegates to the wrapped service and logs the operation.
func (s *LoggingFeedService) RecentPEPs(ctx context.Context, feedURL string) (items []*pepper.FeedItem, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed read",
			"url", feedURL,
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RecentPEPs(ctx, feedURL)
}
