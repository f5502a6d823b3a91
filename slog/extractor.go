package slog

import (
	"log/slog"
	"time"

	"github.com/kevinshome/pepper"
)

// Compile-time interface verification.
var (
	_ pepper.HeaderExtractor = (*LoggingHeaderExtractor)(nil)
	_ pepper.IndexExtractor  = (*LoggingIndexExtractor)(nil)
)

// LoggingHeaderExtractor wraps a HeaderExtractor with logging.
type LoggingHeaderExtractor struct {
	next   pepper.HeaderExtractor
	logger *slog.Logger
}

// NewLoggingHeaderExtractor creates a new LoggingHeaderExtractor.
func NewLoggingHeaderExtractor(next pepper.HeaderExtractor, logger *slog.Logger) *LoggingHeaderExtractor {
	return &LoggingHeaderExtractor{next: next, logger: logger}
}

// ExtractHeader delegates to the wrapped extractor and logs the field count.
func (e *LoggingHeaderExtractor) ExtractHeader(page string) (h *pepper.Header, err error) {
	defer func(begin time.Time) {
		var number string
		var fields int
		if h != nil {
			number, fields = h.Number, len(h.Fields)
		}
		e.logger.Info("header extraction",
			"pep", number,
			"fields", fields,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractHeader(page)
}

// LoggingIndexExtractor wraps an IndexExtractor with logging.
type LoggingIndexExtractor struct {
	next   pepper.IndexExtractor
	logger *slog.Logger
}

// NewLoggingIndexExtractor creates a new LoggingIndexExtractor.
func NewLoggingIndexExtractor(next pepper.IndexExtractor, logger *slog.Logger) *LoggingIndexExtractor {
	return &LoggingIndexExtractor{next: next, logger: logger}
}

// ExtractIndex delegates to the wrapped extractor and logs the entry count.
func (e *LoggingIndexExtractor) ExtractIndex(page string) []*pepper.IndexEntry {
	begin := time.Now()
	entries := e.next.ExtractIndex(page)
	e.logger.Info("index extraction",
		"entries", len(entries),
		"duration", time.Since(begin),
	)
	return entries
}
