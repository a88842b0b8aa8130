// Package slog provides log/slog decorators for pagescrape services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagescrape"
)

// Ensure LoggingFetcher implements pagescrape.Fetcher.
var _ pagescrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   pagescrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagescrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (doc *pagescrape.Document, err error) {
	defer func(begin time.Time) {
		var status, size int
		if doc != nil {
			status, size = doc.StatusCode, len(doc.Body)
		}
		if err != nil {
			status = pagescrape.HTTPStatus(err)
		}
		f.logger.Debug("fetch",
			"url", url,
			"status", status,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Ensure LoggingExtractor implements pagescrape.Extractor.
var _ pagescrape.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   pagescrape.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagescrape.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
// Failures are logged at warn level with the error code.
func (e *LoggingExtractor) Extract(ctx context.Context, url string) (result *pagescrape.ScrapeResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Warn("extract",
				"url", url,
				"code", pagescrape.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		e.logger.Info("extract",
			"url", url,
			"title", result.Title,
			"features", len(result.Features),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(ctx, url)
}

// Ensure LoggingSink implements pagescrape.Sink.
var _ pagescrape.Sink = (*LoggingSink)(nil)

// LoggingSink wraps a Sink with logging.
type LoggingSink struct {
	next   pagescrape.Sink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next pagescrape.Sink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// Store delegates to the wrapped sink and logs the operation.
func (s *LoggingSink) Store(ctx context.Context, data []byte) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store",
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Store(ctx, data)
}
