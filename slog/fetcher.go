// Package slog provides logging decorators for shiftwatch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/k1-c/shiftwatch"
)

// Ensure LoggingFetcher implements shiftwatch.Fetcher.
var _ shiftwatch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   shiftwatch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next shiftwatch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the classified outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (outcome shiftwatch.Outcome) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"outcome", outcome.Kind.String(),
			"records", len(outcome.Records),
			"duration", time.Since(begin),
		}
		if outcome.Kind == shiftwatch.OutcomeUnknownError {
			f.logger.Warn("fetch", append(attrs, "err", outcome.Err)...)
			return
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
