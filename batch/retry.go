package batch

import (
	"context"
	"log/slog"
	"time"

	"github.com/k1-c/shiftwatch"
)

// RetryDelays returns n exponential backoff delays starting at 1s.
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, n)
	d := time.Second
	for range n {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}

// fetchWithRetry fetches url, retrying unknown errors after each delay.
// Page and element not found are definitive and returned at once.
func fetchWithRetry(ctx context.Context, fetcher shiftwatch.Fetcher, url string, delays []time.Duration, logger *slog.Logger) shiftwatch.Outcome {
	outcome := fetcher.Fetch(ctx, url)
	for attempt, delay := range delays {
		if outcome.Kind != shiftwatch.OutcomeUnknownError {
			return outcome
		}

		logger.Debug("retry", "url", url, "attempt", attempt+2, "err", outcome.Err)

		select {
		case <-ctx.Done():
			return outcome
		case <-time.After(delay):
		}

		outcome = fetcher.Fetch(ctx, url)
	}
	return outcome
}
