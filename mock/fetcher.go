package mock

import (
	"context"

	"github.com/k1-c/shiftwatch"
)

var _ shiftwatch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of shiftwatch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) shiftwatch.Outcome
}

func (f *Fetcher) Fetch(ctx context.Context, url string) shiftwatch.Outcome {
	return f.FetchFn(ctx, url)
}

var _ shiftwatch.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of shiftwatch.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
