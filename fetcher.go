package shiftwatch

import "context"

// Fetcher retrieves and classifies an entity's schedule page.
type Fetcher interface {
	// Fetch requests the URL and classifies the response. It never fails:
	// transport and parse failures are reported as OutcomeUnknownError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) Outcome
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
