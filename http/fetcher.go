// Package http provides an HTTP-based implementation of shiftwatch.Fetcher
// for schedule pages served as static HTML.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/k1-c/shiftwatch"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the batch to the schedule site.
const DefaultUserAgent = "shiftwatch/1.0"

// maxBodySize caps how much of a response body is read.
const maxBodySize = 10 << 20

// Ensure Fetcher implements shiftwatch.Fetcher at compile time.
var _ shiftwatch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves schedule pages using HTTP GET requests and classifies
// them with an Extractor. Non-2xx responses are not errors: the status code
// is part of the classification.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	extractor shiftwatch.Extractor
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher that classifies responses
// with the given extractor.
func NewFetcher(extractor shiftwatch.Extractor, opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		extractor: extractor,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url and classifies it.
func (f *Fetcher) Fetch(ctx context.Context, url string) shiftwatch.Outcome {
	status, body, err := f.get(ctx, url)
	if err != nil {
		return shiftwatch.UnknownErrorOutcome(err)
	}
	return shiftwatch.Classify(status, body, f.extractor)
}

func (f *Fetcher) get(ctx context.Context, url string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, "", fmt.Errorf("reading body: %w", err)
	}

	return resp.StatusCode, string(body), nil
}
