package mock

import (
	"context"

	"github.com/k1-c/shiftwatch"
)

var _ shiftwatch.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of shiftwatch.Discoverer.
type Discoverer struct {
	DiscoverFn func(ctx context.Context, siteURL string, filter *shiftwatch.URLFilter) ([]string, error)
}

func (d *Discoverer) Discover(ctx context.Context, siteURL string, filter *shiftwatch.URLFilter) ([]string, error) {
	return d.DiscoverFn(ctx, siteURL, filter)
}
