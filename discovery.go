package shiftwatch

import (
	"context"
	"regexp"
)

// Discoverer finds schedule page URLs a site lists in its sitemap.
type Discoverer interface {
	// Discover returns the page URLs in sitemap order without duplicates.
	// Sitemaps come from robots.txt, falling back to /sitemap.xml, and
	// sitemap indexes are followed. A site without a sitemap yields an
	// empty slice.
	Discover(ctx context.Context, siteURL string, filter *URLFilter) ([]string, error)
}

// URLFilter selects discovered URLs. A nil filter keeps everything.
type URLFilter struct {
	// Include, if set, must match.
	Include *regexp.Regexp

	// Exclude, if set, must not match.
	Exclude *regexp.Regexp
}

// Match reports whether url passes the filter.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	if f.Include != nil && !f.Include.MatchString(url) {
		return false
	}
	if f.Exclude != nil && f.Exclude.MatchString(url) {
		return false
	}
	return true
}
