package librarian

import (
	"context"
	"regexp"
)

// SitemapService discovers a site's page URLs from its sitemaps. The
// indexing workflows use it as a fallback when a book homepage's navigation
// exposes no internal links.
type SitemapService interface {
	// DiscoverURLs returns the page URLs advertised by the site hosting
	// baseURL. Sitemap locations come from robots.txt directives, with
	// /sitemap.xml as the fallback; sitemap indexes are followed
	// recursively. A nil filter returns every URL.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter restricts discovered URLs by pattern. Include patterns are
// applied first (a URL must match at least one when any are set), then
// Exclude patterns remove matches.
type URLFilter struct {
	Include []*regexp.Regexp
	Exclude []*regexp.Regexp
}

// Match reports whether url passes the filter. A nil filter passes
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	if len(f.Include) > 0 && !matchAny(f.Include, url) {
		return false
	}
	return !matchAny(f.Exclude, url)
}

func matchAny(patterns []*regexp.Regexp, url string) bool {
	for _, re := range patterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}
